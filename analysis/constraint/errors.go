package constraint

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrForeignConstraint is reported when a constraint reads the cache of a
// different system.
var ErrForeignConstraint = errors.New("constraint is bound to another system")

// IndexError reports a reference to a flow variable that does not exist.
type IndexError struct {
	Index, Variables int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("flow variable %d does not exist (%d variables)", e.Index, e.Variables)
}
