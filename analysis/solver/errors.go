package solver

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnsolved is returned when solving stops with pending work. The cached
// values are then not a solution of the constraint system.
var ErrUnsolved = errors.New("constraint system is not solved")

// NonMonotoneError reports a flow variable whose recomputed value is not
// above its previous value.
type NonMonotoneError struct {
	Variable int
	Old, New fmt.Stringer
}

func (e *NonMonotoneError) Error() string {
	return fmt.Sprintf("flow variable %d decreased from %s to %s", e.Variable, e.Old, e.New)
}
