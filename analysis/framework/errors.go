package framework

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidGraph is matched by the errors returned for structurally invalid
// program graphs. The structural violation itself is available with
// errors.As.
var ErrInvalidGraph = errors.New("invalid program graph")

type invalidGraphError struct {
	err error
}

func (e *invalidGraphError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidGraph, e.err)
}

func (e *invalidGraphError) Unwrap() error {
	return e.err
}

func (e *invalidGraphError) Is(target error) bool {
	return target == ErrInvalidGraph
}

// DispatchError reports an edge whose action no transfer function is
// applicable to. From and To refer to the edge in the given program graph,
// and are -1 when the edge is unknown.
type DispatchError struct {
	From, To int
	Action   any
}

func (e *DispatchError) Error() string {
	if e.From < 0 {
		return fmt.Sprintf("no transfer function for action %v", e.Action)
	}
	return fmt.Sprintf("no transfer function for action %v of transition %d -> %d", e.Action, e.From, e.To)
}
