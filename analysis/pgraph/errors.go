package pgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidState is returned when a state index is out of range.
	ErrInvalidState = errors.New("invalid state index")
	// ErrInvalidTransition is returned for malformed transitions.
	ErrInvalidTransition = errors.New("invalid transition")
)

// SelfLoopError reports an edge from a state to itself.
type SelfLoopError struct {
	State int
}

func (e *SelfLoopError) Error() string {
	return fmt.Sprintf("self-loop at state %d", e.State)
}

// DuplicateTransitionError reports more than one edge between the same
// ordered pair of states.
type DuplicateTransitionError struct {
	From, To int
}

func (e *DuplicateTransitionError) Error() string {
	return fmt.Sprintf("duplicate transition %d -> %d", e.From, e.To)
}

// MissingStateError reports an edge to a state that does not exist.
type MissingStateError struct {
	From, To int
}

func (e *MissingStateError) Error() string {
	return fmt.Sprintf("transition %d -> %d targets a nonexistent state", e.From, e.To)
}

// StateRangeError reports an initial or final state outside of the graph.
type StateRangeError struct {
	// Role is either "initial" or "final".
	Role   string
	State  int
	States int
}

func (e *StateRangeError) Error() string {
	return fmt.Sprintf("%s state %d is out of range [0, %d)", e.Role, e.State, e.States)
}
