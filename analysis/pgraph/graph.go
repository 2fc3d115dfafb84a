// Package pgraph models programs as labeled directed graphs. States are dense
// integers and every edge carries an action label that transfer functions
// interpret.
package pgraph

import (
	"reflect"

	"github.com/pkg/errors"
)

// Transition is an outgoing edge to state To labeled with Action.
type Transition[K comparable] struct {
	To     int
	Action K
}

// ProgramGraph is a graph over the states 0..NumberOfStates()-1 with a
// designated initial and final state.
//
// A graph under construction need not be valid. Validate checks the
// structural invariants on demand.
type ProgramGraph[K comparable] struct {
	states         [][]Transition[K]
	initial, final int
}

// New creates a graph without states. Initial and final state are -1.
func New[K comparable]() *ProgramGraph[K] {
	return &ProgramGraph[K]{initial: -1, final: -1}
}

// NewState appends a state without outgoing transitions and returns its index.
func (g *ProgramGraph[K]) NewState() int {
	g.states = append(g.states, nil)
	return len(g.states) - 1
}

func (g *ProgramGraph[K]) NumberOfStates() int {
	return len(g.states)
}

func (g *ProgramGraph[K]) validState(s int) bool {
	return 0 <= s && s < len(g.states)
}

// AddOutgoingTransition appends t to the outgoing transitions of state. The
// target of t is only checked by Validate.
func (g *ProgramGraph[K]) AddOutgoingTransition(state int, t Transition[K]) error {
	if !g.validState(state) {
		return errors.Wrapf(ErrInvalidState, "adding transition from %d", state)
	}
	if t.To < 0 {
		return errors.Wrapf(ErrInvalidTransition, "negative target %d", t.To)
	}
	if isNil(t.Action) {
		return errors.Wrap(ErrInvalidTransition, "missing action")
	}

	g.states[state] = append(g.states[state], t)
	return nil
}

// isNil reports whether the action is a nil interface, or a nil pointer, map,
// func, chan or slice.
func isNil(action any) bool {
	if action == nil {
		return true
	}
	v := reflect.ValueOf(action)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// AddTransition adds an edge from -> to labeled with action.
func (g *ProgramGraph[K]) AddTransition(from, to int, action K) error {
	return g.AddOutgoingTransition(from, Transition[K]{to, action})
}

func (g *ProgramGraph[K]) SetInitialState(s int) { g.initial = s }
func (g *ProgramGraph[K]) SetFinalState(s int)   { g.final = s }
func (g *ProgramGraph[K]) InitialState() int     { return g.initial }
func (g *ProgramGraph[K]) FinalState() int       { return g.final }
func (g *ProgramGraph[K]) IsFinal(s int) bool    { return s == g.final }

// Outgoing returns a copy of the outgoing transitions of state s.
// It panics if s is not a state of the graph.
func (g *ProgramGraph[K]) Outgoing(s int) []Transition[K] {
	if !g.validState(s) {
		panic(errors.Wrapf(ErrInvalidState, "outgoing transitions of %d", s))
	}
	return append([]Transition[K](nil), g.states[s]...)
}

// ForEachTransition calls do for every edge, in state and insertion order.
func (g *ProgramGraph[K]) ForEachTransition(do func(from int, t Transition[K])) {
	for from, ts := range g.states {
		for _, t := range ts {
			do(from, t)
		}
	}
}

// NumberOfTransitions counts the edges of the graph.
func (g *ProgramGraph[K]) NumberOfTransitions() (n int) {
	for _, ts := range g.states {
		n += len(ts)
	}
	return
}

// Reverse creates a new graph where every edge (s, s') is replaced by (s', s)
// and the initial and final states are swapped. It panics with a
// *MissingStateError if an edge targets a nonexistent state.
func (g *ProgramGraph[K]) Reverse() *ProgramGraph[K] {
	rev := &ProgramGraph[K]{
		states:  make([][]Transition[K], len(g.states)),
		initial: g.final,
		final:   g.initial,
	}

	g.ForEachTransition(func(from int, t Transition[K]) {
		if !g.validState(t.To) {
			panic(&MissingStateError{from, t.To})
		}
		rev.states[t.To] = append(rev.states[t.To], Transition[K]{from, t.Action})
	})

	return rev
}

// Validate checks the structural invariants of the graph and returns the
// first violation found, in state order:
//   - no state has an edge to itself,
//   - no two edges connect the same ordered pair of states,
//   - every edge targets an existing state,
//   - the initial and final states exist, unless the graph has no states.
func (g *ProgramGraph[K]) Validate() error {
	for from, ts := range g.states {
		targets := make(map[int]struct{}, len(ts))
		for _, t := range ts {
			switch _, dup := targets[t.To]; {
			case t.To == from:
				return &SelfLoopError{from}
			case dup:
				return &DuplicateTransitionError{from, t.To}
			case !g.validState(t.To):
				return &MissingStateError{from, t.To}
			}
			targets[t.To] = struct{}{}
		}
	}

	if len(g.states) == 0 {
		return nil
	}
	if !g.validState(g.initial) {
		return &StateRangeError{"initial", g.initial, len(g.states)}
	}
	if !g.validState(g.final) {
		return &StateRangeError{"final", g.final, len(g.states)}
	}
	return nil
}

func (g *ProgramGraph[K]) Valid() bool {
	return g.Validate() == nil
}

// Equal checks that both graphs have the same states, the same set of
// outgoing transitions per state, and the same initial and final states.
func (g *ProgramGraph[K]) Equal(o *ProgramGraph[K]) bool {
	if g.initial != o.initial || g.final != o.final || len(g.states) != len(o.states) {
		return false
	}

	toSet := func(ts []Transition[K]) map[Transition[K]]struct{} {
		set := make(map[Transition[K]]struct{}, len(ts))
		for _, t := range ts {
			set[t] = struct{}{}
		}
		return set
	}

	for s := range g.states {
		a, b := toSet(g.states[s]), toSet(o.states[s])
		if len(a) != len(b) {
			return false
		}
		for t := range a {
			if _, found := b[t]; !found {
				return false
			}
		}
	}
	return true
}
