// Package framework assembles monotone frameworks: a lattice with an extremal
// value, transfer functions and a program graph become a constraint system
// with one flow variable per state and one dependent constraint per edge.
package framework

import (
	"github.com/cs-au-dk/monotone/analysis/constraint"
	"github.com/cs-au-dk/monotone/analysis/lattice"
	"github.com/cs-au-dk/monotone/analysis/pgraph"
	"github.com/cs-au-dk/monotone/analysis/solver"
	"github.com/cs-au-dk/monotone/utils"
	"github.com/cs-au-dk/monotone/utils/worklist"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Direction of the flow of information along edges.
type Direction int

const (
	// Forward analyses propagate from the initial state along edges.
	Forward Direction = iota
	// Backward analyses propagate from the final state against edges.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Framework describes a monotone framework instance.
type Framework[K comparable, V lattice.Element[V]] struct {
	// Extremal is the value of the entry state. It also determines the lattice.
	Extremal  V
	Transfer  TransferFunction[K, V]
	Graph     *pgraph.ProgramGraph[K]
	Direction Direction
	// Log receives debug output. Defaults to the standard logger.
	Log *log.Logger
}

func New[K comparable, V lattice.Element[V]](
	extremal V,
	transfer TransferFunction[K, V],
	graph *pgraph.ProgramGraph[K],
	direction Direction,
) *Framework[K, V] {
	return &Framework[K, V]{
		Extremal:  extremal,
		Transfer:  transfer,
		Graph:     graph,
		Direction: direction,
	}
}

func (f *Framework[K, V]) logger() *log.Logger {
	if f.Log == nil {
		return log.StandardLogger()
	}
	return f.Log
}

// AnalysisGraph is the graph along which information flows: the program graph
// for forward analyses, and its reverse for backward analyses.
func (f *Framework[K, V]) AnalysisGraph() *pgraph.ProgramGraph[K] {
	if f.Direction == Backward {
		return f.Graph.Reverse()
	}
	return f.Graph
}

type lookup[K any, V any] interface {
	Lookup(action K) (TransferFunction[K, V], bool)
}

// resolve finds the transfer function of an action.
func (f *Framework[K, V]) resolve(action K) (TransferFunction[K, V], bool) {
	if d, ok := f.Transfer.(lookup[K, V]); ok {
		return d.Lookup(action)
	}
	return f.Transfer, f.Transfer.ApplicableTo(action)
}

// ConstraintSystem builds the constraint system of the framework. The entry
// state of the analysis graph is bounded by the extremal value, and the target
// of every edge by the transfer function of its action applied to the source.
//
// The program graph must be valid, and every action must have a transfer
// function. Transfer functions are resolved once per edge.
func (f *Framework[K, V]) ConstraintSystem() (*constraint.System[V], error) {
	if err := f.Graph.Validate(); err != nil {
		return nil, &invalidGraphError{err}
	}

	g := f.AnalysisGraph()
	cs := constraint.NewSystem(f.Extremal, g.NumberOfStates())
	if g.NumberOfStates() == 0 {
		return cs, nil
	}

	if err := cs.AddIndependentConstraint(g.InitialState(), f.Extremal); err != nil {
		return nil, errors.Wrap(err, "seeding entry state")
	}

	var err error
	g.ForEachTransition(func(from int, t pgraph.Transition[K]) {
		if err != nil {
			return
		}

		action := t.Action
		tf, found := f.resolve(action)
		if !found {
			if f.Direction == Backward {
				err = &DispatchError{t.To, from, action}
			} else {
				err = &DispatchError{from, t.To, action}
			}
			return
		}

		err = cs.AddDependentConstraint(t.To, from, func(state V) V {
			return tf.Apply(action, state)
		})
	})
	if err != nil {
		return nil, err
	}

	if logger := f.logger(); logger.IsLevelEnabled(log.DebugLevel) {
		logger.WithFields(log.Fields{
			"direction":   f.Direction,
			"states":      g.NumberOfStates(),
			"transitions": g.NumberOfTransitions(),
			"loops":       len(g.Loops()),
		}).Debug("Assembled constraint system")
	}
	return cs, nil
}

// Worklist creates the worklist selected by the options. The "rpo" worklist
// extracts states in reverse postorder of the analysis graph.
func (f *Framework[K, V]) Worklist(opts utils.Options) (worklist.Worklist[int], error) {
	var less func(a, b int) bool
	if opts.IsRPO() {
		order := f.AnalysisGraph().ReversePostorder()
		rank := make([]int, len(order))
		for i, s := range order {
			rank[s] = i
		}
		less = func(a, b int) bool {
			return rank[a] < rank[b]
		}
	}
	return worklist.Make(opts.Worklist, less)
}

// Solve assembles the constraint system and solves it.
func (f *Framework[K, V]) Solve(opts utils.Options) (*Result[K, V], error) {
	cs, err := f.ConstraintSystem()
	if err != nil {
		return nil, err
	}

	w, err := f.Worklist(opts)
	if err != nil {
		return nil, err
	}

	opts.OnVerbose(func() {
		f.logger().Tracef("Constraint system:\n%s", cs)
	})

	sopts := solver.OptionsFrom(opts)
	sopts.Log = f.logger()
	stats, err := solver.SolveWith(w, cs, sopts)
	if err != nil {
		return nil, err
	}

	return &Result[K, V]{
		Direction: f.Direction,
		System:    cs,
		Stats:     stats,
	}, nil
}
