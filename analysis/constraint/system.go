package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cs-au-dk/monotone/analysis/lattice"
	"github.com/pkg/errors"
	"github.com/xtgo/set"
)

// System is a set of flow variables 0..n-1 with their constraints and a cache
// of their last computed values. Cached values start at ⊥ and only change when
// UpdateValueOf is called.
//
// A system is not safe for concurrent use.
type System[V lattice.Element[V]] struct {
	lat    V
	vars   []*FlowVariable[V]
	values []V
	// dependents[v] lists, sorted, the flow variables with a constraint reading v.
	dependents [][]int
}

// NewSystem creates a system of n unconstrained flow variables over the
// lattice of lat.
func NewSystem[V lattice.Element[V]](lat V, n int) *System[V] {
	bot := lat.Bot()
	s := &System[V]{
		lat:        lat,
		vars:       make([]*FlowVariable[V], n),
		values:     make([]V, n),
		dependents: make([][]int, n),
	}
	for i := range s.vars {
		s.vars[i] = &FlowVariable[V]{CompoundConstraint[V]{bot: bot}}
		s.values[i] = bot
	}
	return s
}

func (s *System[V]) valid(v int) bool {
	return 0 <= v && v < len(s.vars)
}

func (s *System[V]) check(v int) error {
	if !s.valid(v) {
		return &IndexError{v, len(s.vars)}
	}
	return nil
}

func (s *System[V]) mustCheck(v int) {
	if err := s.check(v); err != nil {
		panic(err)
	}
}

// Lattice returns the lattice instance the system was created with.
func (s *System[V]) Lattice() V {
	return s.lat
}

func (s *System[V]) NumberOfVariables() int {
	return len(s.vars)
}

// Dependent creates a constraint applying f to the cached value of dependsOn.
func (s *System[V]) Dependent(dependsOn int, f func(V) V) (*FlowVariableConstraint[V], error) {
	if err := s.check(dependsOn); err != nil {
		return nil, errors.Wrap(err, "dependency")
	}
	return &FlowVariableConstraint[V]{s, dependsOn, f}, nil
}

// AddConstraint adds c to the constraints of variable.
func (s *System[V]) AddConstraint(variable int, c Constraint[V]) error {
	if err := s.check(variable); err != nil {
		return errors.Wrap(err, "adding constraint")
	}
	deps := c.Dependencies()
	for _, d := range deps {
		if err := s.check(d); err != nil {
			return errors.Wrapf(err, "constraint of %d depends on", variable)
		}
	}

	if !boundTo(c, s) {
		return errors.Wrapf(ErrForeignConstraint, "adding constraint to %d", variable)
	}

	s.vars[variable].add(c)
	for _, d := range deps {
		ds := append(s.dependents[d], variable)
		sort.Ints(ds)
		s.dependents[d] = ds[:set.Uniq(sort.IntSlice(ds))]
	}
	return nil
}

// AddIndependentConstraint bounds variable from below by a fixed value.
func (s *System[V]) AddIndependentConstraint(variable int, value V) error {
	return s.AddConstraint(variable, Base(value))
}

// AddDependentConstraint bounds variable from below by f applied to the cached
// value of dependsOn.
func (s *System[V]) AddDependentConstraint(variable, dependsOn int, f func(V) V) error {
	c, err := s.Dependent(dependsOn, f)
	if err != nil {
		return err
	}
	return s.AddConstraint(variable, c)
}

// ValueOf returns the cached value of v without recomputing it.
// It panics with an *IndexError if v does not exist.
func (s *System[V]) ValueOf(v int) V {
	s.mustCheck(v)
	return s.values[v]
}

// UpdateValueOf recomputes v from the cached values of its dependencies,
// caches the result and returns it.
// It panics with an *IndexError if v does not exist.
func (s *System[V]) UpdateValueOf(v int) V {
	s.mustCheck(v)
	s.values[v] = s.vars[v].Value()
	return s.values[v]
}

// DependentsOf returns, sorted and without duplicates, the flow variables with
// a constraint reading v.
// It panics with an *IndexError if v does not exist.
func (s *System[V]) DependentsOf(v int) []int {
	s.mustCheck(v)
	return append([]int(nil), s.dependents[v]...)
}

// Constraints returns the constraints of v in insertion order.
// It panics with an *IndexError if v does not exist.
func (s *System[V]) Constraints(v int) []Constraint[V] {
	s.mustCheck(v)
	return s.vars[v].Constraints()
}

// Values returns a copy of the cached values.
func (s *System[V]) Values() []V {
	return append([]V(nil), s.values...)
}

// Reset sets all cached values back to ⊥.
func (s *System[V]) Reset() {
	bot := s.lat.Bot()
	for i := range s.values {
		s.values[i] = bot
	}
}

func (s *System[V]) String() string {
	lines := make([]string, len(s.values))
	for i, v := range s.values {
		lines[i] = fmt.Sprintf("A(%d) ⊒ %s", i, v)
	}
	return strings.Join(lines, "\n")
}
