// Package constraint represents dataflow equations over flow variables. Every
// flow variable is constrained to be at least the join of its constraints,
// which are either fixed values or functions of other flow variables.
package constraint

import "github.com/cs-au-dk/monotone/analysis/lattice"

// Constraint is a lower bound on a flow variable.
type Constraint[V lattice.Element[V]] interface {
	// Value computes the bound from the cached values of the flow variables
	// it depends on.
	Value() V
	// Dependencies lists the flow variables the bound reads.
	Dependencies() []int
}

// bound is implemented by constraints that read the cache of a system.
type bound[V lattice.Element[V]] interface {
	boundTo(*System[V]) bool
}

// boundTo checks that c only reads cached values of s. Constraints defined
// outside the package are trusted.
func boundTo[V lattice.Element[V]](c Constraint[V], s *System[V]) bool {
	if b, ok := c.(bound[V]); ok {
		return b.boundTo(s)
	}
	return true
}

// BaseConstraint is a fixed lower bound.
type BaseConstraint[V lattice.Element[V]] struct {
	value V
}

// Base creates a constraint with a fixed value.
func Base[V lattice.Element[V]](v V) *BaseConstraint[V] {
	return &BaseConstraint[V]{v}
}

func (c *BaseConstraint[V]) Value() V            { return c.value }
func (c *BaseConstraint[V]) Dependencies() []int { return nil }

// FlowVariableConstraint is a function of the cached value of another flow
// variable. The value of the other flow variable is never recomputed.
type FlowVariableConstraint[V lattice.Element[V]] struct {
	sys      *System[V]
	variable int
	f        func(V) V
}

func (c *FlowVariableConstraint[V]) Value() V {
	return c.f(c.sys.values[c.variable])
}

func (c *FlowVariableConstraint[V]) Dependencies() []int {
	return []int{c.variable}
}

func (c *FlowVariableConstraint[V]) boundTo(s *System[V]) bool {
	return c.sys == s
}

// Variable is the flow variable the constraint reads.
func (c *FlowVariableConstraint[V]) Variable() int {
	return c.variable
}

// CompoundConstraint joins the values of its sub-constraints. Without
// sub-constraints its value is ⊥.
type CompoundConstraint[V lattice.Element[V]] struct {
	bot         V
	constraints []Constraint[V]
}

// Compound groups constraints. bot is ⊥ of the lattice of the values.
func Compound[V lattice.Element[V]](bot V, cs ...Constraint[V]) *CompoundConstraint[V] {
	return &CompoundConstraint[V]{bot.Bot(), cs}
}

func (c *CompoundConstraint[V]) add(sub Constraint[V]) {
	c.constraints = append(c.constraints, sub)
}

func (c *CompoundConstraint[V]) Value() V {
	res := c.bot
	for _, sub := range c.constraints {
		res = res.Join(sub.Value())
	}
	return res
}

func (c *CompoundConstraint[V]) Dependencies() (deps []int) {
	for _, sub := range c.constraints {
		deps = append(deps, sub.Dependencies()...)
	}
	return
}

func (c *CompoundConstraint[V]) boundTo(s *System[V]) bool {
	for _, sub := range c.constraints {
		if !boundTo(sub, s) {
			return false
		}
	}
	return true
}

// Constraints returns the sub-constraints in insertion order.
func (c *CompoundConstraint[V]) Constraints() []Constraint[V] {
	return append([]Constraint[V](nil), c.constraints...)
}

// FlowVariable is the set of constraints of one flow variable.
type FlowVariable[V lattice.Element[V]] struct {
	CompoundConstraint[V]
}

// DependsOn checks whether any constraint of the flow variable reads v.
func (fv *FlowVariable[V]) DependsOn(v int) bool {
	for _, d := range fv.Dependencies() {
		if d == v {
			return true
		}
	}
	return false
}

var (
	_ Constraint[lattice.TwoElement] = (*BaseConstraint[lattice.TwoElement])(nil)
	_ Constraint[lattice.TwoElement] = (*FlowVariableConstraint[lattice.TwoElement])(nil)
	_ Constraint[lattice.TwoElement] = (*CompoundConstraint[lattice.TwoElement])(nil)
	_ Constraint[lattice.TwoElement] = (*FlowVariable[lattice.TwoElement])(nil)
)
