package framework

import (
	"fmt"

	"github.com/cs-au-dk/monotone/analysis/constraint"
	"github.com/cs-au-dk/monotone/analysis/lattice"
	"github.com/cs-au-dk/monotone/analysis/solver"
	i "github.com/cs-au-dk/monotone/utils/indenter"
)

// Result holds the solution of a framework: one value per program state.
type Result[K comparable, V lattice.Element[V]] struct {
	Direction Direction
	System    *constraint.System[V]
	Stats     solver.Stats
}

// ValueAt returns the value of the given program state.
func (r *Result[K, V]) ValueAt(state int) V {
	return r.System.ValueOf(state)
}

func (r *Result[K, V]) Values() []V {
	return r.System.Values()
}

func (r *Result[K, V]) String() string {
	values := r.Values()
	buf := make([]string, len(values))
	for s, v := range values {
		buf[s] = fmt.Sprintf("q%d ↦ %s", s, v)
	}
	return i.Indenter().Start(r.Direction.String() + " {").NestStrings(buf...).End("}")
}
