package pgraph

import (
	"sort"

	"github.com/cs-au-dk/monotone/utils/graph"
	uf "github.com/spakin/disjoint"
)

// Graph returns a view of the edge relation between states. Edges to
// nonexistent states are left out.
func (g *ProgramGraph[K]) Graph() graph.Graph[int] {
	return graph.OfHashable(func(s int) (succs []int) {
		if !g.validState(s) {
			return nil
		}
		for _, t := range g.states[s] {
			if g.validState(t.To) {
				succs = append(succs, t.To)
			}
		}
		return
	})
}

// Reachable returns the states reachable from the initial state, in ascending
// order. It is empty if the initial state is not a state of the graph.
func (g *ProgramGraph[K]) Reachable() []int {
	if !g.validState(g.initial) {
		return nil
	}

	res := []int{}
	g.Graph().BFS(g.initial, func(s int) bool {
		res = append(res, s)
		return false
	})
	sort.Ints(res)
	return res
}

// ReversePostorder orders all states of the graph. States reachable from the
// initial state come first, in reverse depth-first postorder, followed by the
// remaining states in ascending order.
func (g *ProgramGraph[K]) ReversePostorder() []int {
	order := make([]int, 0, len(g.states))
	if g.validState(g.initial) {
		order = append(order, g.Graph().ReversePostorder(g.initial)...)
	}

	seen := make([]bool, len(g.states))
	for _, s := range order {
		seen[s] = true
	}
	for s := range g.states {
		if !seen[s] {
			order = append(order, s)
		}
	}
	return order
}

// Loops returns the strongly connected components of the graph that contain a
// cycle. Every loop is sorted, and loops are ordered by their smallest state.
func (g *ProgramGraph[K]) Loops() (loops [][]int) {
	all := make([]int, len(g.states))
	for s := range all {
		all[s] = s
	}

	scc := g.Graph().SCC(all)
	for i, comp := range scc.Components {
		if scc.Cyclic(i) {
			loop := append([]int(nil), comp...)
			sort.Ints(loop)
			loops = append(loops, loop)
		}
	}

	sort.Slice(loops, func(i, j int) bool {
		return loops[i][0] < loops[j][0]
	})
	return
}

// Components partitions the states into weakly connected components, i.e.
// ignoring edge direction. Every component is sorted, and components are
// ordered by their smallest state.
func (g *ProgramGraph[K]) Components() [][]int {
	elems := make([]*uf.Element, len(g.states))
	for s := range elems {
		elems[s] = uf.NewElement()
	}

	G := g.Graph()
	for s := range g.states {
		for _, succ := range G.Edges(s) {
			uf.Union(elems[s], elems[succ])
		}
	}

	// States are visited in ascending order, so components are created in
	// order of their smallest state and stay sorted.
	index := map[*uf.Element]int{}
	comps := [][]int{}
	for s, e := range elems {
		rep := e.Find()
		i, found := index[rep]
		if !found {
			i = len(comps)
			index[rep] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], s)
	}
	return comps
}
