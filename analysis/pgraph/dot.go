package pgraph

import (
	"fmt"
	"io"

	"github.com/cs-au-dk/monotone/utils"
	"github.com/cs-au-dk/monotone/utils/dot"
	"github.com/cs-au-dk/monotone/utils/graph"
)

// ToDotGraph renders the graph in dot. Edges are labeled with their action,
// and the initial and final states are highlighted.
func (g *ProgramGraph[K]) ToDotGraph(title string, opts utils.Options) *dot.DotGraph {
	nodes := make([]int, len(g.states))
	for s := range nodes {
		nodes[s] = s
	}

	// Edge attributes are looked up by endpoints, which are unique in a
	// valid graph.
	labels := map[[2]int]string{}
	g.ForEachTransition(func(from int, t Transition[K]) {
		labels[[2]int{from, t.To}] = fmt.Sprint(t.Action)
	})

	return g.Graph().ToDotGraph(nodes, &graph.VisualizationConfig[int]{
		Title:   title,
		Minlen:  opts.Minlen,
		Nodesep: opts.Nodesep,
		NodeAttrs: func(s int) (string, dot.DotAttrs) {
			attrs := dot.DotAttrs{"label": fmt.Sprintf("q%d", s)}
			if s == g.initial {
				attrs["fillcolor"] = "lightblue"
			}
			if s == g.final {
				attrs["shape"] = "doublecircle"
			}
			return fmt.Sprint(s), attrs
		},
		EdgeAttrs: func(from, to int) dot.DotAttrs {
			return dot.DotAttrs{"label": labels[[2]int{from, to}]}
		},
	})
}

// WriteDot writes the dot rendering of the graph to w.
func (g *ProgramGraph[K]) WriteDot(w io.Writer, title string, opts utils.Options) error {
	return g.ToDotGraph(title, opts).WriteDot(w)
}

// Render writes an image of the graph to path.<opts.Format> and returns the
// name of the written file.
func (g *ProgramGraph[K]) Render(path, title string, opts utils.Options) (string, error) {
	return g.ToDotGraph(title, opts).Render(path, opts.Format)
}
