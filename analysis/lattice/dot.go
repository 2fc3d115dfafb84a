package lattice

import (
	"fmt"

	"github.com/cs-au-dk/monotone/utils/dot"
	"github.com/cs-au-dk/monotone/utils/graph"
)

// HasseDot builds the Hasse diagram of the ⊑ relation over the given
// elements. There is an edge from x to y when x ⊏ y and no listed z satisfies
// x ⊏ z ⊏ y. Smaller elements are drawn at the bottom.
func HasseDot[E Element[E]](title string, elems []E) *dot.DotGraph {
	lt := func(x, y E) bool {
		return x.Leq(y) && !y.Leq(x)
	}

	G := graph.OfHashable(func(i int) (covers []int) {
		for j, y := range elems {
			if !lt(elems[i], y) {
				continue
			}

			direct := true
			for _, z := range elems {
				if lt(elems[i], z) && lt(z, y) {
					direct = false
					break
				}
			}
			if direct {
				covers = append(covers, j)
			}
		}
		return
	})

	nodes := make([]int, len(elems))
	for i := range elems {
		nodes[i] = i
	}

	return G.ToDotGraph(nodes, &graph.VisualizationConfig[int]{
		Title:   title,
		Rankdir: "BT",
		NodeAttrs: func(i int) (string, dot.DotAttrs) {
			return fmt.Sprintf("n%d", i), dot.DotAttrs{
				"label": elems[i].String(),
				"shape": "box",
			}
		},
	})
}
