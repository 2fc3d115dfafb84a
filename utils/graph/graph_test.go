package graph

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cs-au-dk/monotone/utils/dot"
)

var edges = map[int][]int{
	0:  {1, 8},
	1:  {4, 5, 2},
	2:  {6, 3, 9},
	3:  {2, 7},
	4:  {0, 5},
	5:  {6},
	6:  {5},
	7:  {3, 6},
	8:  {},
	9:  {10, 11},
	10: {12, 13},
	11: {12, 13},
	12: {},
	13: {},
}
var _sampleGraph = OfHashable(func(i int) []int {
	return edges[i]
})

func TestBFS(t *testing.T) {
	order := []int{}
	_sampleGraph.BFS(0, func(node int) bool {
		order = append(order, node)
		return false
	})

	expected := []int{0, 1, 8, 4, 5, 2, 6, 3, 9, 7, 10, 11, 12, 13}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("Expected BFS order %v, got %v", expected, order)
	}
}

func TestBFSStopsEarly(t *testing.T) {
	visited := 0
	stopped := _sampleGraph.BFS(0, func(node int) bool {
		visited++
		return node == 2
	})

	if !stopped {
		t.Error("Expected search to stop early")
	}
	if visited != 6 {
		t.Errorf("Expected 6 visited nodes, got %d", visited)
	}
}

func TestReversePostorder(t *testing.T) {
	expected := []int{0, 8, 1, 2, 9, 11, 10, 13, 12, 3, 7, 4, 5, 6}
	if order := _sampleGraph.ReversePostorder(0); !reflect.DeepEqual(order, expected) {
		t.Errorf("Expected reverse postorder %v, got %v", expected, order)
	}
}

func TestToDotGraph(t *testing.T) {
	nodes := []int{9, 10, 11}
	dg := _sampleGraph.ToDotGraph(nodes, &VisualizationConfig[int]{
		Title: "sample",
		ClusterKey: func(node int) any {
			return node == 9
		},
		EdgeAttrs: func(from, to int) dot.DotAttrs {
			return dot.DotAttrs{"label": "e"}
		},
	})

	if n := dg.CountNodes(); n != 3 {
		t.Errorf("Expected 3 nodes, got %d", n)
	}
	if len(dg.Clusters) != 2 {
		t.Errorf("Expected 2 clusters, got %d", len(dg.Clusters))
	}
	// Edges to nodes outside the provided slice are dropped.
	if len(dg.Edges) != 2 {
		t.Errorf("Expected 2 edges, got %d", len(dg.Edges))
	}

	var sb strings.Builder
	if err := dg.WriteDot(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, frag := range []string{`label="sample"`, `"9" -> "10" [ label="e"; ]`, `subgraph "cluster_true"`} {
		if !strings.Contains(out, frag) {
			t.Errorf("Expected %q in output:\n%s", frag, out)
		}
	}
}
