package graph

import (
	"fmt"

	"github.com/cs-au-dk/monotone/utils/dot"
)

type VisualizationConfig[T any] struct {
	// Title of the rendered graph.
	Title string
	// Provides the ID and attributes for dot nodes.
	// If not provided, the ID is the stringified node.
	NodeAttrs func(node T) (string, dot.DotAttrs)
	// Provides the attributes of the edge between two nodes.
	EdgeAttrs func(from, to T) dot.DotAttrs
	// If provided, will create clusters for nodes with the same key.
	// The returned key must be safe to use in a Go map.
	ClusterKey func(node T) any
	// Provides the ID and attributes for dot clusters.
	ClusterAttrs func(key any) (string, dot.DotAttrs)

	Minlen  uint
	Nodesep float64
	Rankdir string
}

// ToDotGraph builds a dot graph over the given nodes. Only edges between
// provided nodes are included.
func (G Graph[T]) ToDotGraph(nodes []T, cfg *VisualizationConfig[T]) *dot.DotGraph {
	if cfg == nil {
		cfg = &VisualizationConfig[T]{}
	}

	graphOpts := map[string]string{}
	if cfg.Minlen > 0 {
		graphOpts["minlen"] = fmt.Sprint(cfg.Minlen)
	}
	if cfg.Nodesep > 0 {
		graphOpts["nodesep"] = fmt.Sprint(cfg.Nodesep)
	}
	if cfg.Rankdir != "" {
		graphOpts["rankdir"] = cfg.Rankdir
	}

	dg := &dot.DotGraph{
		Title:   cfg.Title,
		Options: graphOpts,
	}

	keyToCluster := map[any]*dot.DotCluster{}
	getCluster := func(key any) *dot.DotCluster {
		if cluster, found := keyToCluster[key]; found {
			return cluster
		}

		var id string
		var attrs dot.DotAttrs
		if cfg.ClusterAttrs != nil {
			id, attrs = cfg.ClusterAttrs(key)
		} else {
			id = fmt.Sprint(key)
		}

		cluster := dot.NewDotCluster(id)
		if attrs != nil {
			cluster.Attrs = attrs
		}
		dg.Clusters = append(dg.Clusters, cluster)

		keyToCluster[key] = cluster
		return cluster
	}

	// Add nodes to graph
	nodeToDotNode := G.mapFactory()
	for _, node := range nodes {
		dNode := &dot.DotNode{}

		if cfg.NodeAttrs != nil {
			dNode.ID, dNode.Attrs = cfg.NodeAttrs(node)
		} else {
			dNode.ID = fmt.Sprint(node)
		}

		nodeToDotNode.Set(node, dNode)

		if cfg.ClusterKey != nil {
			cl := getCluster(cfg.ClusterKey(node))
			cl.Nodes = append(cl.Nodes, dNode)
		} else {
			dg.Nodes = append(dg.Nodes, dNode)
		}
	}

	// Add edges to graph
	for _, node := range nodes {
		a, _ := nodeToDotNode.Get(node)

		for _, edge := range G.Edges(node) {
			if b, found := nodeToDotNode.Get(edge); found {
				de := &dot.DotEdge{
					From: a.(*dot.DotNode),
					To:   b.(*dot.DotNode),
				}
				if cfg.EdgeAttrs != nil {
					de.Attrs = cfg.EdgeAttrs(node, edge)
				}
				dg.Edges = append(dg.Edges, de)
			}
		}
	}

	return dg
}
