// Package graph builds a crate-dependency graph from a validation report
// and exports it as Graphviz DOT or rendered SVG.
//
// The graph contains only layered crates and the path-dependency edges
// between them. Edges that break the strict layering rule are marked and
// drawn in red, which makes the offending arrows easy to spot in a large
// workspace.
package graph

import (
	"sort"

	"github.com/layerlint/layerlint/pkg/validate"
)

// Node is one layered crate.
type Node struct {
	ID    string // crate name
	Dir   string // crate directory, relative to the workspace root
	Layer int
}

// Edge is a directed dependency between two crates.
type Edge struct {
	From     string // depending crate's name
	To       string // dependency's name, or its directory if out of graph
	Violates bool
}

// Graph is the crate-dependency graph of one validated workspace.
// Nodes and edges keep deterministic order: nodes sort by (layer, ID) and
// edges follow the report's processing order.
type Graph struct {
	nodes map[string]Node
	edges []Edge
}

// FromReport builds the graph from a validation report. Edges pointing at
// unlayered targets are omitted: they are outside the layering system and
// only add noise to the picture.
func FromReport(report *validate.Report) *Graph {
	g := &Graph{nodes: make(map[string]Node)}

	byDir := make(map[string]string, len(report.Crates))
	for _, c := range report.Crates {
		g.nodes[c.Name] = Node{ID: c.Name, Dir: c.Dir, Layer: c.Layer}
		byDir[c.Dir] = c.Name
	}

	for _, e := range report.Edges {
		if !e.Layered {
			continue
		}
		// Prefer the target crate's declared name when the resolved
		// directory matches a discovered crate.
		to := e.Dep
		if name, ok := byDir[e.Target]; ok {
			to = name
		}
		if _, ok := g.nodes[to]; !ok {
			g.nodes[to] = Node{ID: to, Dir: e.Target, Layer: e.Layer}
		}
		g.edges = append(g.edges, Edge{From: e.From.Name, To: to, Violates: e.Violates})
	}

	return g
}

// Nodes returns all nodes sorted by layer, then ID.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Layer != nodes[j].Layer {
			return nodes[i].Layer < nodes[j].Layer
		}
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// Edges returns all edges in report processing order.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Layers returns the distinct layer numbers present, ascending.
func (g *Graph) Layers() []int {
	seen := make(map[int]struct{})
	for _, n := range g.nodes {
		seen[n.Layer] = struct{}{}
	}
	layers := make([]int, 0, len(seen))
	for l := range seen {
		layers = append(layers, l)
	}
	sort.Ints(layers)
	return layers
}
