package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the crate graph to Graphviz DOT. Crates in the same layer
// share a rank so the drawing mirrors the architecture: lower layers at the
// bottom, dependencies pointing downward. Violating edges are red and bold.
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layers {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmt.Sprintf("%s\\nlayer %02d", n.ID, n.Layer)
		fmt.Fprintf(&buf, "  %q [label=\"%s\"];\n", n.ID, label)
	}

	buf.WriteString("\n")
	for _, layer := range g.Layers() {
		buf.WriteString("  { rank=same;")
		for _, n := range g.Nodes() {
			if n.Layer == layer {
				fmt.Fprintf(&buf, " %q;", n.ID)
			}
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Violates {
			fmt.Fprintf(&buf, "  %q -> %q [color=red, penwidth=2.0];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
