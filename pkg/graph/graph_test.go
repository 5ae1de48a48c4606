package graph

import (
	"reflect"
	"strings"
	"testing"

	"github.com/layerlint/layerlint/pkg/rules"
	"github.com/layerlint/layerlint/pkg/validate"
)

func sampleReport() *validate.Report {
	a := rules.Module{Name: "a", Dir: "01-transport/a", Layer: 1}
	x := rules.Module{Name: "x", Dir: "02-runtime/x", Layer: 2}
	return &validate.Report{
		Crates: []rules.Module{a, x},
		Edges: []validate.Edge{
			{
				From:         x,
				ResolvedEdge: rules.ResolvedEdge{Dep: "a", Target: "01-transport/a", Layer: 1, Layered: true},
			},
			{
				From:         a,
				ResolvedEdge: rules.ResolvedEdge{Dep: "z", Target: "03-driver/z", Layer: 3, Layered: true},
				Violates:     true,
			},
			{
				From:         a,
				ResolvedEdge: rules.ResolvedEdge{Dep: "fixture", Target: "fixtures/sample"},
			},
		},
	}
}

func TestFromReport(t *testing.T) {
	g := FromReport(sampleReport())

	nodes := g.Nodes()
	var ids []string
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	// Sorted by layer then ID; "z" synthesized from the out-of-report edge.
	want := []string{"a", "x", "z"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("node IDs = %v, want %v", ids, want)
	}

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("edges = %v, want 2 (unlayered edge omitted)", edges)
	}
	if edges[0].From != "x" || edges[0].To != "a" || edges[0].Violates {
		t.Errorf("edge[0] = %+v, want clean x->a", edges[0])
	}
	if edges[1].From != "a" || edges[1].To != "z" || !edges[1].Violates {
		t.Errorf("edge[1] = %+v, want violating a->z", edges[1])
	}
}

func TestFromReportResolvesTargetName(t *testing.T) {
	a := rules.Module{Name: "a", Dir: "01-transport/a", Layer: 1}
	b := rules.Module{Name: "transport-b", Dir: "01-transport/b", Layer: 1}
	report := &validate.Report{
		Crates: []rules.Module{a, b},
		Edges: []validate.Edge{
			{
				From: a,
				// Declared under a local alias; the resolved directory
				// matches crate transport-b.
				ResolvedEdge: rules.ResolvedEdge{Dep: "b", Target: "01-transport/b", Layer: 1, Layered: true},
			},
		},
	}

	g := FromReport(report)
	if len(g.Edges()) != 1 || g.Edges()[0].To != "transport-b" {
		t.Errorf("edge target = %+v, want declared crate name transport-b", g.Edges())
	}
	if len(g.Nodes()) != 2 {
		t.Errorf("nodes = %v, want no synthesized duplicate", g.Nodes())
	}
}

func TestLayers(t *testing.T) {
	g := FromReport(sampleReport())
	if got, want := g.Layers(), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
}

func TestToDOT(t *testing.T) {
	g := FromReport(sampleReport())
	dot := ToDOT(g)

	for _, want := range []string{
		"digraph layers {",
		`"a" [label="a\nlayer 01"]`,
		`"x" -> "a";`,
		`"a" -> "z" [color=red, penwidth=2.0];`,
		"rank=same",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDeterministic(t *testing.T) {
	first := ToDOT(FromReport(sampleReport()))
	second := ToDOT(FromReport(sampleReport()))
	if first != second {
		t.Error("DOT output should be byte-identical across runs")
	}
}
