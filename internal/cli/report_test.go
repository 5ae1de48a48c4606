package cli

import (
	"strings"
	"testing"

	"github.com/layerlint/layerlint/pkg/rules"
	"github.com/layerlint/layerlint/pkg/validate"
)

func TestRenderReportSuccess(t *testing.T) {
	report := &validate.Report{
		Layers: map[int]string{1: "01-transport"},
	}

	out := renderReport(report)
	if !strings.Contains(out, "✅ All layer dependencies respect the strict rule") {
		t.Errorf("success report = %q, want success marker", out)
	}
	if strings.Contains(out, "VIOLATION") {
		t.Errorf("success report should not mention violations: %q", out)
	}
}

func TestRenderReportViolations(t *testing.T) {
	report := &validate.Report{
		Layers: map[int]string{1: "01-transport", 3: "03-driver", 99: "99-tests"},
		Result: rules.Result{
			Modules: 3,
			Edges:   2,
			Violations: []rules.Violation{
				{
					Crate:      "transport-a",
					CrateDir:   "01-transport/a",
					CrateLayer: 1,
					Dep:        "driver-z",
					DepDir:     "03-driver/z",
					DepLayer:   3,
				},
			},
		},
	}

	out := renderReport(report)
	for _, want := range []string{
		"❌ Layer dependency violations found:",
		"  01-transport/a/",
		"Layer 01 crate 'transport-a' depends on layer 03 crate 'driver-z'",
		"VIOLATION: Lower layer depends on higher layer!",
		"Dependency path: 03-driver/z",
		"Found 1 violation(s)",
		"Strict rule: Higher layers may only depend on lower layers.",
		"Layer rules:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportDeterministic(t *testing.T) {
	report := &validate.Report{
		Layers: map[int]string{1: "01-transport", 2: "02-runtime"},
		Result: rules.Result{
			Violations: []rules.Violation{
				{Crate: "a", CrateDir: "01-transport/a", CrateLayer: 1, Dep: "r", DepDir: "02-runtime/r", DepLayer: 2},
			},
		},
	}

	if renderReport(report) != renderReport(report) {
		t.Error("report rendering should be byte-identical for the same input")
	}
}

func TestRuleTable(t *testing.T) {
	table := ruleTable(map[int]string{
		1:  "01-transport",
		2:  "02-runtime",
		6:  "06-apps",
		99: "99-tests",
	})

	lines := strings.Split(table, "\n")
	want := []string{
		"  01-transport → 01 only",
		"  02-runtime   → 01-02",
		"  06-apps      → 01-06",
		"  99-tests     → any",
	}
	if len(lines) != len(want) {
		t.Fatalf("rule table has %d lines, want %d:\n%s", len(lines), len(want), table)
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("rule table line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestRuleTableSingleLayer(t *testing.T) {
	table := ruleTable(map[int]string{5: "05-app-loop"})
	if !strings.Contains(table, "05 only") {
		t.Errorf("single-layer table = %q, want %q", table, "05 only")
	}
}

func TestRuleTableEmpty(t *testing.T) {
	if got := ruleTable(nil); got != "" {
		t.Errorf("empty table = %q, want empty string", got)
	}
}
