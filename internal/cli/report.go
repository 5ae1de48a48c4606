package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/layerlint/layerlint/pkg/validate"
)

// renderReport produces the terminal report for a validation run: a single
// success marker when the workspace is clean, otherwise one block per
// violation followed by the summary count and the rule reference table.
//
// Paths are printed with forward slashes so the report is identical across
// platforms.
func renderReport(report *validate.Report) string {
	if report.OK() {
		return styleSuccess.Render("✅ All layer dependencies respect the strict rule") + "\n"
	}

	var b strings.Builder
	b.WriteString(styleFailure.Render("❌ Layer dependency violations found:"))
	b.WriteString("\n\n")

	for _, v := range report.Result.Violations {
		fmt.Fprintf(&b, "  %s/\n", filepath.ToSlash(v.CrateDir))
		fmt.Fprintf(&b, "    Layer %02d crate '%s' depends on layer %02d crate '%s'\n",
			v.CrateLayer, v.Crate, v.DepLayer, v.Dep)
		b.WriteString("    " + styleViolation.Render("VIOLATION: Lower layer depends on higher layer!") + "\n")
		fmt.Fprintf(&b, "    Dependency path: %s\n", filepath.ToSlash(v.DepDir))
		b.WriteString("\n")
	}

	b.WriteString(styleCount.Render(fmt.Sprintf("Found %d violation(s)", len(report.Result.Violations))))
	b.WriteString("\n\n")
	b.WriteString("Strict rule: Higher layers may only depend on lower layers.\n")
	b.WriteString("Layer rules:\n")
	b.WriteString(styleDim.Render(ruleTable(report.Layers)))
	b.WriteString("\n")
	return b.String()
}

// ruleTable renders the permitted-dependency table for the layers observed
// in this run, e.g.
//
//	01-transport → 01 only
//	02-runtime   → 01-02
//	99-tests     → any
func ruleTable(layers map[int]string) string {
	if len(layers) == 0 {
		return ""
	}

	nums := make([]int, 0, len(layers))
	width := 0
	for n, name := range layers {
		nums = append(nums, n)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Ints(nums)
	lowest, highest := nums[0], nums[len(nums)-1]

	var b strings.Builder
	for _, n := range nums {
		var rule string
		switch {
		case n == lowest:
			rule = fmt.Sprintf("%02d only", n)
		case n == highest:
			rule = "any"
		default:
			rule = fmt.Sprintf("%02d-%02d", lowest, n)
		}
		fmt.Fprintf(&b, "  %-*s → %s\n", width, layers[n], rule)
	}
	return strings.TrimRight(b.String(), "\n")
}
