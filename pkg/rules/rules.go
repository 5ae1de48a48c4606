// Package rules implements the strict layering rule.
//
// Higher-numbered layers may depend on any lower-numbered layer and on
// their own layer. Lower-numbered layers must never depend on
// higher-numbered layers. The rule is a pure per-edge predicate; the
// driver in pkg/validate feeds it every resolved edge and collects the
// violations.
package rules

// Module is one crate under validation.
type Module struct {
	Name  string // declared crate name
	Dir   string // crate directory, relative to the workspace root
	Layer int    // derived layer number
}

// ResolvedEdge is one declared path dependency with its target resolved
// and classified.
type ResolvedEdge struct {
	Dep     string // dependency name as declared in the manifest
	Literal string // relative path literal as written
	Target  string // resolved target directory, relative to the workspace root
	Layer   int    // target's layer number, meaningful only when Layered
	Layered bool   // whether the target is inside the layering system
}

// Violation records one edge that breaks the strict rule. Violations are
// immutable findings: produced here, consumed by the reporter, never
// mutated.
type Violation struct {
	Crate      string // depending crate's name
	CrateDir   string // depending crate's directory, relative to the root
	CrateLayer int
	Dep        string // dependency name
	DepDir     string // resolved dependency directory, relative to the root
	DepLayer   int
}

// Check applies the strict rule to a single edge.
//
// Unlayered targets are out of system and never violate. Same-layer edges
// are always permitted, including same-layer cycles. Only an edge pointing
// at a strictly higher-numbered layer is a violation.
func Check(mod Module, edge ResolvedEdge) (Violation, bool) {
	if !edge.Layered {
		return Violation{}, false
	}
	if edge.Layer <= mod.Layer {
		return Violation{}, false
	}
	return Violation{
		Crate:      mod.Name,
		CrateDir:   mod.Dir,
		CrateLayer: mod.Layer,
		Dep:        edge.Dep,
		DepDir:     edge.Target,
		DepLayer:   edge.Layer,
	}, true
}

// Result aggregates the findings of one validation run.
type Result struct {
	Modules    int // layered modules checked
	Edges      int // resolved edges evaluated
	Violations []Violation
}

// OK reports whether the run found no violations.
func (r *Result) OK() bool {
	return len(r.Violations) == 0
}
