// Package validate drives a full layer-dependency validation run.
//
// A run discovers every crate manifest under the workspace root, classifies
// each crate's layer from its path, extracts the crate's path dependencies,
// resolves each dependency to its canonical location, and applies the
// strict layering rule to every edge. All violations are collected in one
// pass; the run never stops at the first finding.
//
// Runs are deterministic: manifests are processed in sorted path order and
// extracted edges are sorted, so two runs over an unchanged workspace
// produce identical reports.
package validate

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/layerlint/layerlint/pkg/errors"
	"github.com/layerlint/layerlint/pkg/layers"
	"github.com/layerlint/layerlint/pkg/manifest"
	"github.com/layerlint/layerlint/pkg/observability"
	"github.com/layerlint/layerlint/pkg/rules"
	"github.com/layerlint/layerlint/pkg/workspace"
)

// Options configures a validation run.
type Options struct {
	// Root is the directory containing the layered crates, typically
	// "crates" under the repository root.
	Root string

	// Exclude skips subtrees during discovery. Nil uses
	// workspace.DefaultExclude, which skips build output directories.
	Exclude workspace.ExcludeFunc

	// Logger receives structured progress output. Nil uses log.Default().
	Logger *log.Logger
}

// Edge is one resolved dependency edge together with its source crate and
// the rule outcome.
type Edge struct {
	From rules.Module
	rules.ResolvedEdge
	Violates bool
}

// Report is the complete outcome of one validation run.
type Report struct {
	RunID    string         // unique identifier for this run
	Root     string         // absolute workspace root
	Crates   []rules.Module // layered crates in processing order
	Edges    []Edge         // every resolved edge in processing order
	Layers   map[int]string // layer number -> top-level directory name
	Duration time.Duration
	Result   rules.Result
}

// OK reports whether the run found no violations.
func (r *Report) OK() bool {
	return r.Result.OK()
}

// Run validates the workspace rooted at opts.Root and returns the full
// report. Manifest read or parse failures are fatal: the error carries the
// offending path and no report is returned, so a broken manifest can never
// silently hide a violation.
func Run(ctx context.Context, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	runID := uuid.NewString()
	start := time.Now()
	hooks := observability.Run()

	absRoot, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRoot, err, "resolve root %s", opts.Root)
	}

	logger.Debug("starting validation", "run", runID, "root", absRoot)

	hooks.OnDiscoverStart(ctx, runID, absRoot)
	discoverStart := time.Now()
	manifests, err := workspace.Discover(absRoot, opts.Exclude)
	hooks.OnDiscoverComplete(ctx, runID, absRoot, len(manifests), time.Since(discoverStart), err)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered manifests", "run", runID, "count", len(manifests))

	report := &Report{
		RunID:  runID,
		Root:   absRoot,
		Layers: make(map[int]string),
	}

	for _, path := range manifests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := checkManifest(ctx, runID, absRoot, path, logger, hooks, report); err != nil {
			return nil, err
		}
	}

	report.Duration = time.Since(start)
	hooks.OnRunComplete(ctx, runID, report.Result.Modules, report.Result.Edges, len(report.Result.Violations), report.Duration)
	logger.Debug("validation complete",
		"run", runID,
		"modules", report.Result.Modules,
		"edges", report.Result.Edges,
		"violations", len(report.Result.Violations),
		"duration", report.Duration.Round(time.Millisecond))

	return report, nil
}

// checkManifest processes a single discovered manifest: classify, extract,
// resolve, and rule-check each edge. Unlayered crates are skipped entirely;
// they are outside the layering system and never a source of edges.
func checkManifest(ctx context.Context, runID, root, path string, logger *log.Logger, hooks observability.RunHooks, report *Report) error {
	relDir, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "relativize %s", path)
	}

	layer, ok := layers.Classify(relDir)
	if !ok {
		logger.Debug("skipping unlayered crate", "run", runID, "dir", relDir)
		return nil
	}

	m, err := manifest.Parse(path)
	if err != nil {
		hooks.OnManifestExtracted(ctx, runID, path, 0, err)
		return err
	}
	hooks.OnManifestExtracted(ctx, runID, path, len(m.PathDeps), nil)

	mod := rules.Module{Name: m.Name, Dir: relDir, Layer: layer}
	report.Crates = append(report.Crates, mod)
	report.Result.Modules++
	if _, seen := report.Layers[layer]; !seen {
		report.Layers[layer] = topSegment(relDir)
	}

	logger.Debug("checking crate", "run", runID, "crate", mod.Name, "layer", mod.Layer, "deps", len(m.PathDeps))

	for _, dep := range m.PathDeps {
		target := workspace.Resolve(path, dep.Path)
		relTarget, err := filepath.Rel(root, target)
		if err != nil {
			// Target on another volume: certainly outside the workspace.
			relTarget = target
		}

		depLayer, layered := layers.Classify(relTarget)
		edge := rules.ResolvedEdge{
			Dep:     dep.Name,
			Literal: dep.Path,
			Target:  relTarget,
			Layer:   depLayer,
			Layered: layered,
		}
		report.Result.Edges++

		v, violates := rules.Check(mod, edge)
		if violates {
			report.Result.Violations = append(report.Result.Violations, v)
			hooks.OnViolation(ctx, runID, v.Crate, v.Dep, v.CrateLayer, v.DepLayer)
			logger.Debug("violation", "run", runID, "crate", v.Crate, "crate_layer", v.CrateLayer, "dep", v.Dep, "dep_layer", v.DepLayer)
		}
		report.Edges = append(report.Edges, Edge{From: mod, ResolvedEdge: edge, Violates: violates})
	}

	return nil
}

// topSegment returns the first path segment, the layer directory itself
// for a crate like 01-transport/transport.
func topSegment(rel string) string {
	rel = filepath.ToSlash(rel)
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	return rel
}
