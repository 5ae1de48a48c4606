// Package pkg provides the core libraries for layerlint.
//
// # Overview
//
// layerlint validates that crates in a numbered-layer workspace only depend
// downward or sideways. The typical data flow:
//
//	workspace root
//	     ↓
//	[workspace] discover Cargo.toml files (sorted, build output excluded)
//	     ↓
//	[manifest]  extract crate name + path dependencies
//	     ↓
//	[workspace] resolve path literals to canonical locations
//	     ↓
//	[layers]    classify both endpoints by their path
//	     ↓
//	[rules]     flag edges pointing at a higher-numbered layer
//	     ↓
//	[validate]  aggregate the full report
//
// The [graph] package turns a report into a Graphviz DOT/SVG export, and
// [observability] offers run hooks for optional instrumentation. [errors]
// carries structured error codes and [buildinfo] the ldflags version data.
//
// # Quick Start
//
//	report, err := validate.Run(ctx, validate.Options{Root: "crates"})
//	if err != nil {
//	    return err
//	}
//	for _, v := range report.Result.Violations {
//	    fmt.Printf("%s (layer %02d) depends on %s (layer %02d)\n",
//	        v.Crate, v.CrateLayer, v.Dep, v.DepLayer)
//	}
//
// [workspace]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/workspace
// [manifest]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/manifest
// [layers]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/layers
// [rules]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/rules
// [validate]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/validate
// [graph]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/graph
// [observability]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/observability
// [errors]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/layerlint/layerlint/pkg/buildinfo
package pkg
