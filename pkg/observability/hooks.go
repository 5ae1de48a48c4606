// Package observability provides hooks for instrumenting validation runs.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about discovery, manifest extraction,
// and rule evaluation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for run events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Hooks are registered by main, not by libraries, which keeps the
// validation core free of observability framework imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRunHooks(&myRunHooks{})
//	    // ... run application
//	}
//
// The validator calls hooks as it works:
//
//	observability.Run().OnDiscoverStart(ctx, runID, root)
//	// ... walk the workspace ...
//	observability.Run().OnDiscoverComplete(ctx, runID, root, len(manifests), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RunHooks receives events from a validation run.
type RunHooks interface {
	// Discovery events
	OnDiscoverStart(ctx context.Context, runID, root string)
	OnDiscoverComplete(ctx context.Context, runID, root string, manifests int, duration time.Duration, err error)

	// Extraction events, one per manifest
	OnManifestExtracted(ctx context.Context, runID, path string, edges int, err error)

	// Rule evaluation events
	OnViolation(ctx context.Context, runID, crate, dep string, crateLayer, depLayer int)
	OnRunComplete(ctx context.Context, runID string, modules, edges, violations int, duration time.Duration)
}

// NoopRunHooks is a no-op implementation of RunHooks.
type NoopRunHooks struct{}

func (NoopRunHooks) OnDiscoverStart(context.Context, string, string) {}
func (NoopRunHooks) OnDiscoverComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopRunHooks) OnManifestExtracted(context.Context, string, string, int, error)     {}
func (NoopRunHooks) OnViolation(context.Context, string, string, string, int, int)       {}
func (NoopRunHooks) OnRunComplete(context.Context, string, int, int, int, time.Duration) {}

var (
	runHooks RunHooks = NoopRunHooks{}
	hooksMu  sync.RWMutex
)

// SetRunHooks registers custom run hooks.
// This should be called once at application startup before any validation.
func SetRunHooks(h RunHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		runHooks = h
	}
}

// Run returns the registered run hooks.
func Run() RunHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return runHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	runHooks = NoopRunHooks{}
}
