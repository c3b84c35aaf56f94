// Package observability provides hooks for metrics and tracing of chart runs.
//
// Instrumentation is optional: the pipeline reports stage events to the
// registered hooks, and the defaults do nothing. Backends (Prometheus,
// OpenTelemetry, plain counters) are wired by main, never by libraries.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetIconHooks(&myIconHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, input)
//	// ... load roster ...
//	observability.Pipeline().OnLoadComplete(ctx, input, members, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, input string)
	OnLoadComplete(ctx context.Context, input string, members int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, members int)
	OnLayoutComplete(ctx context.Context, generations int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Icon Hooks
// =============================================================================

// IconHooks receives one event per icon the renderer attempted.
type IconHooks interface {
	OnIconLoaded(ctx context.Context, memberID string)
	OnIconFailed(ctx context.Context, memberID, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)       {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopIconHooks is a no-op implementation of IconHooks.
type NoopIconHooks struct{}

func (NoopIconHooks) OnIconLoaded(context.Context, string)                {}
func (NoopIconHooks) OnIconFailed(context.Context, string, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	iconHooks     IconHooks     = NoopIconHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetIconHooks registers custom icon hooks.
func SetIconHooks(h IconHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		iconHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Icons returns the registered icon hooks.
func Icons() IconHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return iconHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	iconHooks = NoopIconHooks{}
}
