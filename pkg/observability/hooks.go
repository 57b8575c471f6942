// Package observability lets callers watch the layout pipeline, the artifact
// cache and the HTTP service without tying those packages to a metrics
// backend.
//
// Three hook sets exist: [PipelineHooks], [CacheHooks] and [HTTPHooks]. Each
// starts out as a no-op and can be replaced once at startup:
//
//	rec := observability.NewRecorder()
//	observability.SetPipelineHooks(rec)
//	observability.SetCacheHooks(rec)
//
// Instrumented code fetches the current hooks at the call site:
//
//	observability.Pipeline().OnLayoutStart(ctx, "class", len(entities))
//
// [Recorder] counts events and backs the /api/v1/stats endpoint.
// [LogHooks] traces events to a charm logger.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks observes Build and Render.
type PipelineHooks interface {
	OnParseStart(ctx context.Context, kind, name string)
	OnParseComplete(ctx context.Context, kind, name string, entityCount int, duration time.Duration, err error)
	OnLayoutStart(ctx context.Context, kind string, entityCount int)
	OnLayoutComplete(ctx context.Context, kind string, duration time.Duration, err error)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
	// OnMessagesDropped reports sequence messages whose endpoints are not
	// participants.
	OnMessagesDropped(ctx context.Context, name string, count int)
}

// CacheHooks observes artifact cache lookups and writes. keyType names the
// entry family, e.g. "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks observes requests to the HTTP service. path is the matched
// route pattern when one is known.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}
func (NoopPipelineHooks) OnMessagesDropped(context.Context, string, int)                   {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var hooks = func() *registry {
	r := &registry{}
	r.clear()
	return r
}()

func (r *registry) clear() {
	r.pipeline = NoopPipelineHooks{}
	r.cache = NoopCacheHooks{}
	r.http = NoopHTTPHooks{}
}

func (r *registry) update(fn func(*registry)) {
	r.mu.Lock()
	fn(r)
	r.mu.Unlock()
}

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.http = h })
	}
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.pipeline
}

// Cache returns the installed cache hooks.
func Cache() CacheHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.cache
}

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Reset reinstalls the no-op hooks.
func Reset() { hooks.update((*registry).clear) }
