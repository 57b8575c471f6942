package observability

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Recorder counts events. It implements every hook interface and is safe
// for concurrent use.
type Recorder struct {
	renders     atomic.Int64
	failures    atomic.Int64
	dropped     atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	requests    atomic.Int64
	serverErrs  atomic.Int64
}

// NewRecorder returns a zeroed recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Snapshot is a point-in-time copy of a Recorder's counters.
type Snapshot struct {
	Renders         int64 `json:"renders"`
	RenderFailures  int64 `json:"render_failures"`
	DroppedMessages int64 `json:"dropped_messages"`
	CacheHits       int64 `json:"cache_hits"`
	CacheMisses     int64 `json:"cache_misses"`
	Requests        int64 `json:"requests"`
	ServerErrors    int64 `json:"server_errors"`
}

// Snapshot returns the current counters.
func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{
		Renders:         r.renders.Load(),
		RenderFailures:  r.failures.Load(),
		DroppedMessages: r.dropped.Load(),
		CacheHits:       r.cacheHits.Load(),
		CacheMisses:     r.cacheMisses.Load(),
		Requests:        r.requests.Load(),
		ServerErrors:    r.serverErrs.Load(),
	}
}

func (r *Recorder) OnParseStart(context.Context, string, string) {}
func (r *Recorder) OnParseComplete(_ context.Context, _, _ string, _ int, _ time.Duration, err error) {
	if err != nil {
		r.failures.Add(1)
	}
}
func (r *Recorder) OnLayoutStart(context.Context, string, int) {}
func (r *Recorder) OnLayoutComplete(_ context.Context, _ string, _ time.Duration, err error) {
	if err != nil {
		r.failures.Add(1)
	}
}
func (r *Recorder) OnRenderStart(context.Context, []string) {}
func (r *Recorder) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	if err != nil {
		r.failures.Add(1)
		return
	}
	r.renders.Add(1)
}
func (r *Recorder) OnMessagesDropped(_ context.Context, _ string, count int) {
	r.dropped.Add(int64(count))
}

func (r *Recorder) OnCacheHit(context.Context, string)      { r.cacheHits.Add(1) }
func (r *Recorder) OnCacheMiss(context.Context, string)     { r.cacheMisses.Add(1) }
func (r *Recorder) OnCacheSet(context.Context, string, int) {}

func (r *Recorder) OnRequest(context.Context, string, string) { r.requests.Add(1) }
func (r *Recorder) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	if status >= 500 {
		r.serverErrs.Add(1)
	}
}

var (
	_ PipelineHooks = (*Recorder)(nil)
	_ CacheHooks    = (*Recorder)(nil)
	_ HTTPHooks     = (*Recorder)(nil)
)

// LogHooks writes pipeline and cache events to a logger at debug level.
type LogHooks struct {
	NoopHTTPHooks
	Logger *log.Logger
}

func (h LogHooks) OnParseStart(_ context.Context, kind, name string) {
	h.Logger.Debug("parse", "kind", kind, "name", name)
}
func (h LogHooks) OnParseComplete(_ context.Context, kind, name string, n int, d time.Duration, err error) {
	h.Logger.Debug("parsed", "kind", kind, "name", name, "entities", n, "took", d, "err", err)
}
func (h LogHooks) OnLayoutStart(_ context.Context, kind string, n int) {
	h.Logger.Debug("layout", "kind", kind, "entities", n)
}
func (h LogHooks) OnLayoutComplete(_ context.Context, kind string, d time.Duration, err error) {
	h.Logger.Debug("laid out", "kind", kind, "took", d, "err", err)
}
func (h LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render", "formats", formats)
}
func (h LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.Logger.Debug("rendered", "formats", formats, "took", d, "err", err)
}
func (h LogHooks) OnMessagesDropped(_ context.Context, name string, count int) {
	h.Logger.Debug("messages dropped", "diagram", name, "count", count)
}
func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}
func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}
func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}
