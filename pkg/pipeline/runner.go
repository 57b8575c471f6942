package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackuml/pkg/cache"
	"github.com/matzehuels/stackuml/pkg/dag"
	"github.com/matzehuels/stackuml/pkg/errors"
	uio "github.com/matzehuels/stackuml/pkg/io"
	"github.com/matzehuels/stackuml/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → layout → render pipeline with caching.
// Build and layout always run; artifacts come from the cache when every
// requested format is present, unless opts.Refresh is set.
func (r *Runner) Execute(ctx context.Context, desc *uio.Description, opts Options) (*Result, error) {
	if desc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no diagram description")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	buildStart := time.Now()
	d, err := Build(ctx, desc, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.BrokenEdges = d.BrokenEdges
	if d.Kind == uio.KindSequence {
		result.Dropped = d.Sequence.Dropped()
		result.Stats.Entities = len(d.Sequence.Participants())
		result.Stats.Edges = len(d.Sequence.Messages())
	} else {
		result.Stats.Entities = d.Class.Len()
		result.Stats.Edges = len(d.Class.Relations())
		result.Stats.Ranks = int(dag.MaxRank(d.ClassLayout.Ranks))
	}

	result.Hash, err = cache.HashJSON(desc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash description")
	}

	r.Logger.Info("computed layout",
		"diagram", d.Name,
		"kind", d.Kind,
		"entities", result.Stats.Entities,
		"edges", result.Stats.Edges,
		"duration", result.Stats.BuildTime)
	if len(result.Dropped) > 0 {
		r.Logger.Warn("dropped messages with unknown participants", "diagram", d.Name, "count", len(result.Dropped))
	}

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, d, desc, result.Hash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders d, reading and writing per-format cache
// entries keyed by the description hash. The boolean reports whether every
// artifact was served from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *Diagram, desc *uio.Description, descHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	hooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(descHash, opts.ArtifactKeyOpts(format, desc))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				hooks.OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
		}
		hooks.OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, d, sub)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(descHash, opts.ArtifactKeyOpts(format, desc))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			r.Logger.Debug("cache set failed", "format", format, "error", err)
			continue
		}
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
