package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/composite/pkg/cache"
	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/observability"
	"github.com/matzehuels/composite/pkg/registry"
)

// artifactKeyType labels artifact entries in cache hooks.
const artifactKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
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

// Execute runs the complete compute → render pipeline with caching.
// A degenerate figure fails with DEGENERATE_COMPOSITE before anything is
// rendered.
func (r *Runner) Execute(ctx context.Context, reg *registry.Registry, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Compute
	computeStart := time.Now()
	res, err := r.Compute(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Composite = res
	result.Stats.ComputeTime = time.Since(computeStart)
	result.Stats.Filled = len(res.Filled())
	result.Stats.Holes = len(res.Holes())

	opts.Logger.Info("computed centroid",
		"x", res.Centroid.X(),
		"y", res.Centroid.Y(),
		"area", res.TotalArea,
		"duration", result.Stats.ComputeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hash, hit, err := r.render(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Hash = hash
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Compute applies the composite-body theorem to the registry's current
// contents. The result is never cached.
func (r *Runner) Compute(ctx context.Context, reg *registry.Registry) (composite.Result, error) {
	snap := reg.Snapshot()
	observability.Pipeline().OnComputeStart(ctx, len(snap.Filled), len(snap.Holes))

	start := time.Now()
	res, err := composite.Compute(snap.Filled, snap.Holes)
	observability.Pipeline().OnComputeComplete(ctx, res.TotalArea, time.Since(start), err)

	if err != nil {
		r.Logger.Debug("composite is degenerate", "filled", len(snap.Filled), "holes", len(snap.Holes))
		return composite.Result{}, err
	}
	return res, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res composite.Result, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	artifacts, _, hit, err := r.render(ctx, res, opts)
	return artifacts, hit, err
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res composite.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, res composite.Result, opts Options) (map[string][]byte, string, bool, error) {
	hash, err := HashResult(res)
	if err != nil {
		return nil, "", false, err
	}

	// Try to get all formats from cache
	if !opts.NoCache {
		if artifacts, ok := r.cached(ctx, hash, opts); ok {
			return artifacts, hash, true, nil
		}
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(res, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	// Cache each format
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, 0); err != nil {
			opts.Logger.Debug("cache write failed", "format", format, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, artifactKeyType, len(data))
	}

	return rendered, hash, false, nil
}

func (r *Runner) cached(ctx context.Context, hash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, artifactKeyType)
			return nil, false
		}
		artifacts[format] = data
	}
	observability.Cache().OnCacheHit(ctx, artifactKeyType)
	return artifacts, true
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
