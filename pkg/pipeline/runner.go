package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blobposter/pkg/cache"
	"github.com/matzehuels/blobposter/pkg/observability"
	"github.com/matzehuels/blobposter/pkg/palette"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
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

// Execute runs generate → render. entries is the palette store contents.
func (r *Runner) Execute(ctx context.Context, opts Options, entries []palette.Entry) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	genStart := time.Now()
	p, err := r.Generate(ctx, opts.Config, entries)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Poster = p
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Layers = len(p.Layers)
	result.Stats.Colors = len(p.Colors)

	opts.Logger.Debug("generated poster",
		"layers", len(p.Layers),
		"colors", len(p.Colors),
		"seed", p.Config.Seed,
		"duration", result.Stats.GenerateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := PosterHash(p)
	if err != nil {
		return nil, fmt.Errorf("hash poster: %w", err)
	}
	result.PosterHash = hash

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, p, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate composes the poster and reports it to the pipeline hooks.
func (r *Runner) Generate(ctx context.Context, cfg poster.Config, entries []palette.Entry) (*poster.Poster, error) {
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, cfg.Layers, cfg.Seed)

	start := time.Now()
	p, err := poster.Generate(cfg, entries)
	layers := 0
	if p != nil {
		layers = len(p.Layers)
	}
	hooks.OnGenerateComplete(ctx, layers, time.Since(start), err)
	return p, err
}

// RenderWithCacheInfo renders every requested format, serving them from the
// cache when all are present, and reports whether that happened.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *poster.Poster, posterHash string, opts Options) (map[string][]byte, bool, error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(posterHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, "artifact")
				break
			}
			cacheHooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(p, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(posterHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// PosterHash hashes everything a poster's pixels depend on: the normalized
// config and the working color list.
func PosterHash(p *poster.Poster) (string, error) {
	return cache.HashJSON(struct {
		Config poster.Config   `json:"config"`
		Colors []palette.Entry `json:"colors"`
	}{p.Config, p.Colors})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
