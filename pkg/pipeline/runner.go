package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ispi-lubango/tuscaviz/pkg/buildinfo"
	"github.com/ispi-lubango/tuscaviz/pkg/cache"
	"github.com/ispi-lubango/tuscaviz/pkg/errors"
	"github.com/ispi-lubango/tuscaviz/pkg/observability"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, keys are scoped by the build version.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
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

// Execute prepares the report once and renders every requested figure in
// every requested format, in order. Each artifact is handed to opts.Sink
// before the next one is rendered. The context is checked between figures.
func (r *Runner) Execute(ctx context.Context, rep report.Report, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	prepareStart := time.Now()
	data, err := Prepare(rep, opts.Points)
	result.Stats.PrepareTime = time.Since(prepareStart)
	observability.Pipeline().OnPrepare(ctx, len(rep.Classes), result.Stats.PrepareTime, err)
	if err != nil {
		return nil, err
	}
	result.Summary = data.Summary

	opts.Logger.Debug("synthesized roc curves",
		"classes", len(data.Series),
		"points", opts.Points,
		"duration", result.Stats.PrepareTime)

	reportHash, err := cache.HashJSON(rep)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash report")
	}

	renderStart := time.Now()
	for _, figure := range opts.Figures {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, format := range opts.Formats {
			a, err := r.renderCached(ctx, data, reportHash, figure, format, opts)
			if err != nil {
				return nil, err
			}
			if a.Cached {
				result.Stats.CacheHits++
			}
			result.Artifacts = append(result.Artifacts, a)
			if opts.Sink != nil {
				if err := opts.Sink(a); err != nil {
					if errors.GetCode(err) != "" {
						return nil, err
					}
					return nil, errors.Wrap(errors.ErrCodeWrite, err, "save %s", a.Name)
				}
			}
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("rendered figures",
		"figures", opts.Figures,
		"formats", opts.Formats,
		"cache_hits", result.Stats.CacheHits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) renderCached(ctx context.Context, d *Data, reportHash, figure, format string, opts Options) (Artifact, error) {
	a := Artifact{
		Figure: figure,
		Format: format,
		Name:   FileName(opts.Prefix, figure, format),
	}
	key := r.Keyer.ArtifactKey(reportHash, opts.ArtifactKeyOpts(figure, format))

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, a.Name)
		opts.Logger.Debug("cache hit", "file", a.Name)
		a.Data, a.Cached = data, true
		return a, nil
	} else if err != nil {
		opts.Logger.Warn("cache read failed", "file", a.Name, "error", err)
	}
	observability.Cache().OnCacheMiss(ctx, a.Name)

	hooks := observability.Pipeline()
	hooks.OnFigureStart(ctx, figure, format)
	start := time.Now()
	data, err := RenderFigure(ctx, d, figure, format, opts.Scale)
	hooks.OnFigureComplete(ctx, figure, format, len(data), time.Since(start), err)
	if err != nil {
		if ctx.Err() != nil {
			return a, ctx.Err()
		}
		if errors.GetCode(err) != "" {
			return a, err
		}
		return a, errors.Wrap(errors.ErrCodeRender, err, "render %s", a.Name)
	}
	a.Data = data
	opts.Logger.Debug("rendered", "file", a.Name, "bytes", len(data), "duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		opts.Logger.Warn("cache write failed", "file", a.Name, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, a.Name, len(data))
	}
	return a, nil
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
