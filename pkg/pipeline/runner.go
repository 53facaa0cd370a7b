package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cloudarch/pkg/arch"
	"github.com/matzehuels/cloudarch/pkg/cache"
	"github.com/matzehuels/cloudarch/pkg/compose"
	"github.com/matzehuels/cloudarch/pkg/errors"
	"github.com/matzehuels/cloudarch/pkg/io"
	"github.com/matzehuels/cloudarch/pkg/observability"
	"github.com/matzehuels/cloudarch/pkg/render/nodelink"
)

// Runner executes the pipeline with render caching.
//
// The Runner keeps no state between runs besides the cache and logger.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// render is swapped in tests to exercise failure paths.
	render func(ctx context.Context, a *Architecture, dot, format string) ([]byte, error)
}

// NewRunner creates a runner with the given cache and logger.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &Runner{Cache: c, Logger: logger}
	r.render = func(ctx context.Context, a *Architecture, dot, format string) ([]byte, error) {
		return Render(ctx, a.Graph, dot, format)
	}
	return r
}

// Execute analyzes req and renders every recommended architecture.
//
// Architectures are rendered in order and the first failure stops the run.
// The returned Result then holds the architectures completed before the
// failure; their files stay on disk. It is nil only when the run failed
// before any architecture was started.
//
// ctx is checked before each architecture, so cancellation stops the run
// between artifacts and returns ctx.Err().
func (r *Runner) Execute(ctx context.Context, req arch.Requirement, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", opts.OutputDir)
	}

	start := time.Now()
	result := &Result{RunID: uuid.New(), Requirement: req}

	descriptors := arch.Analyze(req)
	observability.Pipeline().OnAnalyze(ctx, len(descriptors))
	r.Logger.Debug("analyzed requirement",
		"run", result.RunID,
		"architectures", len(descriptors))

	for i, d := range descriptors {
		if err := ctx.Err(); err != nil {
			result.Stats.Duration = time.Since(start)
			return result, err
		}

		a, err := r.executeOne(ctx, i+1, d, opts, &result.Stats)
		if err != nil {
			r.Logger.Debug("run aborted",
				"run", result.RunID,
				"completed", len(result.Architectures),
				"error", err)
			result.Stats.Duration = time.Since(start)
			return result, err
		}
		result.Architectures = append(result.Architectures, *a)
	}

	if opts.Manifest {
		path := filepath.Join(opts.OutputDir, io.ManifestFile)
		if err := io.ExportManifest(manifest(result, start), path); err != nil {
			result.Stats.Duration = time.Since(start)
			return result, errors.Wrap(errors.ErrCodeIO, err, "write manifest")
		}
		result.ManifestPath = path
	}

	result.Stats.Duration = time.Since(start)
	return result, nil
}

func (r *Runner) executeOne(ctx context.Context, index int, d arch.Descriptor, opts Options, stats *Stats) (*Architecture, error) {
	g, err := compose.Build(d, opts.Compose)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "compose %s", d.Name)
	}
	a := &Architecture{Index: index, Descriptor: d, Graph: g}
	dot := nodelink.ToDOT(g, opts.DOT)
	observability.Pipeline().OnCompose(ctx, index, d.Name, g.NodeCount(), g.EdgeCount())

	r.Logger.Debug("composed diagram",
		"index", index,
		"name", d.Name,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())

	for _, format := range opts.Formats {
		data, cached, err := r.renderCached(ctx, a, dot, format)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s as %s", d.Name, format)
		}

		path := filepath.Join(opts.OutputDir, FileName(index, format))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}

		a.Artifacts = append(a.Artifacts, Artifact{Format: format, Path: path, Cached: cached})
		stats.Artifacts++
		if cached {
			stats.CacheHits++
		}
		r.Logger.Debug("wrote artifact", "path", path, "bytes", len(data), "cached", cached)
	}
	return a, nil
}

// renderCached renders one format, consulting the cache for Graphviz output.
// Cache failures are logged and never fail the run.
func (r *Runner) renderCached(ctx context.Context, a *Architecture, dot, format string) ([]byte, bool, error) {
	if !cacheable(format) {
		data, err := r.renderOne(ctx, a, dot, format)
		return data, false, err
	}

	key := cache.ArtifactKey(dot, format)
	if data, hit, err := r.Cache.Get(ctx, key); err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, format)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, format)

	data, err := r.renderOne(ctx, a, dot, format)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

func (r *Runner) renderOne(ctx context.Context, a *Architecture, dot, format string) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, a.Index, format)
	start := time.Now()
	data, err := r.render(ctx, a, dot, format)
	hooks.OnRenderComplete(ctx, a.Index, format, len(data), time.Since(start), err)
	return data, err
}

func manifest(res *Result, start time.Time) *io.Manifest {
	m := &io.Manifest{
		RunID:         res.RunID,
		GeneratedAt:   start.UTC().Truncate(time.Second),
		Requirement:   res.Requirement,
		Architectures: make([]io.Architecture, len(res.Architectures)),
	}
	for i, a := range res.Architectures {
		paths := make([]string, len(a.Artifacts))
		for j, art := range a.Artifacts {
			paths[j] = art.Path
		}
		m.Architectures[i] = io.Architecture{
			Index:      a.Index,
			Name:       a.Descriptor.Name,
			Components: a.Descriptor.Components,
			Artifacts:  paths,
		}
	}
	return m
}
