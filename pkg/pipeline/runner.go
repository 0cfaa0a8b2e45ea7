package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ariel/pkg/cache"
	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/extract"
	"github.com/matzehuels/ariel/pkg/markdown"
	"github.com/matzehuels/ariel/pkg/observability"
	"github.com/matzehuels/ariel/pkg/render/mermaid"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store render results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// MaxDepth is the default expansion limit; 0 is unlimited.
	MaxDepth int

	// TTL is how long rendered diagrams are cached.
	TTL time.Duration
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
		TTL:    cache.DefaultTTL,
	}
}

// Render extracts tree and renders it, serving the text from the cache when
// the same model was rendered before.
func (r *Runner) Render(ctx context.Context, tree element.Element, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	// Stage 1: Extract
	maxDepth := opts.MaxDepth
	if maxDepth == 0 {
		maxDepth = r.MaxDepth
	}
	extractStart := time.Now()
	ex, err := extract.Extract(tree,
		extract.WithLogger(logger),
		extract.WithMaxDepth(maxDepth),
		extract.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	g := ex.Graph
	result := &Result{
		Graph:       g,
		Diagnostics: ex.Diagnostics,
		Stats: Stats{
			NodeCount:     g.NodeCount(),
			EdgeCount:     g.EdgeCount(),
			SubgraphCount: g.SubgraphCount(),
			Expansions:    ex.Expansions,
			ExtractTime:   time.Since(extractStart),
		},
	}
	logger.Debug("extracted graph",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"diagnostics", len(result.Diagnostics),
		"duration", result.Stats.ExtractTime)

	// Stage 2: Lookup
	graphData, err := diagram.MarshalGraph(g)
	if err != nil {
		return nil, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	result.GraphHash = cache.Hash(graphData)

	title := opts.Title
	if title == "" {
		title = result.Title()
	}
	cacheKey := r.Keyer.DiagramKey(result.GraphHash, cache.DiagramKeyOpts{Output: opts.Output, Title: title})

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil {
			logger.Debug("cache lookup failed", "err", err)
		}
		if err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "diagram")
			result.Text = string(data)
			result.CacheHit = true
			logger.Info("rendered diagram", "nodes", result.Stats.NodeCount, "cached", true)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "diagram")
	}

	// Stage 3: Render
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(g.Kind))
	renderStart := time.Now()

	text := mermaid.Render(g)
	if opts.Output == OutputMarkdown {
		text = markdown.Document(title, text)
	}
	result.Text = text
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, string(g.Kind), len(text), result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, cacheKey, []byte(text), r.TTL); err != nil {
		logger.Debug("cache store failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "diagram", len(text))
	}

	logger.Info("rendered diagram",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.ExtractTime+result.Stats.RenderTime)

	return result, nil
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
