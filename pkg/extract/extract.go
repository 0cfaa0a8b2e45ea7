package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/errors"
	"github.com/matzehuels/ariel/pkg/observability"
)

// RootPath is the path segment of the graph root in diagnostics.
const RootPath = "graph"

// Result is the outcome of a successful extraction.
type Result struct {
	Graph       *diagram.Graph
	Diagnostics []Diagnostic

	// Expansions counts the composites invoked, including failed ones.
	Expansions int
}

// Stats summarizes the result for logs and hooks.
func (r *Result) Stats() observability.ExtractStats {
	return observability.ExtractStats{
		Nodes:       r.Graph.NodeCount(),
		Edges:       r.Graph.EdgeCount(),
		Subgraphs:   r.Graph.SubgraphCount(),
		Expansions:  r.Expansions,
		Diagnostics: len(r.Diagnostics),
	}
}

// =============================================================================
// Options
// =============================================================================

type config struct {
	logger   *log.Logger
	maxDepth int
	ctx      context.Context
}

// Option configures an extraction.
type Option func(*config)

// WithLogger sets the logger recovered component failures are reported to.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxDepth limits how many user composite expansions may be nested in
// one chain. Built-in components are not counted. Zero, the default,
// disables the limit.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// =============================================================================
// Extraction
// =============================================================================

// Extract resolves root into a graph model.
//
// The root must be a graph element or a composite that eventually returns
// one. Failures of child composites do not abort extraction: they are
// recorded in [Result.Diagnostics] and the failing subtree is skipped.
// The returned error is non-nil only for root failures and, when a depth
// limit is set, for exceeding it.
func Extract(root element.Element, opts ...Option) (*Result, error) {
	cfg := config{logger: log.Default(), ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	hooks := observability.Extract()
	hooks.OnExtractStart(cfg.ctx)
	start := time.Now()

	x := &extractor{config: cfg}
	g, err := x.root(root, 0)
	if err != nil {
		hooks.OnExtractComplete(cfg.ctx, observability.ExtractStats{Expansions: x.expansions}, time.Since(start), err)
		return nil, err
	}

	res := &Result{Graph: g, Diagnostics: x.diags, Expansions: x.expansions}
	stats := res.Stats()
	elapsed := time.Since(start)
	hooks.OnExtractComplete(cfg.ctx, stats, elapsed, nil)

	cfg.logger.Debug("extracted graph",
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"subgraphs", stats.Subgraphs,
		"expansions", stats.Expansions,
		"diagnostics", stats.Diagnostics,
		"duration", elapsed)

	return res, nil
}

type extractor struct {
	config
	diags      []Diagnostic
	expansions int
}

// level accumulates one graph or subgraph level. The three sequences grow
// independently, so only within-kind order is kept.
type level struct {
	nodes     []diagram.Node
	edges     []diagram.Edge
	subgraphs []diagram.Subgraph
}

func newLevel() *level {
	return &level{
		nodes:     []diagram.Node{},
		edges:     []diagram.Edge{},
		subgraphs: []diagram.Subgraph{},
	}
}

func (x *extractor) root(el element.Element, depth int) (*diagram.Graph, error) {
	switch v := el.(type) {
	case element.GraphElement:
		lv := newLevel()
		if err := x.walk(v.Children, lv, depth, RootPath); err != nil {
			return nil, err
		}
		return &diagram.Graph{
			Kind:      v.Graph.Kind,
			Direction: v.Graph.Direction,
			Title:     v.Graph.Title,
			Nodes:     lv.nodes,
			Edges:     lv.edges,
			Subgraphs: lv.subgraphs,
		}, nil

	case element.Composite:
		if err := x.checkDepth(v, depth); err != nil {
			return nil, err
		}
		out, err := x.invoke(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRootInvocation, err, "root component %s failed", nameOf(v))
		}
		if out == nil {
			return nil, errors.New(errors.ErrCodeRootType, "root component %s returned nothing", nameOf(v))
		}
		return x.root(out, depth+cost(v))

	default:
		return nil, errors.New(errors.ErrCodeRootType, "root element must be a graph, got %s", element.KindOf(el))
	}
}

// walk processes the children of one level. Only a depth limit violation
// is returned as an error; component failures become diagnostics.
func (x *extractor) walk(el element.Element, lv *level, depth int, path string) error {
	switch v := el.(type) {
	case nil, element.Leaf:
		return nil

	case element.Fragment:
		for _, child := range v {
			if err := x.walk(child, lv, depth, path); err != nil {
				return err
			}
		}
		return nil

	case element.NodeElement:
		lv.nodes = append(lv.nodes, v.Node)
		return nil

	case element.EdgeElement:
		lv.edges = append(lv.edges, v.Edge)
		return nil

	case element.SubgraphElement:
		inner := newLevel()
		if err := x.walk(v.Children, inner, depth, path+"/subgraph:"+v.Subgraph.ID); err != nil {
			return err
		}
		lv.subgraphs = append(lv.subgraphs, diagram.Subgraph{
			ID:        v.Subgraph.ID,
			Label:     v.Subgraph.Label,
			Nodes:     inner.nodes,
			Edges:     inner.edges,
			Subgraphs: inner.subgraphs,
		})
		return nil

	case element.Composite:
		if err := x.checkDepth(v, depth); err != nil {
			return err
		}
		childPath := path + "/" + nameOf(v)
		out, err := x.invoke(v)
		if err != nil {
			x.record(nameOf(v), childPath, errors.Wrap(errors.ErrCodeComponentInvocation, err, "component %s failed", nameOf(v)))
			return nil
		}
		return x.walk(out, lv, depth+cost(v), childPath)

	case element.Opaque:
		return x.walk(v.Children, lv, depth, path)

	case element.GraphElement:
		// Only the root graph's descriptor counts; nested graphs are inlined.
		x.logger.Debug("inlining nested graph", "path", path)
		return x.walk(v.Children, lv, depth, path)

	default:
		return nil
	}
}

func (x *extractor) invoke(c element.Composite) (out element.Element, err error) {
	x.expansions++
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Invoke()
}

func (x *extractor) checkDepth(c element.Composite, depth int) error {
	if c.Builtin {
		return nil
	}
	if x.maxDepth > 0 && depth >= x.maxDepth {
		return errors.New(errors.ErrCodeRecursionLimit,
			"component %s exceeds the expansion limit of %d", nameOf(c), x.maxDepth)
	}
	return nil
}

// cost is how much expanding c adds to the nesting depth.
func cost(c element.Composite) int {
	if c.Builtin {
		return 0
	}
	return 1
}

func (x *extractor) record(name, path string, err error) {
	x.diags = append(x.diags, Diagnostic{
		Severity:  SeverityWarning,
		Component: name,
		Path:      path,
		Err:       err,
	})
	x.logger.Warn("skipping component", "component", name, "path", path, "err", err)
	observability.Extract().OnComponentError(x.ctx, name, path, err)
}

func nameOf(c element.Composite) string {
	if c.Name == "" {
		return "anonymous"
	}
	return c.Name
}
