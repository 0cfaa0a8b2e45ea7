// Package pipeline provides the render pipeline shared by the CLI and the
// HTTP service.
//
// # Architecture
//
// A render runs three stages:
//
//  1. Extract: resolve the element tree into a graph model
//  2. Lookup: derive a cache key from the model hash and return a cached
//     diagram when present
//  3. Render: encode the model as mermaid text, optionally wrapped in a
//     markdown document, and store it in the cache
//
// Component failures during extraction are not errors: they are returned
// in [Result.Diagnostics]. Root failures abort the run.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	res, err := runner.Render(ctx, tree, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Text)
//
// Without a runner:
//
//	text, err := pipeline.Render(tree)
//
//	text, err := pipeline.RenderSimple(nodes, edges, pipeline.SimpleOptions{Title: "Flow"})
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/extract"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Output wrappers.
const (
	OutputText     = "text"
	OutputMarkdown = "markdown"
)

// ValidOutputs is the set of supported output wrappers.
var ValidOutputs = map[string]bool{
	OutputText:     true,
	OutputMarkdown: true,
}

// DefaultTitle is the markdown heading for untitled diagrams.
const DefaultTitle = "Graph"

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one render.
type Options struct {
	// Output is OutputText (default) or OutputMarkdown.
	Output string `json:"output,omitempty"`

	// Title overrides the markdown heading. Defaults to the graph title.
	Title string `json:"title,omitempty"`

	// MaxDepth limits nested custom component expansion, not counting
	// built-ins; 0 uses the runner's limit, which defaults to unlimited.
	MaxDepth int `json:"max_depth,omitempty"`

	// Refresh skips the cache lookup; the result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this render.
	Logger *log.Logger `json:"-"`
}

// ValidateOutput checks that an output wrapper is valid.
func ValidateOutput(output string) error {
	if !ValidOutputs[output] {
		return fmt.Errorf("invalid output: %q (must be one of: text, markdown)", output)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates the options.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Output == "" {
		o.Output = OutputText
	}
	if err := ValidateOutput(o.Output); err != nil {
		return err
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth: %d (must be >= 0)", o.MaxDepth)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a render.
type Result struct {
	// Text is the rendered diagram, or the markdown document for
	// OutputMarkdown.
	Text string

	// Graph is the extracted model.
	Graph *diagram.Graph

	// GraphHash is the content hash of the model.
	GraphHash string

	// Diagnostics lists the components that failed and were skipped.
	Diagnostics []extract.Diagnostic

	Stats Stats

	// CacheHit reports whether Text came from the cache.
	CacheHit bool
}

// Title returns the graph title, or DefaultTitle when it has none.
func (r *Result) Title() string {
	if r.Graph != nil && r.Graph.Title != "" {
		return r.Graph.Title
	}
	return DefaultTitle
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount     int           `json:"nodes"`
	EdgeCount     int           `json:"edges"`
	SubgraphCount int           `json:"subgraphs"`
	Expansions    int           `json:"expansions"`
	ExtractTime   time.Duration `json:"extract_ns"`
	RenderTime    time.Duration `json:"render_ns"`
}
