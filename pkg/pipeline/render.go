package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ariel/pkg/components"
	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/document"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/markdown"
)

// defaultRunner renders without caching or logging.
var defaultRunner = NewRunner(nil, nil, log.New(io.Discard))

// Render extracts and renders tree with default options.
func Render(tree element.Element) (string, error) {
	res, err := defaultRunner.Render(context.Background(), tree, Options{})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// RenderToFile renders tree and writes it to path as a markdown document
// titled after the graph, creating parent directories as needed.
func (r *Runner) RenderToFile(ctx context.Context, tree element.Element, path string, opts Options) (*Result, error) {
	opts.Output = OutputText
	res, err := r.Render(ctx, tree, opts)
	if err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = res.Title()
	}
	if err := markdown.WriteFile(path, title, res.Text); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return res, nil
}

// RenderToFile renders tree to path with default options.
func RenderToFile(tree element.Element, path string) error {
	_, err := defaultRunner.RenderToFile(context.Background(), tree, path, Options{})
	return err
}

// RenderDocument decodes a declarative document and renders it. Component
// names resolve through reg; nil uses the built-ins.
func (r *Runner) RenderDocument(ctx context.Context, data []byte, format document.Format, reg *document.Registry, opts Options) (*Result, error) {
	doc, err := document.Decode(data, format)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, doc.Element(reg), opts)
}

// SimpleOptions configures [RenderSimple]. Empty fields default to a
// top-to-bottom flowchart.
type SimpleOptions struct {
	Kind      diagram.Kind
	Direction diagram.Direction
	Title     string
}

// SimpleGraph builds a graph root holding the given nodes followed by the
// given edges.
func SimpleGraph(nodes []diagram.Node, edges []diagram.Edge, opts SimpleOptions) element.Element {
	children := make([]element.Element, 0, len(nodes)+len(edges))
	for _, n := range nodes {
		children = append(children, element.NodeElement{Node: n})
	}
	for _, e := range edges {
		children = append(children, element.EdgeElement{Edge: e})
	}
	return components.Graph(components.GraphProps{
		Kind:      opts.Kind,
		Direction: opts.Direction,
		Title:     opts.Title,
	}, children...)
}

// RenderSimple renders a flat graph without composing an element tree.
func RenderSimple(nodes []diagram.Node, edges []diagram.Edge, opts SimpleOptions) (string, error) {
	return Render(SimpleGraph(nodes, edges, opts))
}
