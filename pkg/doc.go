// Package pkg provides the libraries behind ariel, which turns trees of
// reusable components into mermaid diagrams.
//
// # Architecture
//
// A render flows through four layers:
//
//	element tree ([element], built with [components] or decoded by [document])
//	         ↓
//	    [extract] (expand composites, collect nodes, edges and subgraphs)
//	         ↓
//	    [diagram].Graph (the model)
//	         ↓
//	    [render/mermaid] (text) → optionally [markdown] (document)
//
// [pipeline] ties the layers together with caching from [cache], and is
// shared by the CLI and the HTTP service in [server].
//
// # Quick Start
//
//	tree := components.Graph(components.GraphProps{Title: "Checkout"},
//	    components.Circle(components.NodeProps{ID: "start"}, element.Text("Start")),
//	    components.Rectangle(components.NodeProps{ID: "pay", Label: "Pay"}),
//	    components.Arrow(components.EdgeProps{From: "start", To: "pay"}),
//	)
//	text, err := pipeline.Render(tree)
//
// # Main Packages
//
// [element] - The closed element sum type and lazily invoked composites.
//
// [components] - Built-in node, edge, subgraph and graph components.
//
// [extract] - Tree walking with recovered component failures reported as
// diagnostics.
//
// [document] - YAML, TOML and JSON documents resolved through a component
// registry.
//
// [config] - Settings from ariel.toml, .env and ARIEL_* variables.
//
// [observability] - Hooks for metrics and tracing backends.
package pkg
