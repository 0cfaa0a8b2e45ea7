// Package demo provides the built-in example diagrams shown by
// "ariel demo" and a set of reusable flow composites.
//
// The composites [State], [Event], [Outcome] and [Try] are ordinary
// components built from the sugar layer. [Register] makes them available
// to declarative documents.
package demo

import (
	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/pipeline"
)

// Demo is a named example diagram.
type Demo struct {
	Name        string
	Title       string
	Description string
	Build       func() element.Element
}

var demos = []Demo{
	{
		Name:        "flowchart",
		Title:       "Data Processing Flow",
		Description: "simple top-to-bottom flowchart",
		Build:       dataProcessing,
	},
	{
		Name:        "pipeline",
		Title:       "Data Pipeline",
		Description: "left-to-right flowchart",
		Build:       dataPipeline,
	},
	{
		Name:        "network",
		Title:       "Simple Network",
		Description: "plain graph with three nodes",
		Build:       simpleNetwork,
	},
	{
		Name:        "flow",
		Title:       "full flow example",
		Description: "login and cart subgraphs built from custom composites",
		Build:       FullFlow,
	},
}

// All returns the demos in display order.
func All() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// Names returns the demo names in display order.
func Names() []string {
	out := make([]string, len(demos))
	for i, d := range demos {
		out[i] = d.Name
	}
	return out
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func dataProcessing() element.Element {
	return pipeline.SimpleGraph(
		[]diagram.Node{
			{ID: "start", Label: "Start"},
			{ID: "process", Label: "Process Data"},
			{ID: "decision", Label: "Valid?"},
			{ID: "success", Label: "Success"},
			{ID: "error", Label: "Error"},
		},
		[]diagram.Edge{
			{From: "start", To: "process", Label: "Begin"},
			{From: "process", To: "decision", Label: "Check"},
			{From: "decision", To: "success", Label: "Yes"},
			{From: "decision", To: "error", Label: "No"},
		},
		pipeline.SimpleOptions{Kind: diagram.KindFlowchart, Direction: diagram.DirectionTB, Title: "Data Processing Flow"},
	)
}

func dataPipeline() element.Element {
	return pipeline.SimpleGraph(
		[]diagram.Node{
			{ID: "input", Label: "Input"},
			{ID: "transform", Label: "Transform"},
			{ID: "output", Label: "Output"},
		},
		[]diagram.Edge{
			{From: "input", To: "transform", Label: "Data"},
			{From: "transform", To: "output", Label: "Result"},
		},
		pipeline.SimpleOptions{Kind: diagram.KindFlowchart, Direction: diagram.DirectionLR, Title: "Data Pipeline"},
	)
}

func simpleNetwork() element.Element {
	return pipeline.SimpleGraph(
		[]diagram.Node{
			{ID: "a", Label: "Node A"},
			{ID: "b", Label: "Node B"},
			{ID: "c", Label: "Node C"},
		},
		[]diagram.Edge{
			{From: "a", To: "b", Label: "Connection 1"},
			{From: "b", To: "c", Label: "Connection 2"},
			{From: "a", To: "c", Label: "Direct"},
		},
		pipeline.SimpleOptions{Kind: diagram.KindGraph, Direction: diagram.DirectionTB, Title: "Simple Network"},
	)
}
