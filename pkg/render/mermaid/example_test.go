package mermaid_test

import (
	"fmt"

	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/render/mermaid"
)

func ExampleRender() {
	g := &diagram.Graph{
		Kind:      diagram.KindFlowchart,
		Direction: diagram.DirectionLR,
		Title:     "Checkout",
		Nodes: []diagram.Node{
			{ID: "cart", Label: "Cart"},
			{ID: "pay", Label: "Pay?", Shape: diagram.ShapeRhombus},
		},
		Edges: []diagram.Edge{
			{From: "cart", To: "pay"},
			{From: "pay", To: "done", Label: "ok", Arrow: diagram.ArrowStyleThick},
		},
		Subgraphs: []diagram.Subgraph{{
			ID:    "retry",
			Label: "Retry",
			Nodes: []diagram.Node{{ID: "again", Label: "Again", Shape: diagram.ShapeCircle}},
			Edges: []diagram.Edge{{From: "pay", To: "again", Label: "fail", Arrow: diagram.ArrowStyleDotted}},
		}},
	}
	fmt.Println(mermaid.Render(g))
	// Output:
	// flowchart LR
	// %% title Checkout
	// cart[Cart]
	// pay{Pay?}
	// cart --> pay
	// pay == ok ==> done
	// subgraph retry
	//   title Retry
	//   again((Again))
	//   pay -. fail .-> again
	// end
}

func ExampleEdge() {
	fmt.Println(mermaid.Edge(diagram.Edge{From: "a", To: "b", Label: "Go", Arrow: diagram.ArrowStyleThick}))
	fmt.Println(mermaid.Edge(diagram.Edge{From: "a", To: "b", Label: "dropped"}))
	// Output:
	// a == Go ==> b
	// a --> b
}
