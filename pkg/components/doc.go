// Package components provides the built-in diagram components.
//
// Every constructor returns an [element.Composite]; nothing is validated
// until the extractor invokes it. A component with a missing required prop
// fails at that point and the failure is reported as a diagnostic.
//
//	components.Graph(components.GraphProps{Title: "Checkout"},
//	    components.Circle(components.NodeProps{ID: "start"}, element.Text("Start")),
//	    components.Rectangle(components.NodeProps{ID: "pay", Label: "Pay"}),
//	    components.Arrow(components.EdgeProps{From: "start", To: "pay"}),
//	)
//
// # Built-ins
//
// The set is closed and enumerated by [Sugar]:
//
//	Node, Edge, Subgraph, Graph          pass-through primitives
//	Circle, Rectangle, Diamond, Hexagon,
//	Parallelogram, Trapezoid,
//	DoubleCircle                         nodes with a fixed shape
//	Arrow, Line, DottedArrow,
//	DashedArrow, ThickArrow              edges with a fixed arrow style
//
// Node labels fall back to the concatenated text children when no label
// prop is given. Graph defaults to a top-to-bottom flowchart.
package components
