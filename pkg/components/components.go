package components

import (
	"maps"

	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
)

// NodeProps configures a node component. Shape is only read by [Node]; the
// shape variants fix their own.
type NodeProps struct {
	ID    string
	Label string
	Shape diagram.Shape
	Class string
	Style map[string]string
}

// EdgeProps configures an edge component. Arrow is only read by [Edge].
type EdgeProps struct {
	From  string
	To    string
	Label string
	Arrow diagram.ArrowStyle
	Style map[string]string
}

// SubgraphProps configures a subgraph component.
type SubgraphProps struct {
	ID    string
	Label string
}

// GraphProps configures the root graph. Empty fields take the defaults
// flowchart and TB.
type GraphProps struct {
	Kind      diagram.Kind
	Direction diagram.Direction
	Title     string
}

// Props converts the typed fields to a property bag, omitting empties.
func (p NodeProps) Props() element.Props {
	out := element.Props{}
	set(out, PropID, p.ID)
	set(out, PropLabel, p.Label)
	set(out, PropShape, string(p.Shape))
	set(out, PropClass, p.Class)
	if len(p.Style) > 0 {
		out[PropStyle] = maps.Clone(p.Style)
	}
	return out
}

// Props converts the typed fields to a property bag, omitting empties.
func (p EdgeProps) Props() element.Props {
	out := element.Props{}
	set(out, PropFrom, p.From)
	set(out, PropTo, p.To)
	set(out, PropLabel, p.Label)
	set(out, PropArrow, string(p.Arrow))
	if len(p.Style) > 0 {
		out[PropStyle] = maps.Clone(p.Style)
	}
	return out
}

// Props converts the typed fields to a property bag, omitting empties.
func (p SubgraphProps) Props() element.Props {
	out := element.Props{}
	set(out, PropID, p.ID)
	set(out, PropLabel, p.Label)
	return out
}

// Props converts the typed fields to a property bag, omitting empties.
func (p GraphProps) Props() element.Props {
	out := element.Props{}
	set(out, PropKind, string(p.Kind))
	set(out, PropDirection, string(p.Direction))
	set(out, PropTitle, p.Title)
	return out
}

func set(p element.Props, key, value string) {
	if value != "" {
		p[key] = value
	}
}

// =============================================================================
// Constructors
// =============================================================================

// Graph returns the root graph component.
func Graph(p GraphProps, children ...element.Element) element.Composite {
	return SugarGraph.Create(p.Props(), children...)
}

// Subgraph returns a subgraph component wrapping children.
func Subgraph(p SubgraphProps, children ...element.Element) element.Composite {
	return SugarSubgraph.Create(p.Props(), children...)
}

// Node returns a node component using p.Shape. Text children become the
// label when p.Label is empty.
func Node(p NodeProps, children ...element.Element) element.Composite {
	return SugarNode.Create(p.Props(), children...)
}

// Edge returns an edge component using p.Arrow.
func Edge(p EdgeProps, children ...element.Element) element.Composite {
	return SugarEdge.Create(p.Props(), children...)
}

// Circle returns a circular node.
func Circle(p NodeProps, children ...element.Element) element.Composite {
	return SugarCircle.Create(p.Props(), children...)
}

// Rectangle returns a rectangular node.
func Rectangle(p NodeProps, children ...element.Element) element.Composite {
	return SugarRectangle.Create(p.Props(), children...)
}

// Diamond returns a rhombus node, usually a decision.
func Diamond(p NodeProps, children ...element.Element) element.Composite {
	return SugarDiamond.Create(p.Props(), children...)
}

// Hexagon returns a hexagon node.
func Hexagon(p NodeProps, children ...element.Element) element.Composite {
	return SugarHexagon.Create(p.Props(), children...)
}

// Parallelogram returns a parallelogram node.
func Parallelogram(p NodeProps, children ...element.Element) element.Composite {
	return SugarParallelogram.Create(p.Props(), children...)
}

// Trapezoid returns a trapezoid node.
func Trapezoid(p NodeProps, children ...element.Element) element.Composite {
	return SugarTrapezoid.Create(p.Props(), children...)
}

// DoubleCircle returns a double circle node.
func DoubleCircle(p NodeProps, children ...element.Element) element.Composite {
	return SugarDoubleCircle.Create(p.Props(), children...)
}

// Arrow returns a solid arrow edge.
func Arrow(p EdgeProps, children ...element.Element) element.Composite {
	return SugarArrow.Create(p.Props(), children...)
}

// Line returns an edge without arrowhead.
func Line(p EdgeProps, children ...element.Element) element.Composite {
	return SugarLine.Create(p.Props(), children...)
}

// DottedArrow returns a dotted arrow edge.
func DottedArrow(p EdgeProps, children ...element.Element) element.Composite {
	return SugarDottedArrow.Create(p.Props(), children...)
}

// DashedArrow returns a dashed arrow edge. Mermaid draws it like
// [DottedArrow].
func DashedArrow(p EdgeProps, children ...element.Element) element.Composite {
	return SugarDashedArrow.Create(p.Props(), children...)
}

// ThickArrow returns a thick arrow edge.
func ThickArrow(p EdgeProps, children ...element.Element) element.Composite {
	return SugarThickArrow.Create(p.Props(), children...)
}
