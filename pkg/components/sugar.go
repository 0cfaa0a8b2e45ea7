package components

import (
	"fmt"

	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
)

// =============================================================================
// Sugar - Closed Set Of Built-in Components
// =============================================================================

// Sugar identifies a built-in component. Each value maps to exactly one
// primitive kind; the shape and arrow variants also fix the shape or arrow
// style of the primitive they produce.
type Sugar int

// Built-in components.
const (
	SugarNode Sugar = iota
	SugarEdge
	SugarSubgraph
	SugarGraph
	SugarCircle
	SugarRectangle
	SugarDiamond
	SugarHexagon
	SugarParallelogram
	SugarTrapezoid
	SugarDoubleCircle
	SugarArrow
	SugarLine
	SugarDottedArrow
	SugarDashedArrow
	SugarThickArrow

	numSugars
)

// Primitive is the kind of primitive a sugar component expands to.
type Primitive int

// Primitive kinds.
const (
	PrimitiveNode Primitive = iota + 1
	PrimitiveEdge
	PrimitiveSubgraph
	PrimitiveGraph
)

// String returns the primitive kind name.
func (p Primitive) String() string {
	switch p {
	case PrimitiveNode:
		return "node"
	case PrimitiveEdge:
		return "edge"
	case PrimitiveSubgraph:
		return "subgraph"
	case PrimitiveGraph:
		return "graph"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

type sugarSpec struct {
	name      string
	primitive Primitive
	shape     diagram.Shape      // fixed node shape, empty for pass-through
	arrow     diagram.ArrowStyle // fixed arrow style, empty for pass-through
}

// sugarTable is indexed by Sugar; its length ties it to the constant list.
var sugarTable = [numSugars]sugarSpec{
	SugarNode:          {name: "Node", primitive: PrimitiveNode},
	SugarEdge:          {name: "Edge", primitive: PrimitiveEdge},
	SugarSubgraph:      {name: "Subgraph", primitive: PrimitiveSubgraph},
	SugarGraph:         {name: "Graph", primitive: PrimitiveGraph},
	SugarCircle:        {name: "Circle", primitive: PrimitiveNode, shape: diagram.ShapeCircle},
	SugarRectangle:     {name: "Rectangle", primitive: PrimitiveNode, shape: diagram.ShapeDefault},
	SugarDiamond:       {name: "Diamond", primitive: PrimitiveNode, shape: diagram.ShapeRhombus},
	SugarHexagon:       {name: "Hexagon", primitive: PrimitiveNode, shape: diagram.ShapeHexagon},
	SugarParallelogram: {name: "Parallelogram", primitive: PrimitiveNode, shape: diagram.ShapeParallelogram},
	SugarTrapezoid:     {name: "Trapezoid", primitive: PrimitiveNode, shape: diagram.ShapeTrapezoid},
	SugarDoubleCircle:  {name: "DoubleCircle", primitive: PrimitiveNode, shape: diagram.ShapeDoubleCircle},
	SugarArrow:         {name: "Arrow", primitive: PrimitiveEdge, arrow: diagram.ArrowStyleArrow},
	SugarLine:          {name: "Line", primitive: PrimitiveEdge, arrow: diagram.ArrowStyleOpen},
	SugarDottedArrow:   {name: "DottedArrow", primitive: PrimitiveEdge, arrow: diagram.ArrowStyleDotted},
	SugarDashedArrow:   {name: "DashedArrow", primitive: PrimitiveEdge, arrow: diagram.ArrowStyleDashed},
	SugarThickArrow:    {name: "ThickArrow", primitive: PrimitiveEdge, arrow: diagram.ArrowStyleThick},
}

// Sugars returns every built-in component in declaration order.
func Sugars() []Sugar {
	out := make([]Sugar, numSugars)
	for i := range out {
		out[i] = Sugar(i)
	}
	return out
}

// Valid reports whether s is a declared built-in.
func (s Sugar) Valid() bool {
	return s >= 0 && s < numSugars
}

// String returns the component name, e.g. "DottedArrow".
func (s Sugar) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sugar(%d)", int(s))
	}
	return sugarTable[s].name
}

// Primitive returns the primitive kind s expands to.
func (s Sugar) Primitive() Primitive {
	if !s.Valid() {
		return 0
	}
	return sugarTable[s].primitive
}

// Fixed returns the shape and arrow style s forces on its primitive. Both
// are empty for the pass-through components Node, Edge, Subgraph and Graph.
func (s Sugar) Fixed() (diagram.Shape, diagram.ArrowStyle) {
	if !s.Valid() {
		return "", ""
	}
	return sugarTable[s].shape, sugarTable[s].arrow
}

// passThrough reports whether s reads its variant from props.
func (s Sugar) passThrough() bool {
	switch s {
	case SugarNode, SugarEdge, SugarSubgraph, SugarGraph:
		return true
	}
	return false
}

// ParseSugar looks up a built-in by component name.
func ParseSugar(name string) (Sugar, bool) {
	for i, spec := range sugarTable {
		if spec.name == name {
			return Sugar(i), true
		}
	}
	return 0, false
}

// Component returns the callable that expands s. Invoking it validates the
// required props and yields exactly one primitive.
func (s Sugar) Component() element.Component {
	return func(p element.Props) (element.Element, error) {
		return s.Build(p)
	}
}

// Build expands s with props p.
func (s Sugar) Build(p element.Props) (element.Element, error) {
	switch s.Primitive() {
	case PrimitiveNode:
		return buildNode(s, p)
	case PrimitiveEdge:
		return buildEdge(s, p)
	case PrimitiveSubgraph:
		return buildSubgraph(s, p)
	case PrimitiveGraph:
		return buildGraph(s, p)
	default:
		return nil, fmt.Errorf("unknown built-in component %s", s)
	}
}

// Create returns a composite invoking s with props and children.
func (s Sugar) Create(p element.Props, children ...element.Element) element.Composite {
	c := element.Create(s.String(), s.Component(), p, children...)
	c.Builtin = true
	return c
}
