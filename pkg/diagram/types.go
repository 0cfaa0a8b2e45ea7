package diagram

import (
	"github.com/matzehuels/ariel/pkg/errors"
)

// =============================================================================
// Kind - Diagram Header Keyword
// =============================================================================

// Kind is the diagram keyword written at the start of the header line.
// Only [KindGraph] and [KindFlowchart] give nodes and edges meaning; the
// others are passed through as header text.
type Kind string

// Diagram kinds accepted in the header.
const (
	KindGraph                     Kind = "graph"
	KindFlowchart                 Kind = "flowchart"
	KindSequenceDiagram           Kind = "sequenceDiagram"
	KindClassDiagram              Kind = "classDiagram"
	KindStateDiagram              Kind = "stateDiagram"
	KindEntityRelationshipDiagram Kind = "entityRelationshipDiagram"
	KindUserJourney               Kind = "userJourney"
	KindGantt                     Kind = "gantt"
	KindPieChart                  Kind = "pieChart"
	KindGitgraph                  Kind = "gitgraph"
	KindJourney                   Kind = "journey"
)

// DefaultKind is used by the sugar layer and the renderer when no kind is set.
const DefaultKind = KindFlowchart

// Kinds lists every accepted diagram kind in declaration order.
var Kinds = []Kind{
	KindGraph, KindFlowchart, KindSequenceDiagram, KindClassDiagram,
	KindStateDiagram, KindEntityRelationshipDiagram, KindUserJourney,
	KindGantt, KindPieChart, KindGitgraph, KindJourney,
}

// Valid reports whether k is one of [Kinds].
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}

// ParseKind converts s to a Kind. An empty string yields [DefaultKind].
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return DefaultKind, nil
	}
	if k := Kind(s); k.Valid() {
		return k, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid diagram kind: %q", s)
}

// =============================================================================
// Direction - Layout Direction
// =============================================================================

// Direction is the layout direction written after the kind in the header.
type Direction string

// Layout directions.
const (
	DirectionTB Direction = "TB"
	DirectionTD Direction = "TD"
	DirectionBT Direction = "BT"
	DirectionRL Direction = "RL"
	DirectionLR Direction = "LR"
)

// DefaultDirection is rendered when a graph has no direction.
const DefaultDirection = DirectionTB

// Directions lists every accepted direction.
var Directions = []Direction{DirectionTB, DirectionTD, DirectionBT, DirectionRL, DirectionLR}

// Valid reports whether d is one of [Directions].
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if v == d {
			return true
		}
	}
	return false
}

// ParseDirection converts s to a Direction. An empty string yields
// [DefaultDirection].
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return DefaultDirection, nil
	}
	if d := Direction(s); d.Valid() {
		return d, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid direction: %q (must be TB, TD, BT, RL or LR)", s)
}

// =============================================================================
// Shape - Node Bracket Variant
// =============================================================================

// Shape selects the bracket pair a node is rendered with.
// The zero value is treated as [ShapeDefault].
type Shape string

// Node shapes.
const (
	ShapeDefault       Shape = "default"
	ShapeCircle        Shape = "circle"
	ShapeRhombus       Shape = "rhombus"
	ShapeHexagon       Shape = "hexagon"
	ShapeParallelogram Shape = "parallelogram"
	ShapeTrapezoid     Shape = "trapezoid"
	ShapeDoubleCircle  Shape = "double_circle"
)

// Shapes lists every node shape.
var Shapes = []Shape{
	ShapeDefault, ShapeCircle, ShapeRhombus, ShapeHexagon,
	ShapeParallelogram, ShapeTrapezoid, ShapeDoubleCircle,
}

// Valid reports whether s is one of [Shapes].
func (s Shape) Valid() bool {
	for _, v := range Shapes {
		if v == s {
			return true
		}
	}
	return false
}

// ParseShape converts v to a Shape. An empty string yields [ShapeDefault].
func ParseShape(v string) (Shape, error) {
	if v == "" {
		return ShapeDefault, nil
	}
	if s := Shape(v); s.Valid() {
		return s, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid node shape: %q", v)
}

// =============================================================================
// ArrowStyle - Edge Connector Variant
// =============================================================================

// ArrowStyle selects the connector token and label placement of an edge.
// The zero value is treated as [ArrowStyleArrow].
type ArrowStyle string

// Edge arrow styles.
const (
	ArrowStyleArrow  ArrowStyle = "arrow"
	ArrowStyleOpen   ArrowStyle = "open"
	ArrowStyleDotted ArrowStyle = "dotted"
	ArrowStyleDashed ArrowStyle = "dashed"
	ArrowStyleThick  ArrowStyle = "thick"
)

// ArrowStyles lists every edge arrow style.
var ArrowStyles = []ArrowStyle{
	ArrowStyleArrow, ArrowStyleOpen, ArrowStyleDotted, ArrowStyleDashed, ArrowStyleThick,
}

// Valid reports whether a is one of [ArrowStyles].
func (a ArrowStyle) Valid() bool {
	for _, v := range ArrowStyles {
		if v == a {
			return true
		}
	}
	return false
}

// ParseArrowStyle converts v to an ArrowStyle. An empty string yields
// [ArrowStyleArrow].
func ParseArrowStyle(v string) (ArrowStyle, error) {
	if v == "" {
		return ArrowStyleArrow, nil
	}
	if a := ArrowStyle(v); a.Valid() {
		return a, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid arrow style: %q", v)
}
