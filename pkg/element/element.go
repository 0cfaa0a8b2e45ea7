package element

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ariel/pkg/diagram"
)

// Element is one value in a diagram tree. The set of implementations is
// closed: [Leaf], [Fragment], [GraphElement], [NodeElement], [EdgeElement],
// [SubgraphElement], [Composite] and [Opaque]. A nil Element is treated as
// a leaf.
type Element interface {
	isElement()
}

// Component is a composite's callable. It receives the composite's property
// bag and returns the element it expands to, which may itself be a composite.
type Component func(Props) (Element, error)

// =============================================================================
// Variants
// =============================================================================

// Leaf wraps a primitive value (nil, string or number). Leaves contribute
// nothing to the diagram; string leaves are only read as label text.
type Leaf struct {
	Value any
}

// Fragment is an ordered group of elements flattened in place.
type Fragment []Element

// GraphElement is the graph primitive. Its descriptor is only read at the
// tree root; nested graphs contribute their children in place.
type GraphElement struct {
	Graph    diagram.Graph
	Children Element
}

// NodeElement carries a pre-built node record.
type NodeElement struct {
	Node diagram.Node
}

// EdgeElement carries a pre-built edge record.
type EdgeElement struct {
	Edge diagram.Edge
}

// SubgraphElement carries a pre-built subgraph descriptor plus its children.
// Only the descriptor's ID and Label are read; the collections are filled
// from Children during extraction.
type SubgraphElement struct {
	Subgraph diagram.Subgraph
	Children Element
}

// Composite is an unexpanded component invocation.
type Composite struct {
	Name      string // used in diagnostics; need not be unique
	Component Component
	Props     Props
	// Builtin marks a component that expands straight to a primitive.
	// Builtin expansions are not counted against depth limits.
	Builtin bool
}

// Opaque is markup the extractor does not understand. Its children are
// processed in place and its tag is ignored.
type Opaque struct {
	Tag      string
	Children Element
}

func (Leaf) isElement()            {}
func (Fragment) isElement()        {}
func (GraphElement) isElement()    {}
func (NodeElement) isElement()     {}
func (EdgeElement) isElement()     {}
func (SubgraphElement) isElement() {}
func (Composite) isElement()       {}
func (Opaque) isElement()          {}

// Invoke calls the composite's component with its props. A composite without
// a component expands to nothing.
func (c Composite) Invoke() (Element, error) {
	if c.Component == nil {
		return nil, nil
	}
	return c.Component(c.Props)
}

// =============================================================================
// Constructors
// =============================================================================

// Text returns a string leaf.
func Text(s string) Element {
	return Leaf{Value: s}
}

// Group returns a fragment of the given elements.
func Group(children ...Element) Element {
	return Fragment(children)
}

// Create builds a composite the way a markup factory would: props are copied
// and the children are stored under [ChildrenKey]. A single child is stored
// as-is, several children as a [Fragment], none not at all.
func Create(name string, c Component, props Props, children ...Element) Composite {
	p := props.Clone()
	switch len(children) {
	case 0:
	case 1:
		p[ChildrenKey] = children[0]
	default:
		p[ChildrenKey] = Fragment(children)
	}
	return Composite{Name: name, Component: c, Props: p}
}

// =============================================================================
// Inspection
// =============================================================================

// KindOf returns a short lowercase name for the variant of e, used in
// diagnostics and error messages.
func KindOf(e Element) string {
	switch v := e.(type) {
	case nil:
		return "nil"
	case Leaf:
		if v.Value == nil {
			return "nil"
		}
		return "leaf"
	case Fragment:
		return "fragment"
	case GraphElement:
		return "graph"
	case NodeElement:
		return "node"
	case EdgeElement:
		return "edge"
	case SubgraphElement:
		return "subgraph"
	case Composite:
		return "composite"
	case Opaque:
		return "opaque"
	default:
		return fmt.Sprintf("%T", e)
	}
}

// TextContent concatenates the string and number leaves directly inside e.
// It is how a primitive falls back to its text children for a label.
func TextContent(e Element) string {
	switch v := e.(type) {
	case Leaf:
		return leafText(v.Value)
	case Fragment:
		var b strings.Builder
		for _, c := range v {
			if l, ok := c.(Leaf); ok {
				b.WriteString(leafText(l.Value))
			}
		}
		return b.String()
	default:
		return ""
	}
}

func leafText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(s)
	default:
		return ""
	}
}
