// Package element defines the tree values users compose diagrams from.
//
// # Variants
//
// [Element] is a closed sum type. The extractor matches on exactly these
// implementations:
//
//   - [Leaf]: nil, string or number; ignored (strings feed label fallbacks)
//   - [Fragment]: an ordered group flattened in place
//   - [GraphElement]: the graph primitive; below the root only its children count
//   - [NodeElement], [EdgeElement]: pre-built records
//   - [SubgraphElement]: a subgraph descriptor plus nested children
//   - [Composite]: a [Component] plus the [Props] it will be invoked with
//   - [Opaque]: unrecognized markup whose children are transparent
//
// # Composites
//
// A composite expands lazily. [Create] mirrors a markup factory: it copies
// the props and stores children under [ChildrenKey]:
//
//	try := func(p element.Props) (element.Element, error) {
//	    id := p.String("id")
//	    return element.Group(
//	        components.Diamond(components.NodeProps{ID: id, Label: p.String("label")}),
//	        components.ThickArrow(components.EdgeProps{From: id, To: p.String("ok"), Label: "success"}),
//	    ), nil
//	}
//	el := element.Create("Try", try, element.Props{"id": "login", "ok": "home"})
//
// The sugar constructors in [github.com/matzehuels/ariel/pkg/components]
// return composites built the same way.
package element
