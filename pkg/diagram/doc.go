// Package diagram defines the resolved diagram model shared by the extractor
// and the renderer.
//
// # Core Types
//
//   - [Graph]: the diagram as a whole (kind, direction, title, collections)
//   - [Node], [Edge]: leaf records
//   - [Subgraph]: a named block with its own nodes, edges and subgraphs
//
// # Enumerations
//
// Every enumerated field is a string type with a closed set of constants and
// a Valid method:
//
//	diagram.KindFlowchart      // "flowchart"
//	diagram.DirectionLR        // "LR"
//	diagram.ShapeRhombus       // "rhombus"
//	diagram.ArrowStyleThick    // "thick"
//
// Zero values are meaningful: an empty Shape renders as the default
// rectangle, an empty ArrowStyle as a plain arrow, and an empty Direction as
// TB. Use [ParseKind], [ParseDirection], [ParseShape] and [ParseArrowStyle]
// to validate user input; they return INVALID_INPUT errors from
// [github.com/matzehuels/ariel/pkg/errors].
//
// # Serialization
//
// All types carry json, yaml and toml tags. [MarshalGraph] produces
// deterministic JSON that the pipeline hashes for cache keys.
package diagram
