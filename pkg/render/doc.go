// Package render groups the diagram text encoders.
//
// Each subpackage turns a [diagram.Graph] into the source text of one
// diagram language. Encoders never fail: a graph that passed extraction
// always renders, and missing optional fields fall back to defaults.
//
// # Mermaid
//
// [mermaid] emits flowchart and graph syntax:
//
//	text := mermaid.Render(g)
//
// Node shapes map to bracket pairs, edge styles to arrow tokens, and
// subgraphs nest with two spaces of indentation per level.
//
// [diagram.Graph]: github.com/matzehuels/ariel/pkg/diagram.Graph
// [mermaid]: github.com/matzehuels/ariel/pkg/render/mermaid
package render
