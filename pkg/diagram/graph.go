package diagram

import (
	"encoding/json"
)

// =============================================================================
// Graph - Resolved Diagram Model
// =============================================================================

// Graph is the fully resolved, flat model of one diagram.
//
// A Graph is built once by the extractor and handed to the renderer; nothing
// in this module mutates it afterwards. The three collections are ordered
// independently: each preserves the order its elements were encountered in
// the element tree, but the relative order of a node and an edge is lost.
type Graph struct {
	Kind      Kind       `json:"kind" yaml:"kind" toml:"kind"`
	Direction Direction  `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Nodes     []Node     `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges     []Edge     `json:"edges" yaml:"edges" toml:"edges"`
	Subgraphs []Subgraph `json:"subgraphs" yaml:"subgraphs" toml:"subgraphs"`
}

// Node is a single diagram node.
type Node struct {
	ID    string            `json:"id" yaml:"id" toml:"id"`
	Label string            `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"` // Display label (defaults to ID)
	Shape Shape             `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape,omitempty"`
	Class string            `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"` // CSS class suffix
	Style map[string]string `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"` // Preserved, not rendered
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed connection between two node ids. The ids are not
// checked against declared nodes; the output grammar accepts undeclared
// endpoints.
type Edge struct {
	From  string            `json:"from" yaml:"from" toml:"from"`
	To    string            `json:"to" yaml:"to" toml:"to"`
	Label string            `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Arrow ArrowStyle        `json:"arrow,omitempty" yaml:"arrow,omitempty" toml:"arrow,omitempty"`
	Style map[string]string `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

// Subgraph is a named block with the same three collections as [Graph].
type Subgraph struct {
	ID        string     `json:"id" yaml:"id" toml:"id"`
	Label     string     `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Nodes     []Node     `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges     []Edge     `json:"edges" yaml:"edges" toml:"edges"`
	Subgraphs []Subgraph `json:"subgraphs" yaml:"subgraphs" toml:"subgraphs"`
}

// =============================================================================
// Counting
// =============================================================================

// NodeCount returns the number of nodes including those nested in subgraphs.
func (g *Graph) NodeCount() int {
	n := len(g.Nodes)
	for i := range g.Subgraphs {
		n += g.Subgraphs[i].NodeCount()
	}
	return n
}

// EdgeCount returns the number of edges including those nested in subgraphs.
func (g *Graph) EdgeCount() int {
	n := len(g.Edges)
	for i := range g.Subgraphs {
		n += g.Subgraphs[i].EdgeCount()
	}
	return n
}

// SubgraphCount returns the number of subgraphs at every nesting level.
func (g *Graph) SubgraphCount() int {
	n := len(g.Subgraphs)
	for i := range g.Subgraphs {
		n += g.Subgraphs[i].SubgraphCount()
	}
	return n
}

// NodeCount returns the number of nodes in s and its nested subgraphs.
func (s *Subgraph) NodeCount() int {
	n := len(s.Nodes)
	for i := range s.Subgraphs {
		n += s.Subgraphs[i].NodeCount()
	}
	return n
}

// EdgeCount returns the number of edges in s and its nested subgraphs.
func (s *Subgraph) EdgeCount() int {
	n := len(s.Edges)
	for i := range s.Subgraphs {
		n += s.Subgraphs[i].EdgeCount()
	}
	return n
}

// SubgraphCount returns the number of subgraphs nested below s.
func (s *Subgraph) SubgraphCount() int {
	n := len(s.Subgraphs)
	for i := range s.Subgraphs {
		n += s.Subgraphs[i].SubgraphCount()
	}
	return n
}

// =============================================================================
// Serialization
// =============================================================================

// MarshalGraph encodes g as JSON. Output is deterministic (struct field order,
// sorted map keys), which makes it suitable as a cache key source.
func MarshalGraph(g *Graph) ([]byte, error) {
	return json.Marshal(g)
}

// UnmarshalGraph decodes JSON produced by [MarshalGraph].
func UnmarshalGraph(data []byte) (*Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}
