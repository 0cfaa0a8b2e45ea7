package mermaid

import (
	"strings"

	"github.com/matzehuels/ariel/pkg/diagram"
)

const indent = "  "

type brackets struct{ open, close string }

var shapeBrackets = map[diagram.Shape]brackets{
	diagram.ShapeDefault:       {"[", "]"},
	diagram.ShapeCircle:        {"((", "))"},
	diagram.ShapeRhombus:       {"{", "}"},
	diagram.ShapeHexagon:       {"[", "]"},
	diagram.ShapeParallelogram: {"[/", "/]"},
	diagram.ShapeTrapezoid:     {"[/", `\]`},
	diagram.ShapeDoubleCircle:  {"(((", ")))"},
}

var arrowTokens = map[diagram.ArrowStyle]string{
	diagram.ArrowStyleArrow:  "-->",
	diagram.ArrowStyleOpen:   "---",
	diagram.ArrowStyleDotted: "-.->",
	diagram.ArrowStyleDashed: "-.->",
	diagram.ArrowStyleThick:  "==>",
}

// Render encodes g as diagram text. The output has no trailing newline.
// Render never fails: missing kind, direction, shape or arrow style fall
// back to their defaults.
func Render(g *diagram.Graph) string {
	if g == nil {
		return Header("", "")
	}

	lines := []string{Header(g.Kind, g.Direction)}
	if g.Title != "" {
		lines = append(lines, "%% title "+g.Title)
	}
	for _, n := range g.Nodes {
		lines = append(lines, Node(n))
	}
	for _, e := range g.Edges {
		lines = append(lines, Edge(e))
	}
	for _, s := range g.Subgraphs {
		lines = append(lines, subgraphLines(s)...)
	}
	return strings.Join(lines, "\n")
}

// Header returns the first line, "<kind> <direction>".
func Header(kind diagram.Kind, dir diagram.Direction) string {
	if kind == "" {
		kind = diagram.DefaultKind
	}
	if dir == "" {
		dir = diagram.DefaultDirection
	}
	return string(kind) + " " + string(dir)
}

// Node encodes one node line, e.g. "start((Start)):::entry".
func Node(n diagram.Node) string {
	b, ok := shapeBrackets[n.Shape]
	if !ok {
		b = shapeBrackets[diagram.ShapeDefault]
	}
	line := n.ID + b.open + n.DisplayLabel() + b.close
	if n.Class != "" {
		line += ":::" + n.Class
	}
	return line
}

// Edge encodes one edge line. Labels are only placed for thick, dotted and
// dashed edges; other styles drop them.
func Edge(e diagram.Edge) string {
	token, ok := arrowTokens[e.Arrow]
	if !ok {
		token = arrowTokens[diagram.ArrowStyleArrow]
	}
	if e.Label != "" {
		switch e.Arrow {
		case diagram.ArrowStyleThick:
			return e.From + " == " + e.Label + " ==> " + e.To
		case diagram.ArrowStyleDotted, diagram.ArrowStyleDashed:
			return e.From + " -. " + e.Label + " .-> " + e.To
		}
	}
	return e.From + " " + token + " " + e.To
}

// Subgraph encodes a subgraph block from "subgraph <id>" through "end".
func Subgraph(s diagram.Subgraph) string {
	return strings.Join(subgraphLines(s), "\n")
}

func subgraphLines(s diagram.Subgraph) []string {
	lines := []string{"subgraph " + s.ID}
	if s.Label != "" {
		lines = append(lines, indent+"title "+s.Label)
	}
	for _, n := range s.Nodes {
		lines = append(lines, indent+Node(n))
	}
	for _, e := range s.Edges {
		lines = append(lines, indent+Edge(e))
	}
	for _, nested := range s.Subgraphs {
		for _, l := range subgraphLines(nested) {
			lines = append(lines, indent+l)
		}
	}
	return append(lines, "end")
}
