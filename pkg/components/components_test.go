package components

import (
	"testing"

	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/errors"
)

func TestSugarTableComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Sugars() {
		if s.String() == "" || s.Primitive() == 0 {
			t.Errorf("Sugar(%d) has no table entry", int(s))
		}
		if seen[s.String()] {
			t.Errorf("duplicate sugar name %q", s)
		}
		seen[s.String()] = true

		got, ok := ParseSugar(s.String())
		if !ok || got != s {
			t.Errorf("ParseSugar(%q) = %v, %v", s, got, ok)
		}
	}
	if _, ok := ParseSugar("Blob"); ok {
		t.Error("ParseSugar(Blob) should fail")
	}
}

func TestShapeSugars(t *testing.T) {
	tests := []struct {
		build func(NodeProps, ...element.Element) element.Composite
		want  diagram.Shape
	}{
		{Circle, diagram.ShapeCircle},
		{Rectangle, diagram.ShapeDefault},
		{Diamond, diagram.ShapeRhombus},
		{Hexagon, diagram.ShapeHexagon},
		{Parallelogram, diagram.ShapeParallelogram},
		{Trapezoid, diagram.ShapeTrapezoid},
		{DoubleCircle, diagram.ShapeDoubleCircle},
	}

	for _, tt := range tests {
		c := tt.build(NodeProps{ID: "n", Label: "N", Shape: diagram.ShapeCircle})
		t.Run(c.Name, func(t *testing.T) {
			el, err := c.Invoke()
			if err != nil {
				t.Fatal(err)
			}
			n, ok := el.(element.NodeElement)
			if !ok {
				t.Fatalf("Invoke() = %T, want NodeElement", el)
			}
			if n.Node.Shape != tt.want {
				t.Errorf("shape = %q, want %q", n.Node.Shape, tt.want)
			}
			if n.Node.ID != "n" || n.Node.Label != "N" {
				t.Errorf("node = %+v", n.Node)
			}
		})
	}
}

func TestArrowSugars(t *testing.T) {
	tests := []struct {
		build func(EdgeProps, ...element.Element) element.Composite
		want  diagram.ArrowStyle
	}{
		{Arrow, diagram.ArrowStyleArrow},
		{Line, diagram.ArrowStyleOpen},
		{DottedArrow, diagram.ArrowStyleDotted},
		{DashedArrow, diagram.ArrowStyleDashed},
		{ThickArrow, diagram.ArrowStyleThick},
	}

	for _, tt := range tests {
		c := tt.build(EdgeProps{From: "a", To: "b", Label: "go", Arrow: diagram.ArrowStyleThick})
		t.Run(c.Name, func(t *testing.T) {
			el, err := c.Invoke()
			if err != nil {
				t.Fatal(err)
			}
			e, ok := el.(element.EdgeElement)
			if !ok {
				t.Fatalf("Invoke() = %T, want EdgeElement", el)
			}
			if e.Edge.Arrow != tt.want {
				t.Errorf("arrow = %q, want %q", e.Edge.Arrow, tt.want)
			}
			if e.Edge.From != "a" || e.Edge.To != "b" || e.Edge.Label != "go" {
				t.Errorf("edge = %+v", e.Edge)
			}
		})
	}
}

func TestPassThrough(t *testing.T) {
	t.Run("node shape from props", func(t *testing.T) {
		el, err := Node(NodeProps{ID: "n", Shape: diagram.ShapeHexagon}).Invoke()
		if err != nil {
			t.Fatal(err)
		}
		if got := el.(element.NodeElement).Node.Shape; got != diagram.ShapeHexagon {
			t.Errorf("shape = %q", got)
		}
	})

	t.Run("node default shape", func(t *testing.T) {
		el, err := Node(NodeProps{ID: "n"}).Invoke()
		if err != nil {
			t.Fatal(err)
		}
		if got := el.(element.NodeElement).Node.Shape; got != diagram.ShapeDefault {
			t.Errorf("shape = %q", got)
		}
	})

	t.Run("edge arrow from props", func(t *testing.T) {
		el, err := Edge(EdgeProps{From: "a", To: "b", Arrow: diagram.ArrowStyleDotted}).Invoke()
		if err != nil {
			t.Fatal(err)
		}
		if got := el.(element.EdgeElement).Edge.Arrow; got != diagram.ArrowStyleDotted {
			t.Errorf("arrow = %q", got)
		}
	})

	t.Run("invalid shape", func(t *testing.T) {
		_, err := SugarNode.Build(element.Props{PropID: "n", PropShape: "blob"})
		if !errors.Is(err, errors.ErrCodeValidation) {
			t.Errorf("err = %v, want VALIDATION", err)
		}
	})
}

func TestLabelFallback(t *testing.T) {
	tests := []struct {
		name string
		c    element.Composite
		want string
	}{
		{"label prop wins", Circle(NodeProps{ID: "s", Label: "Begin"}, element.Text("Start")), "Begin"},
		{"text child", Circle(NodeProps{ID: "s"}, element.Text("Start")), "Start"},
		{"text children joined", Rectangle(NodeProps{ID: "s"}, element.Text("Hello "), element.Text("World")), "Hello World"},
		{"no label", Rectangle(NodeProps{ID: "s"}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := tt.c.Invoke()
			if err != nil {
				t.Fatal(err)
			}
			if got := el.(element.NodeElement).Node.Label; got != tt.want {
				t.Errorf("label = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("edge text child", func(t *testing.T) {
		el, err := Arrow(EdgeProps{From: "a", To: "b"}, element.Text("next")).Invoke()
		if err != nil {
			t.Fatal(err)
		}
		if got := el.(element.EdgeElement).Edge.Label; got != "next" {
			t.Errorf("label = %q", got)
		}
	})
}

func TestRequiredProps(t *testing.T) {
	tests := []struct {
		name string
		c    element.Composite
	}{
		{"node without id", Node(NodeProps{Label: "x"})},
		{"circle without id", Circle(NodeProps{})},
		{"edge without to", Arrow(EdgeProps{From: "a"})},
		{"edge without from", Line(EdgeProps{To: "b"})},
		{"subgraph without id", Subgraph(SubgraphProps{Label: "x"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Invoke()
			if !errors.Is(err, errors.ErrCodeValidation) {
				t.Errorf("Invoke() error = %v, want VALIDATION", err)
			}
		})
	}
}

func TestGraphDefaults(t *testing.T) {
	el, err := Graph(GraphProps{}, Circle(NodeProps{ID: "a"})).Invoke()
	if err != nil {
		t.Fatal(err)
	}
	g, ok := el.(element.GraphElement)
	if !ok {
		t.Fatalf("Invoke() = %T", el)
	}
	if g.Graph.Kind != diagram.KindFlowchart || g.Graph.Direction != diagram.DirectionTB {
		t.Errorf("graph = %+v, want flowchart TB", g.Graph)
	}
	if element.KindOf(g.Children) != "composite" {
		t.Errorf("children = %s, want composite", element.KindOf(g.Children))
	}

	if _, err := Graph(GraphProps{Kind: "piechart"}).Invoke(); !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("invalid kind error = %v", err)
	}
}

func TestSubgraphChildren(t *testing.T) {
	el, err := Subgraph(SubgraphProps{ID: "sg", Label: "Group"},
		Rectangle(NodeProps{ID: "a"}),
		Rectangle(NodeProps{ID: "b"}),
	).Invoke()
	if err != nil {
		t.Fatal(err)
	}
	sg := el.(element.SubgraphElement)
	if sg.Subgraph.ID != "sg" || sg.Subgraph.Label != "Group" {
		t.Errorf("subgraph = %+v", sg.Subgraph)
	}
	if f, ok := sg.Children.(element.Fragment); !ok || len(f) != 2 {
		t.Errorf("children = %#v", sg.Children)
	}
}
