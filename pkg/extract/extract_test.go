package extract

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ariel/pkg/components"
	"github.com/matzehuels/ariel/pkg/diagram"
	"github.com/matzehuels/ariel/pkg/element"
	arielerrors "github.com/matzehuels/ariel/pkg/errors"
	"github.com/matzehuels/ariel/pkg/observability"
)

var quiet = WithLogger(log.New(io.Discard))

func node(id string) element.Element {
	return element.NodeElement{Node: diagram.Node{ID: id}}
}

func edge(from, to string) element.Element {
	return element.EdgeElement{Edge: diagram.Edge{From: from, To: to}}
}

func graph(children ...element.Element) element.GraphElement {
	return element.GraphElement{
		Graph:    diagram.Graph{Kind: diagram.KindFlowchart, Direction: diagram.DirectionLR, Title: "T"},
		Children: element.Group(children...),
	}
}

func throwing(msg string) element.Composite {
	return element.Composite{Name: "Throwing", Component: func(element.Props) (element.Element, error) {
		return nil, errors.New(msg)
	}}
}

func ids(nodes []diagram.Node) string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return strings.Join(out, ",")
}

func TestExtractGraphRoot(t *testing.T) {
	res, err := Extract(graph(node("a"), edge("a", "b"), node("b")), quiet)
	if err != nil {
		t.Fatal(err)
	}
	g := res.Graph
	if g.Kind != diagram.KindFlowchart || g.Direction != diagram.DirectionLR || g.Title != "T" {
		t.Errorf("descriptor = %s %s %q", g.Kind, g.Direction, g.Title)
	}
	if got := ids(g.Nodes); got != "a,b" {
		t.Errorf("nodes = %s, want a,b", got)
	}
	if len(g.Edges) != 1 || g.Edges[0].From != "a" {
		t.Errorf("edges = %+v", g.Edges)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestExtractEmptyGraph(t *testing.T) {
	res, err := Extract(element.GraphElement{Graph: diagram.Graph{Kind: diagram.KindGraph}}, quiet)
	if err != nil {
		t.Fatal(err)
	}
	if res.Graph.Nodes == nil || res.Graph.Edges == nil || res.Graph.Subgraphs == nil {
		t.Error("sequences should be empty, not nil")
	}
	if res.Graph.NodeCount()+res.Graph.EdgeCount()+res.Graph.SubgraphCount() != 0 {
		t.Error("expected empty model")
	}
}

func TestExtractOrdering(t *testing.T) {
	tree := graph(
		node("n1"),
		element.Group(node("n2"), element.Group(node("n3"), edge("e", "1"))),
		element.Text("ignored"),
		element.Leaf{Value: 7},
		nil,
		element.Opaque{Tag: "div", Children: node("n4")},
		edge("e", "2"),
		node("n5"),
	)

	res, err := Extract(tree, quiet)
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(res.Graph.Nodes); got != "n1,n2,n3,n4,n5" {
		t.Errorf("nodes = %s", got)
	}
	if len(res.Graph.Edges) != 2 || res.Graph.Edges[0].To != "1" || res.Graph.Edges[1].To != "2" {
		t.Errorf("edges = %+v", res.Graph.Edges)
	}
}

func TestExtractComposites(t *testing.T) {
	pair := func(p element.Props) (element.Element, error) {
		id := p.String("id")
		return element.Group(node(id+"1"), node(id+"2")), nil
	}
	tree := graph(
		node("a"),
		element.Create("Pair", pair, element.Props{"id": "p"}),
		components.Circle(components.NodeProps{ID: "c"}, element.Text("C")),
	)

	res, err := Extract(tree, quiet)
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(res.Graph.Nodes); got != "a,p1,p2,c" {
		t.Errorf("nodes = %s", got)
	}
	if res.Graph.Nodes[3].Shape != diagram.ShapeCircle || res.Graph.Nodes[3].Label != "C" {
		t.Errorf("circle = %+v", res.Graph.Nodes[3])
	}
	if res.Expansions != 2 {
		t.Errorf("expansions = %d, want 2", res.Expansions)
	}
}

func TestExtractRecoversComponentFailure(t *testing.T) {
	tree := graph(node("A"), throwing("boom"), node("B"))

	res, err := Extract(tree, quiet)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got := ids(res.Graph.Nodes); got != "A,B" {
		t.Errorf("nodes = %s, want A,B", got)
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.Component != "Throwing" || d.Path != "graph/Throwing" || d.Severity != SeverityWarning {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Code() != arielerrors.ErrCodeComponentInvocation {
		t.Errorf("code = %s", d.Code())
	}
	if !strings.Contains(d.Err.Error(), "boom") {
		t.Errorf("err = %v, want cause boom", d.Err)
	}
}

func TestExtractRecoversPanic(t *testing.T) {
	panicky := element.Composite{Name: "Panicky", Component: func(element.Props) (element.Element, error) {
		panic("bad state")
	}}

	res, err := Extract(graph(node("A"), panicky, node("B")), quiet)
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(res.Graph.Nodes); got != "A,B" {
		t.Errorf("nodes = %s", got)
	}
	if len(res.Diagnostics) != 1 || !strings.Contains(res.Diagnostics[0].Err.Error(), "bad state") {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestExtractSugarValidationIsRecovered(t *testing.T) {
	tree := graph(components.Circle(components.NodeProps{}), node("ok"))

	res, err := Extract(tree, quiet)
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(res.Graph.Nodes); got != "ok" {
		t.Errorf("nodes = %s", got)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Component != "Circle" {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestExtractSubgraphs(t *testing.T) {
	inner := element.SubgraphElement{
		Subgraph: diagram.Subgraph{ID: "inner", Label: "Inner"},
		Children: element.Group(node("c"), throwing("nested")),
	}
	outer := element.SubgraphElement{
		Subgraph: diagram.Subgraph{ID: "outer"},
		Children: element.Group(node("b"), edge("b", "c"), inner),
	}

	res, err := Extract(graph(node("a"), outer), quiet)
	if err != nil {
		t.Fatal(err)
	}
	g := res.Graph
	if ids(g.Nodes) != "a" || len(g.Subgraphs) != 1 {
		t.Fatalf("graph = %+v", g)
	}
	o := g.Subgraphs[0]
	if ids(o.Nodes) != "b" || len(o.Edges) != 1 || len(o.Subgraphs) != 1 {
		t.Errorf("outer = %+v", o)
	}
	if in := o.Subgraphs[0]; in.ID != "inner" || in.Label != "Inner" || ids(in.Nodes) != "c" {
		t.Errorf("inner = %+v", in)
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d", g.NodeCount())
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Path != "graph/subgraph:outer/subgraph:inner/Throwing" {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestExtractRoot(t *testing.T) {
	t.Run("composite root", func(t *testing.T) {
		res, err := Extract(components.Graph(components.GraphProps{Title: "X"}, node("a")), quiet)
		if err != nil {
			t.Fatal(err)
		}
		if res.Graph.Title != "X" || res.Graph.Kind != diagram.KindFlowchart || ids(res.Graph.Nodes) != "a" {
			t.Errorf("graph = %+v", res.Graph)
		}
	})

	t.Run("nested composite root", func(t *testing.T) {
		app := element.Composite{Name: "App", Component: func(element.Props) (element.Element, error) {
			return components.Graph(components.GraphProps{}, node("a")), nil
		}}
		res, err := Extract(app, quiet)
		if err != nil {
			t.Fatal(err)
		}
		if ids(res.Graph.Nodes) != "a" {
			t.Errorf("nodes = %s", ids(res.Graph.Nodes))
		}
	})

	tests := []struct {
		name string
		root element.Element
		code arielerrors.Code
	}{
		{"nil", nil, arielerrors.ErrCodeRootType},
		{"node", node("a"), arielerrors.ErrCodeRootType},
		{"fragment", element.Group(node("a")), arielerrors.ErrCodeRootType},
		{"composite returning node", element.Composite{Name: "N", Component: func(element.Props) (element.Element, error) {
			return node("a"), nil
		}}, arielerrors.ErrCodeRootType},
		{"composite returning nil", element.Composite{Name: "Nil", Component: func(element.Props) (element.Element, error) {
			return nil, nil
		}}, arielerrors.ErrCodeRootType},
		{"failing composite", throwing("root boom"), arielerrors.ErrCodeRootInvocation},
		{"panicking composite", element.Composite{Name: "P", Component: func(element.Props) (element.Element, error) {
			panic("root panic")
		}}, arielerrors.ErrCodeRootInvocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.root, quiet)
			if !arielerrors.Is(err, tt.code) {
				t.Errorf("Extract() error = %v, want %s", err, tt.code)
			}
			if !arielerrors.IsFatal(err) {
				t.Error("root errors must be fatal")
			}
		})
	}
}

func TestExtractNestedGraphIsInlined(t *testing.T) {
	nested := element.GraphElement{
		Graph:    diagram.Graph{Kind: diagram.KindPieChart, Title: "ignored"},
		Children: element.Group(node("nested"), edge("a", "nested")),
	}
	res, err := Extract(graph(node("a"), nested), quiet)
	if err != nil {
		t.Fatal(err)
	}
	g := res.Graph
	if ids(g.Nodes) != "a,nested" || len(g.Edges) != 1 {
		t.Errorf("graph = %+v", g)
	}
	if g.Title != "T" || g.Kind != diagram.KindFlowchart {
		t.Errorf("descriptor = %s %q", g.Kind, g.Title)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v", res.Diagnostics)
	}
}

func TestExtractMaxDepth(t *testing.T) {
	var loop element.Component
	loop = func(element.Props) (element.Element, error) {
		return element.Composite{Name: "Loop", Component: loop}, nil
	}
	cyclic := element.Composite{Name: "Loop", Component: loop}

	t.Run("child chain", func(t *testing.T) {
		_, err := Extract(graph(node("a"), cyclic), quiet, WithMaxDepth(8))
		if !arielerrors.Is(err, arielerrors.ErrCodeRecursionLimit) {
			t.Errorf("Extract() error = %v, want RECURSION_LIMIT", err)
		}
	})

	t.Run("root chain", func(t *testing.T) {
		_, err := Extract(cyclic, quiet, WithMaxDepth(8))
		if !arielerrors.Is(err, arielerrors.ErrCodeRecursionLimit) {
			t.Errorf("Extract() error = %v, want RECURSION_LIMIT", err)
		}
	})

	t.Run("within limit", func(t *testing.T) {
		wrap := func(inner element.Element) element.Element {
			return element.Composite{Name: "Wrap", Component: func(element.Props) (element.Element, error) {
				return inner, nil
			}}
		}
		tree := graph(wrap(wrap(node("deep"))))
		res, err := Extract(tree, quiet, WithMaxDepth(2))
		if err != nil {
			t.Fatal(err)
		}
		if ids(res.Graph.Nodes) != "deep" {
			t.Errorf("nodes = %s", ids(res.Graph.Nodes))
		}
		if _, err := Extract(tree, quiet, WithMaxDepth(1)); err == nil {
			t.Error("depth 1 should reject two nested expansions")
		}
	})

	t.Run("built-ins are free", func(t *testing.T) {
		tree := components.Graph(components.GraphProps{},
			components.Subgraph(components.SubgraphProps{ID: "pay"},
				components.Subgraph(components.SubgraphProps{ID: "card"},
					components.Circle(components.NodeProps{ID: "ok"}))))
		res, err := Extract(tree, quiet, WithMaxDepth(1))
		if err != nil {
			t.Fatal(err)
		}
		if got := res.Graph.NodeCount(); got != 1 {
			t.Errorf("NodeCount() = %d", got)
		}
	})

	t.Run("built-in inside cycle", func(t *testing.T) {
		var tree element.Component
		tree = func(element.Props) (element.Element, error) {
			return components.Subgraph(components.SubgraphProps{ID: "s"},
				element.Composite{Name: "Tree", Component: tree}), nil
		}
		_, err := Extract(graph(element.Composite{Name: "Tree", Component: tree}), quiet, WithMaxDepth(4))
		if !arielerrors.Is(err, arielerrors.ErrCodeRecursionLimit) {
			t.Errorf("Extract() error = %v, want RECURSION_LIMIT", err)
		}
	})
}

type recordingHooks struct {
	observability.NoopExtractHooks
	started   int
	completed observability.ExtractStats
	failures  []string
}

func (h *recordingHooks) OnExtractStart(context.Context) { h.started++ }

func (h *recordingHooks) OnExtractComplete(_ context.Context, s observability.ExtractStats, _ time.Duration, _ error) {
	h.completed = s
}

func (h *recordingHooks) OnComponentError(_ context.Context, component, _ string, _ error) {
	h.failures = append(h.failures, component)
}

func TestExtractHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetExtractHooks(hooks)
	defer observability.Reset()

	_, err := Extract(graph(node("a"), throwing("x"), edge("a", "b")), quiet, WithContext(context.Background()))
	if err != nil {
		t.Fatal(err)
	}
	if hooks.started != 1 {
		t.Errorf("started = %d", hooks.started)
	}
	if hooks.completed.Nodes != 1 || hooks.completed.Edges != 1 || hooks.completed.Diagnostics != 1 {
		t.Errorf("stats = %+v", hooks.completed)
	}
	if len(hooks.failures) != 1 || hooks.failures[0] != "Throwing" {
		t.Errorf("failures = %v", hooks.failures)
	}
}

func TestReports(t *testing.T) {
	res, err := Extract(graph(throwing("boom")), quiet)
	if err != nil {
		t.Fatal(err)
	}
	reps := Reports(res.Diagnostics)
	if len(reps) != 1 {
		t.Fatalf("reports = %v", reps)
	}
	if reps[0].Code != "COMPONENT_INVOCATION" || reps[0].Severity != "warning" || reps[0].Path != "graph/Throwing" {
		t.Errorf("report = %+v", reps[0])
	}
}
