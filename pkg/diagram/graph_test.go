package diagram

import (
	"strings"
	"testing"

	"github.com/matzehuels/ariel/pkg/errors"
)

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"label set", Node{ID: "a", Label: "Alpha"}, "Alpha"},
		{"label empty", Node{ID: "a"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.DisplayLabel(); got != tt.want {
				t.Errorf("DisplayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	g := &Graph{
		Kind:  KindFlowchart,
		Nodes: []Node{{ID: "a"}},
		Edges: []Edge{{From: "a", To: "b"}},
		Subgraphs: []Subgraph{
			{
				ID:    "s1",
				Nodes: []Node{{ID: "b"}, {ID: "c"}},
				Edges: []Edge{{From: "b", To: "c"}},
				Subgraphs: []Subgraph{
					{ID: "s2", Nodes: []Node{{ID: "d"}}},
				},
			},
		},
	}

	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount() = %d, want 4", got)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}
	if got := g.SubgraphCount(); got != 2 {
		t.Errorf("SubgraphCount() = %d, want 2", got)
	}
}

func TestParseEnums(t *testing.T) {
	tests := []struct {
		name    string
		parse   func() (string, error)
		want    string
		wantErr bool
	}{
		{"kind empty", func() (string, error) { k, err := ParseKind(""); return string(k), err }, "flowchart", false},
		{"kind graph", func() (string, error) { k, err := ParseKind("graph"); return string(k), err }, "graph", false},
		{"kind gantt", func() (string, error) { k, err := ParseKind("gantt"); return string(k), err }, "gantt", false},
		{"kind bad", func() (string, error) { k, err := ParseKind("mindmap"); return string(k), err }, "", true},
		{"direction empty", func() (string, error) { d, err := ParseDirection(""); return string(d), err }, "TB", false},
		{"direction LR", func() (string, error) { d, err := ParseDirection("LR"); return string(d), err }, "LR", false},
		{"direction lowercase", func() (string, error) { d, err := ParseDirection("lr"); return string(d), err }, "", true},
		{"shape empty", func() (string, error) { s, err := ParseShape(""); return string(s), err }, "default", false},
		{"shape double", func() (string, error) { s, err := ParseShape("double_circle"); return string(s), err }, "double_circle", false},
		{"shape bad", func() (string, error) { s, err := ParseShape("stadium"); return string(s), err }, "", true},
		{"arrow empty", func() (string, error) { a, err := ParseArrowStyle(""); return string(a), err }, "arrow", false},
		{"arrow thick", func() (string, error) { a, err := ParseArrowStyle("thick"); return string(a), err }, "thick", false},
		{"arrow bad", func() (string, error) { a, err := ParseArrowStyle("wavy"); return string(a), err }, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalGraphDeterministic(t *testing.T) {
	g := &Graph{
		Kind:  KindFlowchart,
		Title: "T",
		Nodes: []Node{{ID: "a", Style: map[string]string{"z": "1", "a": "2"}}},
	}

	first, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := MarshalGraph(g)
		if string(again) != string(first) {
			t.Fatalf("MarshalGraph not deterministic:\n%s\n%s", first, again)
		}
	}
	if !strings.Contains(string(first), `"style":{"a":"2","z":"1"}`) {
		t.Errorf("style keys not sorted: %s", first)
	}

	back, err := UnmarshalGraph(first)
	if err != nil {
		t.Fatalf("UnmarshalGraph: %v", err)
	}
	if back.Title != "T" || len(back.Nodes) != 1 || back.Nodes[0].Style["z"] != "1" {
		t.Errorf("UnmarshalGraph lost data: %+v", back)
	}
}
