package transform

import (
	"slices"
	"testing"

	"github.com/tougshire/orgchart/pkg/dag"
)

func buildGraph(t *testing.T, nodes []string, edges [][2]string) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, id := range nodes {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q): %v", id, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(dag.Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func TestFindCycle(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  []string
	}{
		{"acyclic", []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}}, nil},
		{"empty", nil, nil, nil},
		{"self report", []string{"a"}, [][2]string{{"a", "a"}}, []string{"a", "a"}},
		{"pair", []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}}, []string{"a", "b", "a"}},
		{
			"cycle below a root",
			[]string{"root", "a", "b", "c"},
			[][2]string{{"root", "a"}, {"a", "b"}, {"b", "c"}, {"c", "a"}},
			[]string{"a", "b", "c", "a"},
		},
		{
			"detached cycle",
			[]string{"root", "x", "y"},
			[][2]string{{"x", "y"}, {"y", "x"}},
			[]string{"x", "y", "x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.nodes, tt.edges)
			if got := FindCycle(g); !slices.Equal(got, tt.want) {
				t.Errorf("FindCycle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindCycleLeavesGraphUntouched(t *testing.T) {
	g := buildGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}, {"b", "a"}})
	_ = FindCycle(g)
	if g.EdgeCount() != 2 || g.NodeCount() != 2 {
		t.Errorf("graph modified: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}
