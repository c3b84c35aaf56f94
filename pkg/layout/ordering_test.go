package layout

import (
	"slices"
	"testing"

	"github.com/tougshire/orgchart/pkg/dag"
)

func graphOf(t *testing.T, edges [][2]string) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, e := range edges {
		for _, id := range e {
			if _, ok := g.Node(id); !ok {
				if err := g.AddNode(dag.Node{ID: id}); err != nil {
					t.Fatal(err)
				}
			}
		}
		if err := g.AddEdge(dag.Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestInsertionKeepsOrder(t *testing.T) {
	rows := [][]string{{"a"}, {"c", "b"}}
	got := Insertion{}.OrderRows(dag.New(), rows)
	if !slices.EqualFunc(got, rows, slices.Equal[[]string]) {
		t.Errorf("OrderRows() = %v, want %v", got, rows)
	}
	got[1][0] = "mutated"
	if rows[1][0] != "c" {
		t.Error("OrderRows() aliased its input")
	}
}

func TestBarycentricUntangles(t *testing.T) {
	g := graphOf(t, [][2]string{{"a", "y"}, {"b", "x"}})
	rows := [][]string{{"a", "b"}, {"x", "y"}}

	got := Barycentric{}.OrderRows(g, rows)

	if c := CrossingCount(g, got); c != 0 {
		t.Errorf("crossings = %d, want 0 (order %v)", c, got)
	}
	if !slices.Equal(rows[1], []string{"x", "y"}) {
		t.Error("OrderRows() modified its input")
	}
}

func TestBarycentricNeverWorse(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		rows  [][]string
	}{
		{
			name:  "two managers interleaved",
			edges: [][2]string{{"r", "m1"}, {"r", "m2"}, {"m1", "a"}, {"m2", "b"}, {"m1", "c"}, {"m2", "d"}},
			rows:  [][]string{{"r"}, {"m1", "m2"}, {"a", "b", "c", "d"}},
		},
		{
			name: "two roots",
			edges: [][2]string{
				{"r1", "a"}, {"r2", "b"}, {"r1", "c"}, {"r2", "d"},
				{"a", "e"}, {"b", "f"}, {"c", "g"}, {"d", "h"},
			},
			rows: [][]string{{"r1", "r2"}, {"d", "c", "b", "a"}, {"e", "f", "g", "h"}},
		},
		{
			name:  "already optimal",
			edges: [][2]string{{"r", "a"}, {"r", "b"}, {"a", "c"}},
			rows:  [][]string{{"r"}, {"a", "b"}, {"c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := graphOf(t, tt.edges)
			before := CrossingCount(g, tt.rows)
			got := Barycentric{Passes: 8}.OrderRows(g, tt.rows)
			if after := CrossingCount(g, got); after > before {
				t.Errorf("crossings went from %d to %d", before, after)
			}
			if len(got) != len(tt.rows) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.rows))
			}
			for i := range got {
				a, b := slices.Clone(got[i]), slices.Clone(tt.rows[i])
				slices.Sort(a)
				slices.Sort(b)
				if !slices.Equal(a, b) {
					t.Errorf("row %d = %v is not a permutation of %v", i, got[i], tt.rows[i])
				}
			}
		})
	}
}

func TestBarycentricInterleavedReachesZero(t *testing.T) {
	g := graphOf(t, [][2]string{{"r", "m1"}, {"r", "m2"}, {"m1", "a"}, {"m2", "b"}, {"m1", "c"}, {"m2", "d"}})
	rows := [][]string{{"r"}, {"m1", "m2"}, {"a", "b", "c", "d"}}
	if CrossingCount(g, rows) == 0 {
		t.Fatal("fixture should start with crossings")
	}
	got := Barycentric{}.OrderRows(g, rows)
	if c := CrossingCount(g, got); c != 0 {
		t.Errorf("crossings = %d, want 0 (order %v)", c, got)
	}
}
