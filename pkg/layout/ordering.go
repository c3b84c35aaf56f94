package layout

import (
	"slices"

	"github.com/tougshire/orgchart/pkg/dag"
)

// Orderer decides the left-to-right order of the members of each row.
// Implementations must return a permutation of every input row and must not
// modify rows.
type Orderer interface {
	OrderRows(g *dag.DAG, rows [][]string) [][]string
}

// Insertion keeps the row order it is given.
type Insertion struct{}

// OrderRows returns a copy of rows.
func (Insertion) OrderRows(_ *dag.DAG, rows [][]string) [][]string {
	return cloneRows(rows)
}

// DefaultPasses is the number of sweeps used by a zero Barycentric.
const DefaultPasses = 4

// Barycentric reorders rows by the barycenter heuristic.
//
// Each pass sweeps down, sorting every row by the mean position of its
// managers in the row above, then sweeps up, sorting by the mean position of
// direct reports in the row below. Members with no neighbors in the reference
// row keep their current position as key, and ties keep their relative
// order. The ordering with the fewest crossings seen so far wins, starting
// from the input, so the result never has more crossings than the input.
type Barycentric struct {
	Passes int
}

// OrderRows returns the best ordering found.
func (b Barycentric) OrderRows(g *dag.DAG, rows [][]string) [][]string {
	passes := b.Passes
	if passes <= 0 {
		passes = DefaultPasses
	}

	best := cloneRows(rows)
	bestCrossings := dag.CountCrossings(g, best)
	if bestCrossings == 0 {
		return best
	}

	current := cloneRows(rows)
	for range passes {
		for i := 1; i < len(current); i++ {
			sortByBarycenter(current[i], current[i-1], g.Parents)
		}
		for i := len(current) - 2; i >= 0; i-- {
			sortByBarycenter(current[i], current[i+1], g.Children)
		}
		if c := dag.CountCrossings(g, current); c < bestCrossings {
			best, bestCrossings = cloneRows(current), c
			if c == 0 {
				break
			}
		}
	}
	return best
}

// sortByBarycenter sorts row in place by the mean position of each member's
// neighbors in ref.
func sortByBarycenter(row, ref []string, neighbors func(string) []string) {
	refPos := dag.PosMap(ref)
	keys := make(map[string]float64, len(row))
	for i, id := range row {
		sum, n := 0.0, 0
		for _, nb := range neighbors(id) {
			if p, ok := refPos[nb]; ok {
				sum += float64(p)
				n++
			}
		}
		if n == 0 {
			keys[id] = float64(i)
			continue
		}
		keys[id] = sum / float64(n)
	}
	slices.SortStableFunc(row, func(a, b string) int {
		switch ka, kb := keys[a], keys[b]; {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
}

// CrossingCount returns the number of edge crossings between consecutive rows.
func CrossingCount(g *dag.DAG, rows [][]string) int {
	return dag.CountCrossings(g, rows)
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}
