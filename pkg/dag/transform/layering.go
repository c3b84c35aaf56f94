package transform

import (
	"fmt"
	"strings"

	"github.com/tougshire/orgchart/pkg/dag"
)

// Layering is the result of [AssignGenerations]. It never aliases the input
// graph: Graph is a fresh DAG whose node order follows the generations.
type Layering struct {
	// Layers holds the node IDs of each generation in discovery order.
	// Layers[0] are the roots.
	Layers [][]string

	// Generations maps every node ID to the index of its layer.
	Generations map[string]int

	// Graph contains the same nodes and edges as the input, with nodes
	// inserted generation by generation.
	Graph *dag.DAG
}

// Generation returns the generation of id and whether id is known.
func (l *Layering) Generation(id string) (int, bool) {
	gen, ok := l.Generations[id]
	return gen, ok
}

// Depth returns the number of generations.
func (l *Layering) Depth() int { return len(l.Layers) }

// CycleError reports the path of a cycle found while layering. It unwraps
// to [dag.ErrGraphHasCycle].
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return dag.ErrGraphHasCycle.Error()
	}
	return fmt.Sprintf("%s: %s", dag.ErrGraphHasCycle, strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return dag.ErrGraphHasCycle }

// AssignGenerations groups nodes into topological generations.
//
// AssignGenerations uses Kahn's algorithm one generation at a time:
//  1. Generation 0 holds every node without incoming edges, in graph order
//  2. Walking the current generation in order, each child's in-degree is
//     decremented along every edge; a child reaching zero joins the next
//     generation at that moment
//  3. Repeat until a generation comes out empty
//
// A node therefore lands one generation below the deepest of its parents,
// and the order inside a generation is the order in which the last parent
// released it.
//
// # Cycles
//
// Nodes on a cycle never reach zero in-degree. When any node is left over,
// AssignGenerations returns a *[CycleError] naming the cycle; it never loops.
//
// # Performance
//
// Time complexity is O(V + E). The input graph is not modified.
func AssignGenerations(g *dag.DAG) (*Layering, error) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	var current []string

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			current = append(current, n.ID)
		}
	}

	l := &Layering{Generations: make(map[string]int, len(nodes))}
	placed := 0
	for len(current) > 0 {
		gen := len(l.Layers)
		var next []string
		for _, id := range current {
			l.Generations[id] = gen
			for _, child := range g.Children(id) {
				inDegree[child]--
				if inDegree[child] == 0 {
					next = append(next, child)
				}
			}
		}
		l.Layers = append(l.Layers, current)
		placed += len(current)
		current = next
	}

	if placed != len(nodes) {
		return nil, &CycleError{Path: FindCycle(g)}
	}

	l.Graph = rebuild(g, l.Layers)
	return l, nil
}

// rebuild copies g with nodes in generation order. Edges keep the order of
// their source node in g, followed by the child order of that source.
func rebuild(g *dag.DAG, layers [][]string) *dag.DAG {
	h := dag.New()
	for _, layer := range layers {
		for _, id := range layer {
			_ = h.AddNode(dag.Node{ID: id})
		}
	}
	for _, id := range g.IDs() {
		for _, child := range g.Children(id) {
			_ = h.AddEdge(dag.Edge{From: id, To: child})
		}
	}
	return h
}
