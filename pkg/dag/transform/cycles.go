package transform

import (
	"slices"

	"github.com/tougshire/orgchart/pkg/dag"
)

// FindCycle returns the IDs of one directed cycle, starting and ending with
// the same node (for example [a b c a]), or nil if g is acyclic.
//
// The search starts from sources first and then from any node not yet
// reached, both in insertion order, so the reported cycle is stable across
// runs. A node that reports to itself yields [a a].
func FindCycle(g *dag.DAG) []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, g.NodeCount())
	var stack, cycle []string

	var dfs func(node string) bool
	dfs = func(node string) bool {
		color[node] = gray
		stack = append(stack, node)
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				start := slices.Index(stack, child)
				cycle = append(slices.Clone(stack[start:]), child)
				return true
			}
		}
		stack = stack[:len(stack)-1]
		color[node] = black
		return false
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white && dfs(n.ID) {
			return cycle
		}
	}
	for _, n := range g.Nodes() {
		if color[n.ID] == white && dfs(n.ID) {
			return cycle
		}
	}
	return nil
}
