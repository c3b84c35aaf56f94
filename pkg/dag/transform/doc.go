// Package transform derives layered structure from a hierarchy graph.
//
// # Generations
//
// [AssignGenerations] computes topological generations with Kahn's
// algorithm. Roots (members who report to nobody) form generation 0; every
// other node sits one generation below its deepest parent. The result is a
// [Layering] that also carries a copy of the graph with nodes re-inserted in
// generation order, which downstream layout uses as its base ordering.
//
// The input graph is never modified.
//
// # Cycles
//
// [FindCycle] returns the path of one directed cycle, if any. AssignGenerations
// uses it to build a [CycleError], which unwraps to dag.ErrGraphHasCycle:
//
//	l, err := transform.AssignGenerations(g)
//	if errors.Is(err, dag.ErrGraphHasCycle) {
//		var ce *transform.CycleError
//		errors.As(err, &ce)
//		fmt.Println(ce.Path)
//	}
package transform
