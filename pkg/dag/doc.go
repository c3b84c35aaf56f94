// Package dag provides an insertion-ordered directed graph used to model
// reporting lines in an organization chart.
//
// # Overview
//
// Every member of the organization is a [Node] and every "reports to"
// relationship is an [Edge] from the manager to the direct report. The graph
// keeps nodes, edges, children and parents in the order they were added, so
// that layering and layout built on top of it are fully deterministic.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]. Nodes must have unique IDs and edges can only connect
// existing nodes:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "ceo"})
//	g.AddNode(dag.Node{ID: "cto"})
//	g.AddEdge(dag.Edge{From: "ceo", To: "cto"})
//
// AddEdge never checks for cycles. Call [DAG.Validate] after the graph is
// built; the [transform] subpackage can report the offending path.
//
// # Edge Crossings
//
// [CountCrossings] and [CountLayerCrossings] use a Fenwick tree (binary
// indexed tree) to count inversions in O(E log V) time. Layout orderers use
// them to compare candidate orderings of a generation.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Read-only operations such as
// counting crossings can run in parallel on a graph that is no longer modified.
//
// [transform]: github.com/tougshire/orgchart/pkg/dag/transform
package dag
