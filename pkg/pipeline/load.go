package pipeline

import (
	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/dag/transform"
	"github.com/tougshire/orgchart/pkg/hierarchy"
	"github.com/tougshire/orgchart/pkg/roster"
)

// Load reads the roster at opts.Input and builds its hierarchy graph.
// Missing managers and reporting loops are returned as coded errors.
func Load(opts Options) (*roster.Roster, *dag.DAG, error) {
	r, err := roster.Load(opts.Input, opts.RosterOptions())
	if err != nil {
		return nil, nil, err
	}
	g, err := hierarchy.Build(r)
	if err != nil {
		return nil, nil, err
	}
	return r, g, nil
}

// Layer assigns generations to g.
func Layer(g *dag.DAG) (*transform.Layering, error) {
	return hierarchy.Layer(g)
}
