// Package hierarchy turns a roster into a validated reporting graph.
//
// Each member becomes a node and each non-empty manager reference becomes an
// edge from the manager to the member. Build rejects references to unknown
// managers and reporting loops with structured errors, so later stages can
// assume a well-formed DAG.
package hierarchy

import (
	stderrors "errors"
	"strings"

	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/dag/transform"
	"github.com/tougshire/orgchart/pkg/errors"
	"github.com/tougshire/orgchart/pkg/roster"
)

// Build creates the hierarchy graph for r.
//
// Nodes are added in roster order and edges in the roster order of the
// reporting member. A manager ID that matches no member yields
// DANGLING_REFERENCE; a member reporting to itself, or any longer loop,
// yields CYCLE wrapping [dag.ErrGraphHasCycle].
func Build(r *roster.Roster) (*dag.DAG, error) {
	members := r.Members()
	g := dag.New()
	for _, m := range members {
		if err := g.AddNode(dag.Node{ID: m.ID}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add member %q", m.ID)
		}
	}

	for _, m := range members {
		if m.IsRoot() {
			continue
		}
		if _, ok := r.Get(m.ManagerID); !ok {
			return nil, errors.New(errors.ErrCodeDanglingReference,
				"member %q reports to unknown member %q", m.ID, m.ManagerID)
		}
		if err := g.AddEdge(dag.Edge{From: m.ManagerID, To: m.ID}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "link %q to %q", m.ManagerID, m.ID)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, cycleError(&transform.CycleError{Path: transform.FindCycle(g)})
	}
	return g, nil
}

// Layer assigns generations to g. A cycle is reported with code CYCLE.
func Layer(g *dag.DAG) (*transform.Layering, error) {
	l, err := transform.AssignGenerations(g)
	if err != nil {
		var ce *transform.CycleError
		if stderrors.As(err, &ce) {
			return nil, cycleError(ce)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "assign generations")
	}
	return l, nil
}

func cycleError(ce *transform.CycleError) error {
	cause := loopCause{ce}
	if len(ce.Path) == 2 {
		return errors.Wrap(errors.ErrCodeCycle, cause, "member %q reports to itself", ce.Path[0])
	}
	return errors.Wrap(errors.ErrCodeCycle, cause, "reporting loop %s", strings.Join(ce.Path, " -> "))
}

// loopCause keeps the cycle path reachable through errors.As while leaving
// it out of the message, which already names the loop.
type loopCause struct {
	ce *transform.CycleError
}

func (c loopCause) Error() string { return dag.ErrGraphHasCycle.Error() }

func (c loopCause) Unwrap() error { return c.ce }
