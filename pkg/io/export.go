package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tougshire/orgchart/pkg/buildinfo"
	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/layout"
	"github.com/tougshire/orgchart/pkg/roster"
)

// Chart is the computed state of one run that WriteJSON serializes.
type Chart struct {
	Roster      *roster.Roster
	Graph       *dag.DAG
	Generations map[string]int
	Layout      layout.Layout
}

type document struct {
	Generator   string     `json:"generator"`
	Members     []member   `json:"members"`
	Edges       []edge     `json:"edges"`
	Generations [][]string `json:"generations"`
}

type member struct {
	ID         string   `json:"id"`
	FullName   string   `json:"full_name"`
	ManagerID  string   `json:"manager_id,omitempty"`
	Icon       string   `json:"icon,omitempty"`
	Generation int      `json:"generation"`
	Position   position `json:"position"`
}

type position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes c as JSON and writes it to w.
// Members appear in graph order with their generation and layout position;
// edges appear in graph order.
func WriteJSON(c Chart, w io.Writer) error {
	out := document{
		Generator:   buildinfo.Generator(),
		Members:     make([]member, 0, c.Graph.NodeCount()),
		Edges:       make([]edge, 0, c.Graph.EdgeCount()),
		Generations: c.Layout.Rows,
	}
	if out.Generations == nil {
		out.Generations = [][]string{}
	}

	for _, n := range c.Graph.Nodes() {
		m := member{ID: n.ID, Generation: c.Generations[n.ID]}
		if rm, ok := c.Roster.Get(n.ID); ok {
			m.FullName = rm.FullName
			m.ManagerID = rm.ManagerID
			m.Icon = rm.IconPath
		}
		if p, ok := c.Layout.Position(n.ID); ok {
			m.Position = position{X: p.X, Y: p.Y}
		}
		out.Members = append(out.Members, m)
	}
	for _, e := range c.Graph.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
