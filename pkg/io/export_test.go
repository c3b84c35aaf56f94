package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/layout"
	"github.com/tougshire/orgchart/pkg/roster"
)

func sampleChart(t *testing.T) Chart {
	t.Helper()
	r := roster.FromRecords([]roster.Record{
		{Key: "root", FullName: "Rita Root"},
		{Key: "a", ReportsTo: "root", FullName: "Al", Icon: "al.png"},
	}, roster.Options{IconsDir: "icons"})
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "root"})
	_ = g.AddNode(dag.Node{ID: "a"})
	_ = g.AddEdge(dag.Edge{From: "root", To: "a"})
	rows := [][]string{{"root"}, {"a"}}
	return Chart{
		Roster:      r,
		Graph:       g,
		Generations: map[string]int{"root": 0, "a": 1},
		Layout:      layout.Multipartite(rows, layout.Options{}),
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleChart(t), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var doc document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !strings.HasPrefix(doc.Generator, "orgchart ") {
		t.Errorf("Generator = %q", doc.Generator)
	}
	if len(doc.Members) != 2 || len(doc.Edges) != 1 || len(doc.Generations) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}

	root, a := doc.Members[0], doc.Members[1]
	if root.ID != "root" || root.Generation != 0 || root.Position.Y != 1 || root.ManagerID != "" {
		t.Errorf("root = %+v", root)
	}
	if a.ManagerID != "root" || a.Generation != 1 || a.Position.Y != -1 {
		t.Errorf("a = %+v", a)
	}
	if a.Icon != filepath.Join("icons", "al.png") {
		t.Errorf("a.Icon = %q", a.Icon)
	}
	if doc.Edges[0] != (edge{From: "root", To: "a"}) {
		t.Errorf("Edges = %v", doc.Edges)
	}
	if strings.Contains(buf.String(), `"manager_id": ""`) {
		t.Error("empty manager_id should be omitted")
	}
}
