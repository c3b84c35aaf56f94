package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/fonts"
	"github.com/tougshire/orgchart/pkg/roster"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Roster supplies display names. When nil, nodes are labeled by ID.
	Roster *roster.Roster

	// Rows groups nodes that must share a rank, one group per generation.
	Rows [][]string

	// FillColor is the node box color. Empty means white.
	FillColor string

	// Detailed adds the member ID and generation below the name.
	Detailed bool
}

// ToDOT converts a hierarchy to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Every row in opts.Rows becomes a {rank=same} group, so members of the same
// generation line up horizontally.
func ToDOT(g *dag.DAG, opts Options) string {
	fill := opts.FillColor
	if fill == "" {
		fill = "white"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=%q, fontname=%q, fontsize=14, margin=\"0.2,0.1\"];\n", fill, fonts.FontFamily)
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	gens := make(map[string]int)
	for i, row := range opts.Rows {
		for _, id := range row {
			gens[id] = i
		}
	}

	for _, n := range g.Nodes() {
		label := fmtLabel(n.ID, opts, gens)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
	}

	if len(opts.Rows) > 0 {
		buf.WriteString("\n")
	}
	for _, row := range opts.Rows {
		quoted := make([]string, len(row))
		for i, id := range row {
			quoted[i] = strconv.Quote(id)
		}
		fmt.Fprintf(&buf, "  {rank=same; %s;}\n", strings.Join(quoted, "; "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(id string, opts Options, gens map[string]int) string {
	name := id
	if opts.Roster != nil {
		if m, ok := opts.Roster.Get(id); ok {
			name = m.DisplayName()
		}
	}
	if !opts.Detailed {
		return name
	}

	parts := []string{name, "id: " + id}
	if gen, ok := gens[id]; ok {
		parts = append(parts, fmt.Sprintf("generation: %d", gen))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
