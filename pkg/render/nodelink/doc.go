// Package nodelink renders an org chart as a Graphviz node-link diagram.
//
// # Usage
//
// Convert the hierarchy to DOT, then render to SVG in-process:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Roster: r, Rows: l.Layers})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source is also useful on its own for external Graphviz tools.
//
// # Options
//
//   - Roster: labels nodes with member display names
//   - Rows: one {rank=same} group per generation
//   - Detailed: adds member ID and generation to each label
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes, matching the raster chart's orientation.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package nodelink
