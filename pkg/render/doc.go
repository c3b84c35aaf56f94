// Package render groups the chart output formats.
//
//   - [chart]: raster PNG of the laid-out hierarchy with labels and icons
//   - [nodelink]: Graphviz DOT and SVG node-link diagrams
//
// Both consume the hierarchy graph and roster; the raster chart also needs
// a [layout.Layout].
//
// [chart]: github.com/tougshire/orgchart/pkg/render/chart
// [nodelink]: github.com/tougshire/orgchart/pkg/render/nodelink
// [layout.Layout]: github.com/tougshire/orgchart/pkg/layout
package render
