// Package chart rasterizes a laid-out org chart.
//
// [Render] draws, in this order, one arrow per reporting line, one marker
// per member, a boxed and word-wrapped name label per member, and the
// member's icon when one is configured. No frame or axis is drawn. Icons
// that fail to load are skipped and reported in [Result.Icons]; they never
// abort rendering.
//
// [EncodePNG] writes the image with its resolution recorded in a pHYs chunk,
// so image viewers report the configured DPI.
package chart

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/tougshire/orgchart/pkg/config"
	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/errors"
	"github.com/tougshire/orgchart/pkg/layout"
	"github.com/tougshire/orgchart/pkg/roster"
)

// Arrow geometry in points.
const (
	edgeWidth       = 1.0
	arrowHeadLength = 4.0
	arrowHeadWidth  = 2.0
	boxLineWidth    = 1.0
)

// Input is everything needed to draw a chart.
type Input struct {
	// Graph provides draw order and edges.
	Graph *dag.DAG
	// Roster provides names and icon paths for the graph's nodes.
	Roster *roster.Roster
	// Layout provides a position for every node.
	Layout layout.Layout
}

// IconResult reports the outcome of loading one member's icon.
type IconResult struct {
	MemberID string
	Path     string
	Err      error
}

// OK reports whether the icon was drawn.
func (r IconResult) OK() bool { return r.Err == nil }

// Result is a rendered chart.
type Result struct {
	Image image.Image
	DPI   int
	// Icons has one entry per member with an icon path, in draw order.
	Icons []IconResult
}

// IconFailures returns the icons that could not be drawn.
func (r *Result) IconFailures() []IconResult {
	var failed []IconResult
	for _, ic := range r.Icons {
		if !ic.OK() {
			failed = append(failed, ic)
		}
	}
	return failed
}

type palette struct {
	background, node, edge, face color.Color
}

func newPalette(s config.Style) (palette, error) {
	var p palette
	for _, c := range []struct {
		dst   *color.Color
		value string
	}{
		{&p.background, s.Background},
		{&p.node, s.NodeColor},
		{&p.edge, s.EdgeColor},
		{&p.face, s.MemberNameFacecolor},
	} {
		parsed, err := config.ParseColor(c.value)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidConfig, err, "color %q", c.value)
		}
		*c.dst = parsed
	}
	return p, nil
}

// Render draws in on a canvas of s.FigWidth x s.FigHeight inches at s.DPI.
// A nil loader uses [FileIconLoader].
func Render(in Input, s config.Style, loader IconLoader) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if in.Graph == nil || in.Roster == nil {
		return nil, errors.New(errors.ErrCodeInternal, "render: graph and roster are required")
	}
	if loader == nil {
		loader = FileIconLoader{}
	}
	pal, err := newPalette(s)
	if err != nil {
		return nil, err
	}

	nodes := in.Graph.Nodes()
	for _, n := range nodes {
		if _, ok := in.Layout.Position(n.ID); !ok {
			return nil, errors.New(errors.ErrCodeInternal, "render: no position for %q", n.ID)
		}
	}

	c := newCanvas(in.Layout, s.FigWidth, s.FigHeight, s.DPI)
	dc := gg.NewContext(c.width, c.height)
	dc.SetColor(pal.background)
	dc.Clear()

	drawEdges(dc, c, in, s, pal.edge)
	drawNodes(dc, c, in, s, pal.node)
	if err := drawLabels(dc, c, in, s, pal.face); err != nil {
		return nil, err
	}

	icons := drawIcons(dc, c, in, s, loader)
	return &Result{Image: dc.Image(), DPI: s.DPI, Icons: icons}, nil
}

// markerRadius is the radius in pixels of a circular marker whose area is
// size points squared.
func markerRadius(c canvas, size float64) float64 {
	return c.pt(math.Sqrt(size) / 2)
}

func drawEdges(dc *gg.Context, c canvas, in Input, s config.Style, col color.Color) {
	shrink := markerRadius(c, s.NodeToEdgeDistance)
	headLen, headHalf := c.pt(arrowHeadLength), c.pt(arrowHeadWidth)

	dc.SetColor(col)
	dc.SetLineWidth(c.pt(edgeWidth))
	for _, e := range in.Graph.Edges() {
		fx, fy := c.toPixel(in.Layout.Positions[e.From])
		tx, ty := c.toPixel(in.Layout.Positions[e.To])
		dx, dy := tx-fx, ty-fy
		length := math.Hypot(dx, dy)
		if length <= 2*shrink {
			continue
		}
		ux, uy := dx/length, dy/length
		sx, sy := fx+ux*shrink, fy+uy*shrink
		ex, ey := tx-ux*shrink, ty-uy*shrink

		head := math.Min(headLen, length-2*shrink)
		bx, by := ex-ux*head, ey-uy*head
		dc.DrawLine(sx, sy, bx, by)
		dc.Stroke()

		dc.MoveTo(ex, ey)
		dc.LineTo(bx-uy*headHalf, by+ux*headHalf)
		dc.LineTo(bx+uy*headHalf, by-ux*headHalf)
		dc.ClosePath()
		dc.Fill()
	}
}

func drawNodes(dc *gg.Context, c canvas, in Input, s config.Style, col color.Color) {
	r := math.Max(markerRadius(c, s.NodeSize), 0.5)
	dc.SetColor(col)
	for _, n := range in.Graph.Nodes() {
		x, y := c.toPixel(in.Layout.Positions[n.ID])
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}
}
