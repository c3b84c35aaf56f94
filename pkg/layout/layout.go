// Package layout computes planar coordinates for a layered hierarchy.
//
// [Multipartite] places every generation on its own horizontal row, with
// generation 0 at the top, and spreads the members of a row at unit spacing
// around the vertical axis. The whole drawing is then centered on the origin
// and scaled so that the largest absolute coordinate equals [Options.Scale].
//
// The order of members inside a row comes from an [Orderer]. [Insertion]
// keeps the generation order produced by layering; [Barycentric] reorders
// rows to reduce edge crossings.
package layout

import "math"

// DefaultScale is the largest absolute coordinate of a layout.
const DefaultScale = 1.0

// Point is a position in layout space. Y grows upwards.
type Point struct {
	X, Y float64
}

// Options configures [Multipartite].
type Options struct {
	// Scale is the largest absolute coordinate after rescaling.
	// Zero means DefaultScale.
	Scale float64
}

// Layout holds the computed position of every node.
type Layout struct {
	// Rows are the node IDs of each generation in left-to-right order.
	Rows [][]string

	// Positions maps node IDs to coordinates.
	Positions map[string]Point
}

// Position returns the coordinates of id and whether id was laid out.
func (l Layout) Position(id string) (Point, bool) {
	p, ok := l.Positions[id]
	return p, ok
}

// Bounds returns the smallest rectangle that contains every position.
// An empty layout yields all zeros.
func (l Layout) Bounds() (minX, minY, maxX, maxY float64) {
	if len(l.Positions) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range l.Positions {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// Multipartite lays out rows as horizontal bands.
//
// Row i is first placed at height i - (len(rows)-1)/2 and its members at
// j - (len(row)-1)/2. Coordinates are then shifted so their mean is the
// origin, multiplied by Scale / max|coordinate| (when non-zero) and finally
// mirrored vertically so that row 0 is the topmost band. Nodes that share a
// row always share a Y value, and Y strictly decreases with the row index.
func Multipartite(rows [][]string, opts Options) Layout {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	type placed struct {
		id   string
		x, y float64
	}
	var pts []placed
	width := float64(len(rows))
	for i, row := range rows {
		height := float64(len(row))
		for j, id := range row {
			pts = append(pts, placed{
				id: id,
				x:  float64(j) - (height-1)/2,
				y:  float64(i) - (width-1)/2,
			})
		}
	}

	out := Layout{Rows: rows, Positions: make(map[string]Point, len(pts))}
	if len(pts) == 0 {
		return out
	}

	var meanX, meanY float64
	for _, p := range pts {
		meanX += p.x
		meanY += p.y
	}
	meanX /= float64(len(pts))
	meanY /= float64(len(pts))

	lim := 0.0
	for i := range pts {
		pts[i].x -= meanX
		pts[i].y -= meanY
		lim = math.Max(lim, math.Max(math.Abs(pts[i].x), math.Abs(pts[i].y)))
	}

	factor := 1.0
	if lim > 0 {
		factor = scale / lim
	}
	for _, p := range pts {
		out.Positions[p.id] = Point{X: p.x * factor, Y: -p.y * factor}
	}
	return out
}
