package chart

import (
	"math"

	"github.com/tougshire/orgchart/pkg/layout"
)

// Plot area as fractions of the figure, measured from the bottom-left.
const (
	axesLeft   = 0.125
	axesRight  = 0.9
	axesBottom = 0.11
	axesTop    = 0.88

	// dataPad is added around the node extent before margins are applied.
	dataPad = 0.05
	// margin is the relative autoscale margin on each axis.
	margin = 0.05
)

// canvas maps layout coordinates onto image pixels.
type canvas struct {
	width, height int
	dpi           float64

	x0, x1, y0, y1 float64 // data limits
	left, bottom   float64 // plot area origin in pixels, from bottom-left
	plotW, plotH   float64 // plot area size in pixels
}

func newCanvas(l layout.Layout, figW, figH float64, dpi int) canvas {
	c := canvas{
		width:  int(math.Round(figW * float64(dpi))),
		height: int(math.Round(figH * float64(dpi))),
		dpi:    float64(dpi),
	}
	c.left = axesLeft * float64(c.width)
	c.bottom = axesBottom * float64(c.height)
	c.plotW = (axesRight - axesLeft) * float64(c.width)
	c.plotH = (axesTop - axesBottom) * float64(c.height)

	minX, minY, maxX, maxY := l.Bounds()
	c.x0, c.x1 = limits(minX, maxX)
	c.y0, c.y1 = limits(minY, maxY)
	return c
}

// limits pads [lo, hi], widens it by the autoscale margin and makes sure
// the result is not degenerate.
func limits(lo, hi float64) (float64, float64) {
	pad := dataPad * (hi - lo)
	lo, hi = lo-pad, hi+pad
	lo, hi = nonsingular(lo, hi)
	m := margin * (hi - lo)
	return lo - m, hi + m
}

func nonsingular(lo, hi float64) (float64, float64) {
	const tiny = 1e-12
	if hi-lo > tiny {
		return lo, hi
	}
	if math.Abs(lo) < tiny && math.Abs(hi) < tiny {
		return -0.05, 0.05
	}
	return lo - 0.05*math.Abs(lo), hi + 0.05*math.Abs(hi)
}

// toPixel converts a layout point into image coordinates (y grows down).
func (c canvas) toPixel(p layout.Point) (float64, float64) {
	px := c.left + (p.X-c.x0)/(c.x1-c.x0)*c.plotW
	py := c.bottom + (p.Y-c.y0)/(c.y1-c.y0)*c.plotH
	return px, float64(c.height) - py
}

// pt converts typographic points into pixels.
func (c canvas) pt(points float64) float64 {
	return points * c.dpi / 72
}
