package chart

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fogleman/gg"

	"github.com/tougshire/orgchart/pkg/config"
	"github.com/tougshire/orgchart/pkg/errors"
	"github.com/tougshire/orgchart/pkg/fonts"
	"github.com/tougshire/orgchart/pkg/layout"
)

const (
	lineSpacing = 1.2
	boxPad      = 0.3 // fraction of the font size
)

// WrapName breaks name into lines of at most width characters, splitting on
// whitespace and breaking words that are longer than width.
func WrapName(name string, width int) []string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(ansi.Wrap(name, width, ""), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// alignX returns the horizontal anchor fraction for gg.
func alignX(a string) float64 {
	switch a {
	case "left":
		return 0
	case "right":
		return 1
	}
	return 0.5
}

func drawLabels(dc *gg.Context, c canvas, in Input, s config.Style, face color.Color) error {
	ff, err := fonts.Face(s.MemberNameFontSize, c.dpi)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}
	dc.SetFontFace(ff)

	fontPx := c.pt(s.MemberNameFontSize)
	lineH := fontPx * lineSpacing
	pad := c.pt(s.MemberNameFontSize * boxPad)
	ax := alignX(s.MemberNameXAlignment)
	descent := float64(ff.Metrics().Descent) / 64

	for _, n := range in.Graph.Nodes() {
		m, ok := in.Roster.Get(n.ID)
		if !ok {
			continue
		}
		lines := WrapName(m.DisplayName(), s.MemberNameWrap)
		if len(lines) == 0 {
			continue
		}

		p := in.Layout.Positions[n.ID]
		x, y := c.toPixel(layout.Point{X: p.X, Y: p.Y + s.MemberNameYOffset})

		var blockW float64
		for _, line := range lines {
			if w, _ := dc.MeasureString(line); w > blockW {
				blockW = w
			}
		}
		_, textH := dc.MeasureString(lines[0])
		blockH := float64(len(lines)-1)*lineH + textH

		left := x - ax*blockW
		var top float64
		switch s.MemberNameYAlignment {
		case "top":
			top = y
		case "center":
			top = y - blockH/2
		case "bottom":
			top = y - blockH - descent
		case "baseline":
			top = y - blockH
		}

		dc.DrawRectangle(left-pad, top-pad, blockW+2*pad, blockH+2*pad)
		dc.SetColor(face)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(c.pt(boxLineWidth))
		dc.Stroke()

		for i, line := range lines {
			dc.DrawStringAnchored(line, left+ax*blockW, top+float64(i)*lineH, ax, 1)
		}
	}
	return nil
}
