package chart

import (
	"errors"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	_ "golang.org/x/image/webp"

	"github.com/tougshire/orgchart/pkg/config"
	"github.com/tougshire/orgchart/pkg/layout"
)

var errEmptyIcon = errors.New("empty image")

// IconLoader loads the image for an icon path.
type IconLoader interface {
	Load(path string) (image.Image, error)
}

// IconLoaderFunc adapts a function to IconLoader.
type IconLoaderFunc func(path string) (image.Image, error)

// Load calls f(path).
func (f IconLoaderFunc) Load(path string) (image.Image, error) { return f(path) }

// FileIconLoader decodes icons from disk. PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported; EXIF orientation is applied.
type FileIconLoader struct{}

// Load opens and decodes the image at path. The file is closed before Load
// returns, whether or not decoding succeeds.
func (FileIconLoader) Load(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// iconSize returns the drawn size in pixels of an image of w x h pixels at
// the given zoom. Images are treated as 72 dpi sources.
func iconSize(c canvas, w, h int, zoom float64) (int, int) {
	scale := zoom * c.dpi / 72
	sw := max(1, int(math.Round(float64(w)*scale)))
	sh := max(1, int(math.Round(float64(h)*scale)))
	return sw, sh
}

func drawIcons(dc *gg.Context, c canvas, in Input, s config.Style, loader IconLoader) []IconResult {
	var results []IconResult
	for _, n := range in.Graph.Nodes() {
		m, ok := in.Roster.Get(n.ID)
		if !ok || !m.HasIcon() {
			continue
		}
		res := IconResult{MemberID: m.ID, Path: m.IconPath}
		img, err := loader.Load(m.IconPath)
		if err == nil && (img == nil || img.Bounds().Empty()) {
			err = errEmptyIcon
		}
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		b := img.Bounds()
		w, h := iconSize(c, b.Dx(), b.Dy(), s.IconSize)
		scaled := imaging.Resize(img, w, h, imaging.Lanczos)

		p := in.Layout.Positions[n.ID]
		x, y := c.toPixel(layout.Point{X: p.X, Y: p.Y + s.IconYOffset})
		dc.DrawImageAnchored(scaled, int(math.Round(x)), int(math.Round(y)), 0.5, 0.5)
		results = append(results, res)
	}
	return results
}
