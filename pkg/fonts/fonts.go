// Package fonts provides the embedded typeface used for chart labels.
//
// The Go Regular TrueType font ships with golang.org/x/image, so labels
// render identically on every machine without system font lookups.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the family name of the embedded font, used where a renderer
// needs a name rather than glyph data.
const FontFamily = "Go"

// Cache for the parsed font (parsed once on first access).
var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular font.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Face returns a face of the given size in points rasterized at dpi.
func Face(points, dpi float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     dpi,
		Hinting: font.HintingNone,
	}), nil
}
