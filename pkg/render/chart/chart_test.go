package chart

import (
	"bytes"
	stderrors "errors"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/tougshire/orgchart/pkg/config"
	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/errors"
	"github.com/tougshire/orgchart/pkg/layout"
	"github.com/tougshire/orgchart/pkg/roster"
)

func testStyle() config.Style {
	s := config.Default()
	s.DPI = 50
	s.MemberNameFontSize = 8
	return s
}

func testInput(t *testing.T, records ...roster.Record) Input {
	t.Helper()
	r := roster.FromRecords(records, roster.Options{})
	g := dag.New()
	for _, id := range r.IDs() {
		if err := g.AddNode(dag.Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	for _, m := range r.Members() {
		if !m.IsRoot() {
			if err := g.AddEdge(dag.Edge{From: m.ManagerID, To: m.ID}); err != nil {
				t.Fatal(err)
			}
		}
	}
	// rows by hand: roots first, everything else below
	var rows [][]string
	var roots, rest []string
	for _, m := range r.Members() {
		if m.IsRoot() {
			roots = append(roots, m.ID)
		} else {
			rest = append(rest, m.ID)
		}
	}
	rows = append(rows, roots)
	if len(rest) > 0 {
		rows = append(rows, rest)
	}
	return Input{Graph: g, Roster: r, Layout: layout.Multipartite(rows, layout.Options{})}
}

func solid(c color.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestRenderCanvas(t *testing.T) {
	in := testInput(t,
		roster.Record{Key: "root", FullName: "Root Person"},
		roster.Record{Key: "a", ReportsTo: "root", FullName: "Alice"},
		roster.Record{Key: "b", ReportsTo: "root", FullName: "Bob"},
	)
	s := testStyle()

	res, err := Render(in, s, nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	b := res.Image.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
	if res.DPI != 50 {
		t.Errorf("DPI = %d, want 50", res.DPI)
	}

	// nothing is drawn along the figure edges
	for _, p := range []image.Point{{0, 0}, {b.Dx() - 1, 0}, {0, b.Dy() - 1}, {b.Dx() - 1, b.Dy() - 1}, {b.Dx() / 2, 0}} {
		if !isWhite(res.Image.At(p.X, p.Y)) {
			t.Errorf("pixel %v = %v, want background", p, res.Image.At(p.X, p.Y))
		}
	}

	drawn := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !isWhite(res.Image.At(x, y)) {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("canvas is blank")
	}
	if len(res.Icons) != 0 {
		t.Errorf("Icons = %v, want none", res.Icons)
	}
}

func TestRenderLabelBox(t *testing.T) {
	in := testInput(t, roster.Record{Key: "solo", FullName: "Solo"})
	s := testStyle()
	s.MemberNameFacecolor = "#00ff00"
	s.MemberNameFontSize = 40
	s.MemberNameYOffset = -0.01

	res, err := Render(in, s, nil)
	if err != nil {
		t.Fatal(err)
	}
	c := newCanvas(in.Layout, s.FigWidth, s.FigHeight, s.DPI)
	x, y := c.toPixel(layout.Point{X: 0, Y: s.MemberNameYOffset})

	// the box pad sits just above the anchor of a top-aligned label
	px := res.Image.At(int(x), int(y)-4)
	r, g, b, _ := px.RGBA()
	if g < 0xe000 || r > 0x2000 || b > 0x2000 {
		t.Errorf("pixel under label anchor = %v, want facecolor", px)
	}
}

func TestRenderIcons(t *testing.T) {
	in := testInput(t,
		roster.Record{Key: "root", FullName: "Root", Icon: "/icons/root.png"},
		roster.Record{Key: "a", ReportsTo: "root", FullName: "Alice", Icon: "/icons/missing.png"},
		roster.Record{Key: "b", ReportsTo: "root", FullName: "Bob"},
	)
	s := testStyle()
	s.IconSize = 0.5

	loader := IconLoaderFunc(func(path string) (image.Image, error) {
		if strings.HasSuffix(path, "root.png") {
			return solid(color.RGBA{R: 255, A: 255}, 40, 40), nil
		}
		return nil, os.ErrNotExist
	})

	res, err := Render(in, s, loader)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(res.Icons) != 2 {
		t.Fatalf("Icons = %v, want 2 results", res.Icons)
	}
	failures := res.IconFailures()
	if len(failures) != 1 || failures[0].MemberID != "a" || failures[0].Path != "/icons/missing.png" {
		t.Fatalf("IconFailures() = %v", failures)
	}
	if !stderrors.Is(failures[0].Err, os.ErrNotExist) {
		t.Errorf("failure error = %v", failures[0].Err)
	}

	c := newCanvas(in.Layout, s.FigWidth, s.FigHeight, s.DPI)
	p := in.Layout.Positions["root"]
	x, y := c.toPixel(layout.Point{X: p.X, Y: p.Y + s.IconYOffset})
	r, g, b, _ := res.Image.At(int(math.Round(x)), int(math.Round(y))).RGBA()
	if r < 0xc000 || g > 0x4000 || b > 0x4000 {
		t.Errorf("icon center = %x %x %x, want red", r, g, b)
	}
}

func TestRenderEmptyIconCountsAsFailure(t *testing.T) {
	in := testInput(t, roster.Record{Key: "solo", Icon: "/icons/empty.png"})
	loader := IconLoaderFunc(func(string) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	})
	res, err := Render(in, testStyle(), loader)
	if err != nil {
		t.Fatal(err)
	}
	if f := res.IconFailures(); len(f) != 1 || f[0].Err != errEmptyIcon {
		t.Errorf("IconFailures() = %v", f)
	}
}

func TestRenderErrors(t *testing.T) {
	in := testInput(t, roster.Record{Key: "solo"})

	bad := testStyle()
	bad.DPI = 0
	if _, err := Render(in, bad, nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("invalid style: %v", err)
	}

	missing := in
	missing.Layout = layout.Layout{Positions: map[string]layout.Point{}}
	if _, err := Render(missing, testStyle(), nil); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("missing position: %v", err)
	}

	if _, err := Render(Input{}, testStyle(), nil); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("empty input: %v", err)
	}
}

func TestWrapName(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  []string
	}{
		{"Benjamin Goldberg", 12, []string{"Benjamin", "Goldberg"}},
		{"Kyle Binaxas", 12, []string{"Kyle Binaxas"}},
		{"  spaced   out  ", 12, []string{"spaced out"}},
		{"", 12, nil},
		{"   ", 12, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapName(tt.name, tt.width); !slices.Equal(got, tt.want) {
				t.Errorf("WrapName(%q, %d) = %q, want %q", tt.name, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapNameLongWord(t *testing.T) {
	const word = "Supercalifragilistic"
	lines := WrapName(word, 5)
	if len(lines) < 4 {
		t.Errorf("WrapName() = %q, want the word broken", lines)
	}
	for _, l := range lines {
		if len(l) > 5 {
			t.Errorf("line %q longer than 5", l)
		}
	}
	if strings.Join(lines, "") != word {
		t.Errorf("lines %q do not rebuild %q", lines, word)
	}
}

func TestCanvasSingleNode(t *testing.T) {
	l := layout.Multipartite([][]string{{"solo"}}, layout.Options{})
	c := newCanvas(l, 6.4, 4.8, 100)
	x, y := c.toPixel(l.Positions["solo"])
	wantX := c.left + c.plotW/2
	wantY := float64(c.height) - (c.bottom + c.plotH/2)
	if math.Abs(x-wantX) > 1e-9 || math.Abs(y-wantY) > 1e-9 {
		t.Errorf("toPixel() = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
	if c.pt(72) != 100 {
		t.Errorf("pt(72) = %v, want 100", c.pt(72))
	}
}

func TestIconSize(t *testing.T) {
	c := canvas{dpi: 144}
	if w, h := iconSize(c, 100, 50, 0.5); w != 100 || h != 50 {
		t.Errorf("iconSize() = %dx%d, want 100x50", w, h)
	}
	if w, h := iconSize(c, 10, 10, 0.001); w != 1 || h != 1 {
		t.Errorf("iconSize() = %dx%d, want clamped 1x1", w, h)
	}
}

func TestEncodePNG(t *testing.T) {
	img := solid(color.White, 4, 3)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, 600); err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}
	data := buf.Bytes()

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("decoded size = %v", decoded.Bounds())
	}

	ppm, ok := readPHYs(data)
	if !ok {
		t.Fatal("no pHYs chunk")
	}
	if want := uint32(math.Round(600 * inchesPerMeter)); ppm != want {
		t.Errorf("pixels per meter = %d, want %d", ppm, want)
	}
	if dpi := float64(ppm) / inchesPerMeter; math.Abs(dpi-600) > 0.05 {
		t.Errorf("dpi = %v, want 600", dpi)
	}
}

func readPHYs(data []byte) (uint32, bool) {
	for off := pngSignatureLen; off+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[off:]))
		typ := string(data[off+4 : off+8])
		if typ == "pHYs" && data[off+16] == 1 {
			return binary.BigEndian.Uint32(data[off+8:]), true
		}
		off += 12 + n
	}
	return 0, false
}
