// Package config holds the drawing style of an org chart and loads it from
// files and the environment.
//
// Sources are layered, later ones winning: [Default], then an optional TOML
// or YAML file ([LoadFile]), then ORGCHART_* environment variables
// ([ApplyEnv]), optionally seeded from .env files ([LoadDotEnv]). Command
// line flags are applied last by the caller.
package config

import (
	stderrors "errors"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/tougshire/orgchart/pkg/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ORGCHART_"

// Horizontal and vertical label alignments.
var (
	XAlignments = []string{"left", "center", "right"}
	YAlignments = []string{"top", "center", "bottom", "baseline"}
)

// Style controls how a chart is drawn. Sizes follow plotting conventions:
// NodeSize and NodeToEdgeDistance are marker areas in points squared, font
// sizes are in points, offsets are in layout units.
type Style struct {
	NodeSize             float64 `toml:"node_size" yaml:"node_size" json:"node_size" env:"NODE_SIZE"`
	NodeToEdgeDistance   float64 `toml:"node_to_edge_distance" yaml:"node_to_edge_distance" json:"node_to_edge_distance" env:"NODE_TO_EDGE_DISTANCE"`
	MemberNameYOffset    float64 `toml:"member_name_y_offset" yaml:"member_name_y_offset" json:"member_name_y_offset" env:"MEMBER_NAME_Y_OFFSET"`
	MemberNameXAlignment string  `toml:"member_name_x_alignment" yaml:"member_name_x_alignment" json:"member_name_x_alignment" env:"MEMBER_NAME_X_ALIGNMENT"`
	MemberNameYAlignment string  `toml:"member_name_y_alignment" yaml:"member_name_y_alignment" json:"member_name_y_alignment" env:"MEMBER_NAME_Y_ALIGNMENT"`
	MemberNameFontSize   float64 `toml:"member_name_font_size" yaml:"member_name_font_size" json:"member_name_font_size" env:"MEMBER_NAME_FONT_SIZE"`
	MemberNameWrap       int     `toml:"member_name_wrap" yaml:"member_name_wrap" json:"member_name_wrap" env:"MEMBER_NAME_WRAP"`
	MemberNameFacecolor  string  `toml:"member_name_facecolor" yaml:"member_name_facecolor" json:"member_name_facecolor" env:"MEMBER_NAME_FACECOLOR"`
	IconSize             float64 `toml:"icon_size" yaml:"icon_size" json:"icon_size" env:"ICON_SIZE"`
	IconYOffset          float64 `toml:"icon_y_offset" yaml:"icon_y_offset" json:"icon_y_offset" env:"ICON_Y_OFFSET"`
	DPI                  int     `toml:"dpi" yaml:"dpi" json:"dpi" env:"DPI"`

	FigWidth   float64 `toml:"fig_width" yaml:"fig_width" json:"fig_width" env:"FIG_WIDTH"`
	FigHeight  float64 `toml:"fig_height" yaml:"fig_height" json:"fig_height" env:"FIG_HEIGHT"`
	NodeColor  string  `toml:"node_color" yaml:"node_color" json:"node_color" env:"NODE_COLOR"`
	EdgeColor  string  `toml:"edge_color" yaml:"edge_color" json:"edge_color" env:"EDGE_COLOR"`
	Background string  `toml:"background" yaml:"background" json:"background" env:"BACKGROUND"`
}

// Default returns the built-in style.
func Default() Style {
	return Style{
		NodeSize:             1,
		NodeToEdgeDistance:   400,
		MemberNameYOffset:    -0.01,
		MemberNameXAlignment: "center",
		MemberNameYAlignment: "top",
		MemberNameFontSize:   2,
		MemberNameWrap:       12,
		MemberNameFacecolor:  "#6666ff",
		IconSize:             0.05,
		IconYOffset:          0.02,
		DPI:                  600,
		FigWidth:             6.4,
		FigHeight:            4.8,
		NodeColor:            "#1f78b4",
		EdgeColor:            "#000000",
		Background:           "#ffffff",
	}
}

// Validate reports the first invalid setting with code INVALID_CONFIG.
func (s Style) Validate() error {
	switch {
	case s.DPI <= 0:
		return invalid("dpi must be positive, got %d", s.DPI)
	case s.FigWidth <= 0 || s.FigHeight <= 0:
		return invalid("figure size must be positive, got %gx%g", s.FigWidth, s.FigHeight)
	case s.MemberNameWrap <= 0:
		return invalid("member_name_wrap must be positive, got %d", s.MemberNameWrap)
	case s.MemberNameFontSize <= 0:
		return invalid("member_name_font_size must be positive, got %g", s.MemberNameFontSize)
	case s.NodeSize < 0:
		return invalid("node_size must not be negative, got %g", s.NodeSize)
	case s.NodeToEdgeDistance < 0:
		return invalid("node_to_edge_distance must not be negative, got %g", s.NodeToEdgeDistance)
	case s.IconSize <= 0:
		return invalid("icon_size must be positive, got %g", s.IconSize)
	case !slices.Contains(XAlignments, s.MemberNameXAlignment):
		return invalid("member_name_x_alignment %q is not one of %s", s.MemberNameXAlignment, strings.Join(XAlignments, ", "))
	case !slices.Contains(YAlignments, s.MemberNameYAlignment):
		return invalid("member_name_y_alignment %q is not one of %s", s.MemberNameYAlignment, strings.Join(YAlignments, ", "))
	}
	for _, c := range []struct{ key, value string }{
		{"member_name_facecolor", s.MemberNameFacecolor},
		{"node_color", s.NodeColor},
		{"edge_color", s.EdgeColor},
		{"background", s.Background},
	} {
		if _, err := ParseColor(c.value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s %q", c.key, c.value)
		}
	}
	return nil
}

// ParseColor parses a "#rgb" or "#rrggbb" hex color.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return nil, err
	}
	return c.Clamped(), nil
}

// LoadFile decodes the TOML (.toml) or YAML (.yaml, .yml) file at path on
// top of base. Keys missing from the file keep their value from base;
// unknown keys are rejected.
func LoadFile(path string, base Style) (Style, error) {
	s := base
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &s)
		if err != nil {
			return base, fileError(path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return base, invalid("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return base, fileError(path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !stderrors.Is(err, io.EOF) {
			return base, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
	default:
		return base, invalid("%s: unsupported config format (use .toml, .yaml or .yml)", path)
	}
	return s, nil
}

// LoadDotEnv loads the given .env files into the process environment,
// skipping files that do not exist. Variables already set are kept.
// It returns the number of files loaded.
func LoadDotEnv(files ...string) (int, error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", strings.Join(existing, ", "))
	}
	return len(existing), nil
}

// ApplyEnv overrides fields of s from ORGCHART_* environment variables.
// Unset variables leave the field unchanged.
func ApplyEnv(s Style) (Style, error) {
	out := s
	if err := env.ParseWithOptions(&out, env.Options{Prefix: EnvPrefix}); err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "environment")
	}
	return out, nil
}

// Load builds a style from the defaults, the optional file at path and the
// environment, then validates it.
func Load(path string) (Style, error) {
	s := Default()
	if path != "" {
		var err error
		if s, err = LoadFile(path, s); err != nil {
			return s, err
		}
	}
	s, err := ApplyEnv(s)
	if err != nil {
		return s, err
	}
	return s, s.Validate()
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

func fileError(path string, err error) error {
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
	}
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
}
