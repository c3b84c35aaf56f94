// Package pipeline runs the complete org chart pipeline.
//
// This package implements the load → layer → layout → render → save flow
// used by the CLI. Each stage is a plain function so it can be called on its
// own; [Runner] chains them and logs timings.
//
// # Architecture
//
//  1. Load: read the roster and build the validated hierarchy graph
//  2. Layer: group members into generations
//  3. Layout: order each generation and compute coordinates
//  4. Render: produce one artifact per requested format (PNG, SVG, DOT, JSON)
//  5. Save: ask a [DestinationResolver] for a path and write the artifacts
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "data/data.csv"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := runner.Save(ctx, result, pipeline.FixedPath("chart.png"))
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tougshire/orgchart/pkg/config"
	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/dag/transform"
	"github.com/tougshire/orgchart/pkg/errors"
	"github.com/tougshire/orgchart/pkg/layout"
	"github.com/tougshire/orgchart/pkg/render/chart"
	"github.com/tougshire/orgchart/pkg/roster"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultInput is the roster read when no input is given.
	DefaultInput = "data/data.csv"

	// DefaultOrdering keeps members in generation order within a row.
	DefaultOrdering = OrderingInsertion
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Ordering names accepted by [Options.Ordering].
const (
	OrderingInsertion   = "insertion"
	OrderingBarycentric = "barycentric"
)

// ValidFormats is the set of supported output formats, in output order.
var ValidFormats = []string{FormatPNG, FormatSVG, FormatDOT, FormatJSON}

// ValidOrderings is the set of supported row orderings.
var ValidOrderings = []string{OrderingInsertion, OrderingBarycentric}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the roster file (.csv, .xlsx or .json).
	Input string
	// IconsDir is joined to relative icon names.
	IconsDir string

	// Ordering names the row orderer. Ignored when Orderer is set.
	Ordering string
	// Orderer overrides Ordering.
	Orderer layout.Orderer

	// Style controls rendering. The zero value means config.Default().
	Style config.Style
	// Formats lists the artifacts to produce. Empty means PNG only.
	Formats []string
	// IconLoader overrides how icons are read from disk.
	IconLoader chart.IconLoader
	// Detailed adds member id and generation to svg and dot labels.
	Detailed bool

	// Logger receives stage progress. Nil means discard.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Roster is the loaded member list.
	Roster *roster.Roster

	// Graph is the hierarchy rebuilt in generation order.
	Graph *dag.DAG

	// Layering holds each member's generation.
	Layering *transform.Layering

	// Layout holds the final row order and coordinates.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Icons reports every icon load attempt of the PNG render.
	Icons []chart.IconResult

	// Stats contains timing and size information.
	Stats Stats
}

// IconFailures returns the icons that could not be drawn.
func (r *Result) IconFailures() []chart.IconResult {
	var failed []chart.IconResult
	for _, ic := range r.Icons {
		if !ic.OK() {
			failed = append(failed, ic)
		}
	}
	return failed
}

// Stats contains pipeline execution statistics.
type Stats struct {
	MemberCount int
	EdgeCount   int
	Skipped     int
	Duplicates  int
	Generations int
	Crossings   int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOrdering checks that an ordering name is valid.
func ValidateOrdering(name string) error {
	if !slices.Contains(ValidOrderings, name) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid ordering: %q (must be one of: %s)",
			name, strings.Join(ValidOrderings, ", "))
	}
	return nil
}

// ParseFormats splits a comma separated list such as "png,svg", dropping
// blanks and duplicates and lowercasing each entry.
func ParseFormats(list string) []string {
	var out []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		o.Input = DefaultInput
	}
	if o.IconsDir == "" {
		o.IconsDir = roster.DefaultIconsDir
	}
	if o.Ordering == "" {
		o.Ordering = DefaultOrdering
	}
	if o.Orderer == nil {
		if err := ValidateOrdering(o.Ordering); err != nil {
			return err
		}
	}
	if o.Style == (config.Style{}) {
		o.Style = config.Default()
	}
	if err := o.Style.Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RosterOptions returns the options for loading the roster.
func (o *Options) RosterOptions() roster.Options {
	return roster.Options{IconsDir: o.IconsDir}
}

// ResolveOrderer returns the configured row orderer.
func (o *Options) ResolveOrderer() layout.Orderer {
	if o.Orderer != nil {
		return o.Orderer
	}
	if o.Ordering == OrderingBarycentric {
		return layout.Barycentric{}
	}
	return layout.Insertion{}
}

// String summarizes the options for debug logs.
func (o *Options) String() string {
	return fmt.Sprintf("input=%s icons=%s ordering=%s formats=%s dpi=%d",
		o.Input, o.IconsDir, o.Ordering, strings.Join(o.Formats, ","), o.Style.DPI)
}
