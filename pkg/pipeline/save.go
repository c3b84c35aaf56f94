package pipeline

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/tougshire/orgchart/pkg/errors"
)

// ErrCancelled is returned by a DestinationResolver when the user declines
// to choose a destination.
var ErrCancelled = stderrors.New("save cancelled")

// DestinationResolver chooses where the chart is saved. suggested is a
// default file name the resolver may offer.
type DestinationResolver interface {
	Resolve(ctx context.Context, suggested string) (string, error)
}

// ResolverFunc adapts a function to DestinationResolver.
type ResolverFunc func(ctx context.Context, suggested string) (string, error)

// Resolve calls f(ctx, suggested).
func (f ResolverFunc) Resolve(ctx context.Context, suggested string) (string, error) {
	return f(ctx, suggested)
}

// FixedPath always resolves to the same path.
type FixedPath string

// Resolve returns p.
func (p FixedPath) Resolve(context.Context, string) (string, error) {
	return string(p), nil
}

// SuggestedName returns a time-stamped default file name such as
// org_chart_20240102150405.png.
func SuggestedName(now time.Time, format string) string {
	return "org_chart_" + now.Format("20060102150405") + "." + format
}

// ArtifactPaths maps each format to its file, all siblings of base. The
// extension of base is dropped when it names one of the formats, so
// "chart.png" with png and svg yields chart.png and chart.svg.
func ArtifactPaths(base string, formats []string) map[string]string {
	stem := base
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(base)), "."); slices.Contains(ValidFormats, ext) {
		if slices.Contains(formats, ext) && len(formats) == 1 {
			return map[string]string{ext: base}
		}
		stem = strings.TrimSuffix(base, filepath.Ext(base))
	}
	paths := make(map[string]string, len(formats))
	for _, f := range formats {
		paths[f] = stem + "." + f
	}
	return paths
}

// Save resolves a destination and writes artifacts there. Files are
// written in the order of ValidFormats. When the resolver is cancelled
// nothing is written and ErrCancelled is returned.
func Save(ctx context.Context, artifacts map[string][]byte, dest DestinationResolver, suggested string) ([]string, error) {
	base, err := dest.Resolve(ctx, suggested)
	if err != nil {
		return nil, err
	}
	if err := errors.ValidateOutputPath(base); err != nil {
		return nil, err
	}

	formats := orderedFormats(artifacts)
	paths := ArtifactPaths(base, formats)
	written := make([]string, 0, len(formats))
	for _, f := range formats {
		p := paths[f]
		if err := os.WriteFile(p, artifacts[f], 0o644); err != nil {
			return written, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", p)
		}
		written = append(written, p)
	}
	return written, nil
}

func orderedFormats(artifacts map[string][]byte) []string {
	var formats []string
	for _, f := range ValidFormats {
		if _, ok := artifacts[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}

func primaryFormat(artifacts map[string][]byte) string {
	if formats := orderedFormats(artifacts); len(formats) > 0 {
		return formats[0]
	}
	return FormatPNG
}
