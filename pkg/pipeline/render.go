package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tougshire/orgchart/pkg/errors"
	orgio "github.com/tougshire/orgchart/pkg/io"
	"github.com/tougshire/orgchart/pkg/render/chart"
	"github.com/tougshire/orgchart/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats from a result
// whose Roster, Graph, Layering and Layout are set. Icon outcomes of the PNG
// render are returned alongside the artifacts.
func Render(ctx context.Context, res *Result, opts Options) (map[string][]byte, []chart.IconResult, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	var icons []chart.IconResult

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatPNG:
			data, icons, err = renderPNG(res, opts)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, toDOT(res, opts))
		case FormatDOT:
			data = []byte(toDOT(res, opts))
		case FormatJSON:
			var buf bytes.Buffer
			err = orgio.WriteJSON(orgio.Chart{
				Roster:      res.Roster,
				Graph:       res.Graph,
				Generations: res.Layering.Generations,
				Layout:      res.Layout,
			}, &buf)
			data = buf.Bytes()
		default:
			return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, icons, nil
}

func renderPNG(res *Result, opts Options) ([]byte, []chart.IconResult, error) {
	out, err := chart.Render(chart.Input{
		Graph:  res.Graph,
		Roster: res.Roster,
		Layout: res.Layout,
	}, opts.Style, opts.IconLoader)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if err := chart.EncodePNG(&buf, out.Image, out.DPI); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), out.Icons, nil
}

func toDOT(res *Result, opts Options) string {
	return nodelink.ToDOT(res.Graph, nodelink.Options{
		Roster:    res.Roster,
		Rows:      res.Layout.Rows,
		FillColor: opts.Style.MemberNameFacecolor,
		Detailed:  opts.Detailed,
	})
}
