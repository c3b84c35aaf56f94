package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tougshire/orgchart/pkg/dag"
	"github.com/tougshire/orgchart/pkg/observability"
)

// Runner executes the pipeline and logs each stage.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results, so one Runner can serve any number of runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layer → layout → render pipeline.
// Nothing is written to disk; use [Runner.Save] for that.
//
// Every icon that fails to load is logged once as a warning and skipped.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.Logger.Debug("pipeline options", "opts", opts.String())

	result := &Result{}
	hooks := observability.Pipeline()

	// Stage 1: Load
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.Input)
	ros, g, err := Load(opts)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Input, 0, time.Since(loadStart), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, opts.Input, ros.Len(), time.Since(loadStart), nil)
	result.Roster = ros
	result.Stats.MemberCount = ros.Len()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.Skipped = ros.Skipped
	result.Stats.Duplicates = ros.Duplicates
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded roster",
		"members", ros.Len(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)
	if ros.Skipped > 0 {
		r.Logger.Debug("skipped rows without key", "rows", ros.Skipped)
	}
	if ros.Duplicates > 0 {
		r.Logger.Warn("duplicate member keys, later rows win", "duplicates", ros.Duplicates)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layer + Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, ros.Len())
	l, err := Layer(g)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(layoutStart), err)
		return nil, err
	}
	result.Layering = l
	result.Graph = l.Graph
	result.Layout = ComputeLayout(l, opts.ResolveOrderer())
	result.Stats.Generations = l.Depth()
	result.Stats.Crossings = dag.CountCrossings(l.Graph, result.Layout.Rows)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, l.Depth(), result.Stats.LayoutTime, nil)

	r.Logger.Info("computed layout",
		"generations", l.Depth(),
		"crossings", result.Stats.Crossings,
		"ordering", opts.Ordering,
		"duration", result.Stats.LayoutTime)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, icons, err := Render(ctx, result, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Icons = icons
	result.Stats.RenderTime = time.Since(renderStart)

	iconHooks := observability.Icons()
	for _, ic := range icons {
		if ic.OK() {
			iconHooks.OnIconLoaded(ctx, ic.MemberID)
			continue
		}
		iconHooks.OnIconFailed(ctx, ic.MemberID, ic.Path, ic.Err)
		r.Logger.Warn("failed to load icon", "member", ic.MemberID, "path", ic.Path, "err", ic.Err)
	}
	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Save asks dest for a path and writes every artifact of res there. It
// returns the written paths in format order. When dest reports
// [ErrCancelled], nothing is written and Save returns (nil, nil).
func (r *Runner) Save(ctx context.Context, res *Result, dest DestinationResolver) ([]string, error) {
	paths, err := Save(ctx, res.Artifacts, dest, SuggestedName(time.Now(), primaryFormat(res.Artifacts)))
	if stderrors.Is(err, ErrCancelled) {
		r.Logger.Info("save cancelled, nothing written")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		r.Logger.Debug("wrote file", "path", p)
	}
	return paths, nil
}
