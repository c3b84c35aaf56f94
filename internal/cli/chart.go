package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tougshire/orgchart/pkg/config"
	"github.com/tougshire/orgchart/pkg/pipeline"
	"github.com/tougshire/orgchart/pkg/roster"
)

// chartOpts holds the command-line flags for rendering a chart.
type chartOpts struct {
	output     string // output file, or base path for several formats
	formats    string // comma-separated output formats
	iconsDir   string // directory icon names are resolved against
	configPath string // optional TOML or YAML style file
	ordering   string // row ordering: insertion or barycentric
	dpi        int    // overrides the configured dpi when non-zero
	detailed   bool   // show member id and generation in svg/dot labels
}

// chartCommand creates the command that runs the full pipeline. It is
// used as the root command.
//
// The save location is taken from --output. Without it, the user is asked
// for a path when attached to a terminal; otherwise the chart is written
// to a time-stamped file in the working directory.
func (c *CLI) chartCommand() *cobra.Command {
	opts := chartOpts{
		formats:  pipeline.FormatPNG,
		iconsDir: roster.DefaultIconsDir,
		ordering: pipeline.DefaultOrdering,
	}

	cmd := &cobra.Command{
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := pipeline.DefaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return c.runChart(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output format(s): "+strings.Join(pipeline.ValidFormats, ", ")+" (comma-separated)")
	cmd.Flags().StringVar(&opts.iconsDir, "icons", opts.iconsDir, "directory containing member icons")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "style file (.toml, .yaml)")
	cmd.Flags().StringVar(&opts.ordering, "ordering", opts.ordering, "row ordering: "+strings.Join(pipeline.ValidOrderings, ", "))
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "output resolution (overrides the style)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show member id and generation (svg, dot)")

	_ = cmd.RegisterFlagCompletionFunc("format", completeList(pipeline.ValidFormats))
	_ = cmd.RegisterFlagCompletionFunc("ordering", completeList(pipeline.ValidOrderings))
	_ = cmd.MarkFlagFilename("config", "toml", "yaml", "yml")
	_ = cmd.MarkFlagDirname("icons")

	return cmd
}

// runChart renders the chart for input and saves it.
func (c *CLI) runChart(ctx context.Context, input string, opts chartOpts) error {
	style, err := loadStyle(opts.configPath, opts.dpi)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Input:    input,
		IconsDir: opts.iconsDir,
		Ordering: opts.ordering,
		Style:    style,
		Formats:  pipeline.ParseFormats(opts.formats),
		Detailed: opts.detailed,
		Logger:   c.Logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner := c.newRunner()
	prog := newProgress(c.Logger)

	res, err := c.withSpinner(ctx, "Drawing chart...", func() (*pipeline.Result, error) {
		return runner.Execute(ctx, popts)
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Rendered chart of %d members", res.Stats.MemberCount))

	paths, err := runner.Save(ctx, res, c.destination(opts.output))
	if err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	if paths == nil {
		printInfo(c.Out, "Save cancelled, nothing written")
		return nil
	}

	printSuccess(c.Out, "Chart saved")
	for _, p := range paths {
		printFile(c.Out, p)
	}
	printStats(c.Out, res.Stats.MemberCount, res.Stats.EdgeCount, res.Stats.Generations)
	if failures := res.IconFailures(); len(failures) > 0 {
		printWarning(c.Out, "%d icon(s) could not be loaded", len(failures))
		for _, f := range failures {
			printDetail(c.Out, "%s: %s", f.MemberID, f.Path)
		}
	}
	return nil
}

// loadStyle layers defaults, .env, the style file, the environment and
// the --dpi flag, in that order.
func loadStyle(path string, dpi int) (config.Style, error) {
	if _, err := config.LoadDotEnv(envFile); err != nil {
		return config.Style{}, err
	}
	style, err := config.Load(path)
	if err != nil {
		return style, err
	}
	if dpi != 0 {
		style.DPI = dpi
		if err := style.Validate(); err != nil {
			return style, err
		}
	}
	return style, nil
}

// destination picks how the save path is chosen.
func (c *CLI) destination(output string) pipeline.DestinationResolver {
	switch {
	case output != "":
		return pipeline.FixedPath(output)
	case c.Interactive:
		return &promptResolver{in: c.In, out: c.PromptOut}
	default:
		return pipeline.ResolverFunc(func(_ context.Context, suggested string) (string, error) {
			return suggested, nil
		})
	}
}

// withSpinner runs fn with a spinner on c.Err when attached to a terminal.
// The logger writes through the spinner meanwhile, so log lines and frames
// stay on separate lines.
func (c *CLI) withSpinner(ctx context.Context, message string, fn func() (*pipeline.Result, error)) (*pipeline.Result, error) {
	if !c.Interactive {
		return fn()
	}
	spinner := newSpinner(ctx, c.Err, message)
	c.Logger.SetOutput(spinner)
	spinner.Start()

	res, err := fn()

	if err != nil {
		spinner.StopWithError("Chart failed")
	} else {
		spinner.Stop()
	}
	c.Logger.SetOutput(c.Err)
	return res, err
}
