// Package cli implements the orgchart command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tougshire/orgchart/pkg/buildinfo"
	"github.com/tougshire/orgchart/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "orgchart"

	// envFile is loaded from the working directory before the environment
	// is applied to the style.
	envFile = ".env"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives user-facing status lines.
	Out io.Writer
	// Err is the stream the logger and the spinner share.
	Err io.Writer
	// In and PromptOut drive the interactive save prompt.
	In        io.Reader
	PromptOut io.Writer
	// Interactive reports whether the save prompt may be shown. It is
	// decided from the terminal state of stdin and stdout by New.
	Interactive bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		Out:         os.Stdout,
		Err:         w,
		In:          os.Stdin,
		PromptOut:   os.Stdout,
		Interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders a chart.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.chartCommand()
	root.Use = appName + " [input]"
	root.Short = "Orgchart draws an organization chart from a member roster"
	root.Long = `Orgchart reads a roster of members (CSV, XLSX or JSON) with a "reports to"
column, arranges them by reporting generation and renders the chart as a PNG.
Graphviz SVG/DOT and a JSON export are available with --format.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layersCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
