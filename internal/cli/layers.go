package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tougshire/orgchart/pkg/dag/transform"
	"github.com/tougshire/orgchart/pkg/pipeline"
	"github.com/tougshire/orgchart/pkg/roster"
)

// layersCommand creates the command that prints members grouped by
// generation without rendering anything.
func (c *CLI) layersCommand() *cobra.Command {
	var iconsDir string

	cmd := &cobra.Command{
		Use:   "layers [input]",
		Short: "Print members grouped by generation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := pipeline.DefaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return c.runLayers(cmd.Context(), input, iconsDir)
		},
	}

	cmd.Flags().StringVar(&iconsDir, "icons", roster.DefaultIconsDir, "directory containing member icons")

	return cmd
}

func (c *CLI) runLayers(ctx context.Context, input, iconsDir string) error {
	opts := pipeline.Options{Input: input, IconsDir: iconsDir, Logger: c.Logger}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	ros, g, err := pipeline.Load(opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	l, err := pipeline.Layer(g)
	if err != nil {
		return fmt.Errorf("layer %s: %w", input, err)
	}

	fmt.Fprintln(c.Out, StyleTitle.Render("Generations"))
	fmt.Fprintln(c.Out, generationTable(ros, l))
	printStats(c.Out, ros.Len(), g.EdgeCount(), l.Depth())
	printNextStep(c.Out, "Render", appName+" "+input)
	return nil
}

// generationTable lays out one table row per generation.
func generationTable(ros *roster.Roster, l *transform.Layering) string {
	rows := make([][]string, 0, len(l.Layers))
	for i, layer := range l.Layers {
		names := make([]string, len(layer))
		for j, id := range layer {
			names[j] = id
			if m, ok := ros.Get(id); ok && m.DisplayName() != id {
				names[j] = m.DisplayName() + " (" + id + ")"
			}
		}
		rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(len(layer)), strings.Join(names, ", ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Gen", "Members", "Names").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col < 2:
				return StyleNumber
			default:
				return StyleValue
			}
		})
	return t.Render()
}
