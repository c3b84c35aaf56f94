package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for orgchart.

Completions cover the chart command and its subcommands (layers,
completion), roster and style file arguments, and the values of
--format (png, svg, dot, json) and --ordering (insertion, barycentric).

Load them for the current shell:

  bash:        source <(orgchart completion bash)
  zsh:         source <(orgchart completion zsh)
  fish:        orgchart completion fish | source
  powershell:  orgchart completion powershell | Out-String | Invoke-Expression

To load them in every session, write the script to your shell's completion
directory instead, e.g. orgchart completion zsh > "${fpath[1]}/_orgchart".
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.Out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.Out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.Out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.Out)
			}
			return nil
		},
	}

	return cmd
}

// completeList completes a flag value from a fixed list.
func completeList(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
