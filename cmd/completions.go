package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd wraps cobra's built-in shell-completion generator — ambient
// CLI tooling (spec.md's REDESIGN FLAGS note that this is ordinary tooling,
// not core engine behavior), not something the teacher or pack had to
// hand-roll.
var completionCmd = &cobra.Command{
	Use:                   "completions [bash|zsh|fish|powershell]",
	Short:                 "Generate a shell completion script",
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
