// Package cmd is scatterbrain's cobra CLI: a server frontend ("serve"),
// an MCP frontend ("mcp"), a typed apiclient.Client-backed set of plan/
// task/move/lease/notes subcommands, an interactive shell, and a live
// SSE-driven watcher — grounded on the teacher's cmd/root.go persistent-
// flag/telemetry-hook wiring, with TaskWing's task-store subcommands
// replaced by scatterbrain's plan-tree verbs.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scatterbrain-dev/scatterbrain/internal/apiclient"
	"github.com/scatterbrain-dev/scatterbrain/internal/logger"
	"github.com/scatterbrain-dev/scatterbrain/internal/telemetry"
)

// version is set via ldflags at build time:
// -ldflags "-X github.com/scatterbrain-dev/scatterbrain/cmd.version=1.0.0"
var version = "dev"

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "scatterbrain",
	Short: "scatterbrain - hierarchical task plans for AI agents and humans",
	Long: `scatterbrain keeps a hierarchical plan for a piece of work: a tree of
tasks pinned to abstraction levels, a cursor, and a distilled context
returned with every operation. Reachable over HTTP, MCP, and this CLI.`,
	PersistentPreRunE:  initCLI,
	PersistentPostRunE: closeCLI,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Base URL of a running scatterbrain server (default http://127.0.0.1:3000)")
	rootCmd.PersistentFlags().Int("plan", -1, "Default plan id for commands that take one (-1 means unset)")
	rootCmd.PersistentFlags().Bool("json", false, "Print raw JSON instead of styled output")
	rootCmd.PersistentFlags().Bool("no-telemetry", false, "Disable telemetry for this command")
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-format", "auto", "auto, text, or json")

	_ = viper.BindPFlag("cli.server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("cli.plan", rootCmd.PersistentFlags().Lookup("plan"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("no-telemetry", rootCmd.PersistentFlags().Lookup("no-telemetry"))

	rootCmd.SuggestionsMinimumDistance = 2
}

// Execute adds all child commands to rootCmd and runs it. Called once by
// cmd/scatterbrain/main.go.
func Execute() {
	logger.SetVersion(version)
	defer logger.HandlePanic()

	err := rootCmd.Execute()
	telemetry.Shutdown()

	if err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			fmt.Fprintln(os.Stderr, "Hint: run 'scatterbrain --help' to see every command.")
		}
		os.Exit(1)
	}
}

// initCLI installs the process logger and telemetry client before any
// subcommand runs, mirroring the teacher's PersistentPreRunE split between
// initTelemetry and the command body.
func initCLI(cmd *cobra.Command, args []string) error {
	commandStartTime = time.Now()
	logger.SetCommand(strings.Join(os.Args[1:], " "))
	logger.Setup(viper.GetString("log.level"), viper.GetString("log.format"), os.Stderr)

	disabled := viper.GetBool("no-telemetry") || os.Getenv("CI") != ""
	if err := telemetry.Init(version, disabled); err != nil {
		return nil // telemetry never blocks a command
	}
	return nil
}

func closeCLI(cmd *cobra.Command, args []string) error {
	telemetry.Track(telemetry.EventCLICommand, telemetry.Properties{
		"command":     cmd.Name(),
		"duration_ms": time.Since(commandStartTime).Milliseconds(),
	})
	return nil
}

// apiClient builds an apiclient.Client against the --server base URL, or
// apiclient.DefaultBaseURL when the flag is unset.
func apiClient() *apiclient.Client {
	return apiclient.New(viper.GetString("cli.server"), nil)
}

// planID resolves the --plan flag, then the first positional arg, then the
// SCATTERBRAIN_PLAN_ID environment variable.
func planID(args []string) (int, error) {
	if p := viper.GetInt("cli.plan"); p >= 0 {
		return p, nil
	}
	if len(args) == 0 {
		if env := os.Getenv("SCATTERBRAIN_PLAN_ID"); env != "" {
			var id int
			if _, err := fmt.Sscanf(env, "%d", &id); err != nil {
				return 0, fmt.Errorf("invalid SCATTERBRAIN_PLAN_ID %q: %w", env, err)
			}
			return id, nil
		}
		return 0, fmt.Errorf("a plan id is required: pass --plan, the first argument, or set SCATTERBRAIN_PLAN_ID")
	}
	var id int
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid plan id %q: %w", args[0], err)
	}
	return id, nil
}

func jsonOutput() bool {
	return viper.GetBool("json")
}
