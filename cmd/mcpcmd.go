package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/internal/engine"
	"github.com/scatterbrain-dev/scatterbrain/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Run the MCP server over stdio, one tool per plan-tree operation plus
the "guide" prompt. Each invocation owns its own in-memory plan registry —
run "scatterbrain serve" instead if the plans need to be reachable over
HTTP/SSE too, or persist/share state across processes.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	log := slog.Default()
	eng := engine.New(log)

	server, err := mcpserver.New(eng, version, log)
	if err != nil {
		return fmt.Errorf("build mcp server: %w", err)
	}

	return mcpserver.Run(cmd.Context(), server)
}
