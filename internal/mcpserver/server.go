// Package mcpserver exposes the engine over the Model Context Protocol:
// one tool per spec.md §6 operation, plus a "guide" prompt and a
// level-guidance tool (SPEC_FULL.md's supplemented features). Grounded on
// the teacher's mcp/core_tools.go (the mcpsdk.AddTool(server, &mcpsdk.Tool{...},
// handler) registration shape) and cmd/mcp_server.go (server construction
// and the stdio transport run loop), re-pointed at scatterbrain's plan
// tree instead of TaskWing's flat task CRUD.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scatterbrain-dev/scatterbrain/internal/engine"
)

// New builds an MCP server wired to eng, with every §6 tool and the
// "guide" prompt registered.
func New(eng *engine.Engine, version string, log *slog.Logger) (*mcpsdk.Server, error) {
	if log == nil {
		log = slog.Default()
	}
	impl := &mcpsdk.Implementation{Name: "scatterbrain", Version: version}
	server := mcpsdk.NewServer(impl, &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			log.Info("mcp client connected")
		},
	})

	if err := registerTools(server, eng); err != nil {
		return nil, fmt.Errorf("register mcp tools: %w", err)
	}
	if err := registerPrompts(server); err != nil {
		return nil, fmt.Errorf("register mcp prompts: %w", err)
	}

	return server, nil
}

// Run serves the MCP protocol over stdin/stdout until ctx is canceled or
// the client disconnects.
func Run(ctx context.Context, server *mcpsdk.Server) error {
	return server.Run(ctx, mcpsdk.NewStdioTransport())
}
