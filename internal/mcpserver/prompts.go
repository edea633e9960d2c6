package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scatterbrain-dev/scatterbrain/internal/guide"
)

// registerPrompts registers the "guide" prompt, SPEC_FULL.md's static
// usage guide surfaced over MCP the way mcp/prompts.go's
// taskwing-usage-guide prompt works: no arguments, one text message.
func registerPrompts(server *mcpsdk.Server) error {
	server.AddPrompt(&mcpsdk.Prompt{
		Name:        "guide",
		Description: "Usage guide: getting started, the recommended workflow, abstraction levels, and best practices.",
	}, func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
		return &mcpsdk.GetPromptResult{
			Description: "scatterbrain usage guide",
			Messages: []*mcpsdk.PromptMessage{
				{
					Role:    "user",
					Content: &mcpsdk.TextContent{Text: guide.Text()},
				},
			},
		}, nil
	})
	return nil
}
