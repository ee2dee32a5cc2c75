package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/commitdraft/internal/drafter"
	"github.com/roivaz/commitdraft/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig exposes d through every tool.
func DefaultConfig(d *drafter.Drafter) Config {
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			ToolDraftCommitMessage: &tools.DraftCommitMessageHandler{Service: d},
			ToolAnalyzeDiff:        &tools.AnalyzeDiffHandler{Service: d},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
