package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ToolDraftCommitMessage = "draft_commit_message"
	ToolAnalyzeDiff        = "analyze_diff"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func toolDefinitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		ToolDraftCommitMessage: mcp.NewTool(ToolDraftCommitMessage,
			mcp.WithDescription("Draft a commit message (title plus bullet points) from a unified diff and optional session context, using heuristics only."),
			mcp.WithString("diff",
				mcp.Required(),
				mcp.Description("Unified diff text, e.g. the output of `git diff`"),
			),
			mcp.WithString("last_prompt",
				mcp.Description("Optional: the last instruction given in the session"),
			),
			mcp.WithString("task_description",
				mcp.Description("Optional: description of the overall task"),
			),
			mcp.WithString("work_summary",
				mcp.Description("Optional: summary of the work performed"),
			),
		),
		ToolAnalyzeDiff: mcp.NewTool(ToolAnalyzeDiff,
			mcp.WithDescription("Extract change facts from a unified diff: functions and classes added or modified, imports, implementation patterns, touched files and size stats."),
			mcp.WithString("diff",
				mcp.Required(),
				mcp.Description("Unified diff text"),
			),
		),
	}
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"commitdraft",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	definitions := toolDefinitions()
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := definitions[name]
		if !ok {
			continue
		}
		adapter := adapter
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout until EOF.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
