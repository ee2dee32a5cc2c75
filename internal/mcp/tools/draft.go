package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/commitdraft/internal/drafter"
	"github.com/roivaz/commitdraft/internal/session"
	"github.com/roivaz/commitdraft/internal/synth"
)

type DraftService interface {
	Draft(diffText string, ctx session.Context) synth.CommitMessage
}

type AnalyzeService interface {
	Analyze(diffText string) drafter.Analysis
}

type DraftCommitMessageHandler struct {
	Service DraftService
}

func (h *DraftCommitMessageHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	diffText := stringArgument(req, "diff")
	if strings.TrimSpace(diffText) == "" {
		return mcp.NewToolResultError("diff parameter is required"), nil
	}
	sessionCtx := session.Context{
		LastPrompt:      stringArgument(req, "last_prompt"),
		TaskDescription: stringArgument(req, "task_description"),
		WorkSummary:     stringArgument(req, "work_summary"),
	}
	msg := h.Service.Draft(diffText, sessionCtx)
	return mcp.NewToolResultText(msg.String()), nil
}

type AnalyzeDiffHandler struct {
	Service AnalyzeService
}

func (h *AnalyzeDiffHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	diffText := stringArgument(req, "diff")
	if strings.TrimSpace(diffText) == "" {
		return mcp.NewToolResultError("diff parameter is required"), nil
	}
	return mcp.NewToolResultText(string(mustMarshal(h.Service.Analyze(diffText)))), nil
}
