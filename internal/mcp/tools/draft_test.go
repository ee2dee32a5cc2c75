package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/commitdraft/internal/diff"
	"github.com/roivaz/commitdraft/internal/drafter"
	"github.com/roivaz/commitdraft/internal/logging"
)

const sampleDiff = "diff --git a/server.js b/server.js\n+function handleRequest(req, res) {\n"

func newDrafter() *drafter.Drafter {
	return drafter.New(drafter.Config{Logger: logging.New(logr.Discard()), TokenEstimator: diff.ApproxTokens})
}

func request(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("expected content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestDraftCommitMessageHandler(t *testing.T) {
	h := &DraftCommitMessageHandler{Service: newDrafter()}
	res, err := h.ToolAdapter(context.Background(), request(map[string]any{
		"diff":        sampleDiff,
		"last_prompt": "Fix the retry logic for network calls",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Fix the retry logic\n\n- Implemented handleRequest function"
	if got := resultText(t, res); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDraftCommitMessageHandlerRequiresDiff(t *testing.T) {
	h := &DraftCommitMessageHandler{Service: newDrafter()}
	res, err := h.ToolAdapter(context.Background(), request(map[string]any{"diff": "  "}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error result")
	}
}

func TestAnalyzeDiffHandler(t *testing.T) {
	h := &AnalyzeDiffHandler{Service: newDrafter()}
	res, err := h.ToolAdapter(context.Background(), request(map[string]any{"diff": sampleDiff}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var analysis drafter.Analysis
	if err := json.Unmarshal([]byte(resultText(t, res)), &analysis); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(analysis.Facts.FunctionsAdded) != 1 || analysis.Facts.FunctionsAdded[0] != "handleRequest" {
		t.Fatalf("unexpected facts %+v", analysis.Facts)
	}
	if analysis.Stats.FilesTotal != 1 {
		t.Fatalf("unexpected stats %+v", analysis.Stats)
	}
}

func TestAnalyzeDiffHandlerRequiresDiff(t *testing.T) {
	h := &AnalyzeDiffHandler{Service: newDrafter()}
	res, err := h.ToolAdapter(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error result")
	}
}
