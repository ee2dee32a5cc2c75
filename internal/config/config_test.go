package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resetEnv clears every variable Init may consult for the context keys.
func resetEnv(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
	for _, env := range []string{"WORKSPACE", "CONTEXT_FILE", "LAST_PROMPT", "TASK_DESCRIPTION", "WORK_SUMMARY", "CONVERSATION_SUMMARY", "COMMIT_MODE", "MAX_BULLETS", "SIMILARITY_THRESHOLD", "SKIP_GENERATED", "GIT_TIMEOUT"} {
		t.Setenv(env, "")
	}
}

func TestDefaults(t *testing.T) {
	resetEnv(t)
	Init(nil)

	if got := Workspace(); got != "." {
		t.Fatalf("expected workspace %q, got %q", ".", got)
	}
	if got := ContextFile(); got != ".claude-context.json" {
		t.Fatalf("unexpected context file %q", got)
	}
	if CommitMode() != "stage" || MaxBullets() != 5 || SimilarityThreshold() != 2 || SkipGenerated() {
		t.Fatalf("unexpected policy defaults: mode=%q bullets=%d threshold=%d skip=%v",
			CommitMode(), MaxBullets(), SimilarityThreshold(), SkipGenerated())
	}
	if GitTimeout() != 30*time.Second {
		t.Fatalf("unexpected git timeout %s", GitTimeout())
	}
	if LastPrompt() != "" || TaskDescription() != "" || WorkSummary() != "" || ConversationSummary() != "" {
		t.Fatalf("context fallbacks should be empty without env")
	}
}

func TestEnvBindings(t *testing.T) {
	resetEnv(t)
	t.Setenv("CLAUDE_WORKSPACE", "/tmp/ws")
	t.Setenv("CLAUDE_LAST_PROMPT", "fix the parser for csv input")
	t.Setenv("CLAUDE_TASK_DESCRIPTION", "parser work")
	t.Setenv("CLAUDE_WORK_SUMMARY", "rewrote the tokenizer")
	t.Setenv("CLAUDE_CONVERSATION_SUMMARY", "talked about quoting")
	Init(nil)

	if got := Workspace(); got != "/tmp/ws" {
		t.Fatalf("expected workspace from CLAUDE_WORKSPACE, got %q", got)
	}
	if got := LastPrompt(); got != "fix the parser for csv input" {
		t.Fatalf("unexpected last prompt %q", got)
	}
	if got := TaskDescription(); got != "parser work" {
		t.Fatalf("unexpected task description %q", got)
	}
	if got := WorkSummary(); got != "rewrote the tokenizer" {
		t.Fatalf("unexpected work summary %q", got)
	}
	if got := ConversationSummary(); got != "talked about quoting" {
		t.Fatalf("unexpected conversation summary %q", got)
	}
}

func TestFlagsOverrideDefaults(t *testing.T) {
	resetEnv(t)
	root := &cobra.Command{Use: "test"}
	root.PersistentFlags().String("commit-mode", "stage", "")
	root.PersistentFlags().Int("max-bullets", 5, "")
	Init(root)

	if err := root.PersistentFlags().Parse([]string{"--commit-mode", "COMMIT", "--max-bullets", "3"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if CommitMode() != "commit" {
		t.Fatalf("expected lowercased commit mode, got %q", CommitMode())
	}
	if MaxBullets() != 3 {
		t.Fatalf("expected max bullets 3, got %d", MaxBullets())
	}
}

func TestGitTimeoutFallsBackOnInvalidValue(t *testing.T) {
	resetEnv(t)
	Init(nil)
	viper.Set(KeyGitTimeout, "soon")
	if GitTimeout() != 30*time.Second {
		t.Fatalf("expected fallback timeout, got %s", GitTimeout())
	}
	viper.Set(KeyGitTimeout, "5s")
	if GitTimeout() != 5*time.Second {
		t.Fatalf("expected 5s, got %s", GitTimeout())
	}
}
