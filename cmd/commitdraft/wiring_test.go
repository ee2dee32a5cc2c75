package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"

	"github.com/roivaz/commitdraft/internal/config"
	"github.com/roivaz/commitdraft/internal/logging"
)

func initConfig(t *testing.T, env map[string]string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	for _, key := range []string{
		"CLAUDE_WORKSPACE", "CLAUDE_LAST_PROMPT", "CLAUDE_TASK_DESCRIPTION",
		"CLAUDE_WORK_SUMMARY", "CLAUDE_CONVERSATION_SUMMARY",
		"WORKSPACE", "CONTEXT_FILE", "COMMIT_MODE", "SIGNALS_FILE",
	} {
		t.Setenv(key, env[key])
	}
	config.Init(nil)
}

func TestNormalizeFormat(t *testing.T) {
	for _, in := range []string{"json", " YAML ", "text"} {
		if _, err := normalizeFormat(in); err != nil {
			t.Fatalf("normalizeFormat(%q) error: %v", in, err)
		}
	}
	if _, err := normalizeFormat("xml"); err == nil {
		t.Fatalf("expected error for xml")
	}
}

func TestReadDiffInput(t *testing.T) {
	got, err := readDiffInput("-", strings.NewReader("diff --git a/x b/x\n"))
	if err != nil || got != "diff --git a/x b/x\n" {
		t.Fatalf("stdin read = %q, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "change.diff")
	if err := os.WriteFile(path, []byte("+line\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = readDiffInput(path, nil)
	if err != nil || got != "+line\n" {
		t.Fatalf("file read = %q, %v", got, err)
	}

	if _, err := readDiffInput(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteReport(t *testing.T) {
	report := struct {
		Title string `json:"title"`
	}{Title: "Add parser functionality"}

	var buf bytes.Buffer
	if err := writeReport(&buf, "json", report); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"title": "Add parser functionality"`) {
		t.Fatalf("json output = %q", buf.String())
	}

	buf.Reset()
	if err := writeReport(&buf, "yaml", report); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "title: Add parser functionality" {
		t.Fatalf("yaml output = %q", buf.String())
	}
}

func TestContextReaderUsesWorkspaceFromEnv(t *testing.T) {
	ws := t.TempDir()
	initConfig(t, map[string]string{
		"CLAUDE_WORKSPACE":   ws,
		"CLAUDE_LAST_PROMPT": "fix the parser for csv input",
	})

	reader := newContextReader(logging.New(logr.Discard()))
	if want := filepath.Join(ws, ".claude-context.json"); reader.Path() != want {
		t.Fatalf("expected context path %q, got %q", want, reader.Path())
	}
	if got := reader.Read(); got.LastPrompt != "fix the parser for csv input" {
		t.Fatalf("expected env fallback context, got %+v", got)
	}

	if err := os.WriteFile(reader.Path(), []byte(`{"last_prompt":"from file"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := reader.Read(); got.LastPrompt != "from file" {
		t.Fatalf("expected file context, got %+v", got)
	}
}

func TestContextReaderDefaultsToCurrentDirectory(t *testing.T) {
	initConfig(t, nil)
	reader := newContextReader(logging.New(logr.Discard()))
	if reader.Path() != ".claude-context.json" {
		t.Fatalf("expected context file in current directory, got %q", reader.Path())
	}
}

func TestRunHookSkipsOnInvalidConfiguration(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown commit mode":  {"COMMIT_MODE": "push"},
		"missing signals file": {"SIGNALS_FILE": filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			initConfig(t, env)
			var out bytes.Buffer
			if err := runHook(context.Background(), &out, logging.New(logr.Discard())); err != nil {
				t.Fatalf("hook should not fail on bad configuration: %v", err)
			}
			if !strings.Contains(out.String(), hookSetupNotice) {
				t.Fatalf("expected skip notice, got %q", out.String())
			}
		})
	}
}
