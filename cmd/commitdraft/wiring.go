package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/roivaz/commitdraft/internal/config"
	"github.com/roivaz/commitdraft/internal/drafter"
	"github.com/roivaz/commitdraft/internal/gitrepo"
	"github.com/roivaz/commitdraft/internal/logging"
	"github.com/roivaz/commitdraft/internal/session"
	"github.com/roivaz/commitdraft/internal/signals"
)

func newLogger(name string) logging.Logger {
	return logging.New(logging.NewWithLevel(config.LogLevel())).WithName(name)
}

func newDrafter(log logging.Logger) (*drafter.Drafter, error) {
	var extra signals.Catalog
	if path := config.SignalsFile(); path != "" {
		loaded, err := signals.LoadFile(path, log)
		if err != nil {
			return nil, err
		}
		log.Debug("loaded extra signals", "file", path, "count", len(loaded))
		extra = loaded
	}
	return drafter.New(drafter.Config{
		SkipGenerated:       config.SkipGenerated(),
		MaxBullets:          config.MaxBullets(),
		SimilarityThreshold: config.SimilarityThreshold(),
		ExtraSignals:        extra,
		Logger:              log,
	}), nil
}

func newContextReader(log logging.Logger) *session.Reader {
	return session.NewReader(session.ReaderConfig{
		Workspace: config.Workspace(),
		FileName:  config.ContextFile(),
		Fallback:  envContext,
		Logger:    log.WithName("session"),
	})
}

// envContext reads the context fallbacks bound in config.Init.
func envContext() session.Context {
	return session.Context{
		LastPrompt:          config.LastPrompt(),
		TaskDescription:     config.TaskDescription(),
		WorkSummary:         config.WorkSummary(),
		ConversationSummary: config.ConversationSummary(),
	}
}

func newRepo() *gitrepo.Repo {
	return gitrepo.New(gitrepo.RepoConfig{Path: config.Workspace(), Timeout: config.GitTimeout()})
}

// readDiffInput reads a diff from path, "-" meaning stdin.
func readDiffInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read diff from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read diff file: %w", err)
	}
	return string(data), nil
}

func normalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "json", "yaml", "text":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}
