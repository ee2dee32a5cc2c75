package hook

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects how a drafted message is applied.
type Mode string

const (
	// ModeStage stages all changes and leaves the message in COMMIT_EDITMSG
	// for the user to review.
	ModeStage Mode = "stage"
	// ModeCommit stages all changes and commits immediately.
	ModeCommit Mode = "commit"
)

// ParseMode accepts "stage" or "commit" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeStage, "":
		return ModeStage, nil
	case ModeCommit:
		return ModeCommit, nil
	default:
		return "", fmt.Errorf("unknown commit mode %q (want stage or commit)", s)
	}
}

// Sink applies a finished commit message to the repository.
type Sink interface {
	Apply(ctx context.Context, message string) error
	// Describe returns the follow-up instructions printed after success.
	Describe() string
}

// Stager is the part of the repository the sinks write to.
type Stager interface {
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	WriteEditMessage(ctx context.Context, message string) (string, error)
}

// NewSink returns the sink for mode.
func NewSink(mode Mode, repo Stager) Sink {
	if mode == ModeCommit {
		return &CommitSink{repo: repo}
	}
	return &StageSink{repo: repo}
}

// StageSink stages everything and persists the message for review.
type StageSink struct {
	repo Stager
	path string
}

func (s *StageSink) Apply(ctx context.Context, message string) error {
	if err := s.repo.StageAll(ctx); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}
	path, err := s.repo.WriteEditMessage(ctx, message)
	if err != nil {
		return fmt.Errorf("save commit message: %w", err)
	}
	s.path = path
	return nil
}

func (s *StageSink) Describe() string {
	return "Changes have been staged. To commit with this message, run:\n" +
		"  git commit -e -F " + s.editPath() + "\n\n" +
		"Or amend the message and commit manually."
}

func (s *StageSink) editPath() string {
	if s.path == "" {
		return ".git/COMMIT_EDITMSG"
	}
	return s.path
}

// CommitSink stages everything and commits with the message.
type CommitSink struct {
	repo Stager
}

func (s *CommitSink) Apply(ctx context.Context, message string) error {
	if err := s.repo.StageAll(ctx); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}
	if err := s.repo.Commit(ctx, message); err != nil {
		return fmt.Errorf("commit changes: %w", err)
	}
	return nil
}

func (s *CommitSink) Describe() string {
	return "Changes have been committed. Amend with:\n  git commit --amend"
}
