package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	vcsurl "github.com/gitsight/go-vcsurl"
)

const defaultTimeout = 30 * time.Second

type RepoConfig struct {
	Path    string
	Remote  string // default: origin
	Timeout time.Duration
}

type Repo struct {
	cfg    RepoConfig
	runner Runner
}

func New(cfg RepoConfig) *Repo {
	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Repo{cfg: cfg, runner: Runner{Timeout: cfg.Timeout}}
}

type Runner struct {
	Timeout time.Duration
}

func (r Runner) Git(ctx context.Context, dir string, args ...string) (string, error) {
	c := exec.CommandContext(ctx, "git", args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Start(); err != nil {
		return "", formatGitError(args, err, stderr.String())
	}
	done := make(chan error, 1)
	go func() { done <- c.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return "", formatGitError(args, err, stderr.String())
		}
		return stdout.String(), nil
	case <-time.After(r.Timeout):
		_ = c.Process.Kill()
		<-done
		return "", formatGitTimeoutError(args, r.Timeout, stderr.String())
	case <-ctx.Done():
		_ = c.Process.Kill()
		<-done
		return "", formatGitContextError(args, ctx.Err(), stderr.String())
	}
}

func formatGitError(args []string, cause error, stderr string) error {
	cmd := strings.Join(args, " ")
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("git %s: %w: %s", cmd, cause, stderr)
	}
	return fmt.Errorf("git %s: %w", cmd, cause)
}

func formatGitTimeoutError(args []string, timeout time.Duration, stderr string) error {
	return formatGitError(args, fmt.Errorf("command timed out after %s", timeout), stderr)
}

func formatGitContextError(args []string, cause error, stderr string) error {
	if cause == nil {
		cause = errors.New("context canceled")
	}
	return formatGitError(args, cause, stderr)
}

// Run is a helper to execute arbitrary git subcommands in the repo path.
func (r *Repo) Run(ctx context.Context, args ...string) (string, error) {
	return r.runner.Git(ctx, r.cfg.Path, args...)
}

// IsRepository reports whether the path is inside a git work tree.
func (r *Repo) IsRepository(ctx context.Context) bool {
	_, err := r.Run(ctx, "rev-parse", "--git-dir")
	return err == nil
}

// Status returns `git status --porcelain` output, trimmed.
func (r *Repo) Status(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "status", "--porcelain")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// HasPendingChanges reports whether the work tree has anything to stage. A
// failing status call counts as no changes.
func (r *Repo) HasPendingChanges(ctx context.Context) bool {
	out, err := r.Status(ctx)
	return err == nil && out != ""
}

// Diff returns the unified diff of the work tree (or of the index when
// staged is set). Any failure yields the empty string.
func (r *Repo) Diff(ctx context.Context, staged bool) string {
	args := []string{"diff", "--no-color", "--no-ext-diff"}
	if staged {
		args = append(args, "--cached")
	}
	out, err := r.Run(ctx, args...)
	if err != nil {
		return ""
	}
	return out
}

// StageAll runs `git add -A`.
func (r *Repo) StageAll(ctx context.Context) error {
	_, err := r.Run(ctx, "add", "-A")
	return err
}

// Commit records the index with message.
func (r *Repo) Commit(ctx context.Context, message string) error {
	_, err := r.Run(ctx, "commit", "-m", message)
	return err
}

// GitPath resolves a path inside the git directory, e.g. COMMIT_EDITMSG.
// Relative results are anchored at the repo path.
func (r *Repo) GitPath(ctx context.Context, name string) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "--git-path", name)
	if err != nil {
		return "", err
	}
	p := strings.TrimSpace(out)
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.cfg.Path, p)
	}
	return p, nil
}

// WriteEditMessage stores message in COMMIT_EDITMSG so the next
// `git commit` editor session starts from it.
func (r *Repo) WriteEditMessage(ctx context.Context, message string) (string, error) {
	path, err := r.GitPath(ctx, "COMMIT_EDITMSG")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(message+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// RemoteURL returns the configured URL of the remote.
func (r *Repo) RemoteURL(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "remote", "get-url", r.cfg.Remote)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Identity returns a host/owner/name identifier for the remote, such as
// github.com/roivaz/commitdraft.
func (r *Repo) Identity(ctx context.Context) (string, error) {
	raw, err := r.RemoteURL(ctx)
	if err != nil {
		return "", err
	}
	return ParseIdentity(raw)
}

// ParseIdentity normalizes a remote URL (https, ssh or scp-like) into its
// host/owner/name identifier.
func ParseIdentity(remoteURL string) (string, error) {
	info, err := vcsurl.Parse(remoteURL)
	if err != nil {
		return "", fmt.Errorf("parse remote url %q: %w", remoteURL, err)
	}
	return info.ID, nil
}
