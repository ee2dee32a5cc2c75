// Package hook drives the pipeline from a post-session hook: it gates on the
// repository state, drafts the message and applies it through a Sink.
package hook

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/roivaz/commitdraft/internal/logging"
	"github.com/roivaz/commitdraft/internal/session"
	"github.com/roivaz/commitdraft/internal/synth"
)

const banner = "============================================================"

// Repository is the version-control surface the hook needs.
type Repository interface {
	Stager
	IsRepository(ctx context.Context) bool
	HasPendingChanges(ctx context.Context) bool
	Diff(ctx context.Context, staged bool) string
}

type identifier interface {
	Identity(ctx context.Context) (string, error)
}

// ContextSource supplies and cleans up the session context.
type ContextSource interface {
	Read() session.Context
	Remove() error
}

// Drafter turns a diff and context into a message.
type Drafter interface {
	Draft(diffText string, ctx session.Context) synth.CommitMessage
}

type Config struct {
	Repo    Repository
	Context ContextSource
	Drafter Drafter
	Mode    Mode
	// Staged drafts from the index instead of the work tree.
	Staged bool
	Out    io.Writer
	Logger logging.Logger
}

type Runner struct {
	cfg  Config
	sink Sink
	log  logging.Logger
}

func New(cfg Config) (*Runner, error) {
	if cfg.Repo == nil || cfg.Context == nil || cfg.Drafter == nil {
		return nil, fmt.Errorf("hook requires a repository, context source and drafter")
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeStage
	}
	return &Runner{
		cfg:  cfg,
		sink: NewSink(cfg.Mode, cfg.Repo),
		log:  logging.New(cfg.Logger.Logr()).WithName("hook").WithValues("mode", string(cfg.Mode)),
	}, nil
}

// Result describes what a run did.
type Result struct {
	Skipped bool
	Reason  string
	Message string
	Applied bool
	// WithContext is false when the message was drafted from the diff alone.
	WithContext bool
}

// Run executes the hook once. Repository problems are reported on Out and in
// the Result; Run only fails when it cannot write to Out.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if !r.cfg.Repo.IsRepository(ctx) {
		return r.skip("Not in a git repository, skipping")
	}
	if id, ok := r.cfg.Repo.(identifier); ok {
		if repoID, err := id.Identity(ctx); err == nil {
			r.log = r.log.WithValues("repo", repoID)
		}
	}
	if !r.cfg.Repo.HasPendingChanges(ctx) {
		return r.skip("No changes to stage")
	}

	diffText := r.cfg.Repo.Diff(ctx, r.cfg.Staged)
	sessionCtx := r.cfg.Context.Read()
	if sessionCtx.Empty() {
		r.log.Debug("no session context, drafting from the diff only")
	}
	msg := r.cfg.Drafter.Draft(diffText, sessionCtx).String()
	res := Result{Message: msg, WithContext: !sessionCtx.Empty()}

	if err := r.sink.Apply(ctx, msg); err != nil {
		r.log.Error(err, "apply commit message failed")
		_, werr := fmt.Fprintln(r.cfg.Out, failureText(r.cfg.Mode))
		return res, werr
	}
	res.Applied = true

	label := "STAGED CHANGES WITH COMMIT MESSAGE:"
	if r.cfg.Mode == ModeCommit {
		label = "COMMITTED CHANGES WITH MESSAGE:"
	}
	report := strings.Join([]string{"", banner, label, banner, msg, banner, "", r.sink.Describe()}, "\n")
	if _, err := fmt.Fprintln(r.cfg.Out, report); err != nil {
		return res, err
	}

	if err := r.cfg.Context.Remove(); err != nil {
		r.log.Error(err, "context cleanup failed")
	}
	r.log.Info("commit message applied", "bytes", len(msg))
	return res, nil
}

func (r *Runner) skip(reason string) (Result, error) {
	r.log.Debug("hook skipped", "reason", reason)
	_, err := fmt.Fprintln(r.cfg.Out, reason)
	return Result{Skipped: true, Reason: reason}, err
}

func failureText(mode Mode) string {
	if mode == ModeCommit {
		return "Failed to commit changes"
	}
	return "Failed to stage changes"
}
