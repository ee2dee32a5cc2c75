package hook

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/roivaz/commitdraft/internal/logging"
	"github.com/roivaz/commitdraft/internal/session"
	"github.com/roivaz/commitdraft/internal/synth"
)

type fakeRepo struct {
	isRepo    bool
	pending   bool
	diff      string
	stageErr  error
	commitErr error

	stagedDiff bool
	staged     bool
	committed  string
	editMsg    string
}

func (f *fakeRepo) IsRepository(context.Context) bool      { return f.isRepo }
func (f *fakeRepo) HasPendingChanges(context.Context) bool { return f.pending }
func (f *fakeRepo) Diff(_ context.Context, staged bool) string {
	f.stagedDiff = staged
	return f.diff
}
func (f *fakeRepo) StageAll(context.Context) error {
	if f.stageErr != nil {
		return f.stageErr
	}
	f.staged = true
	return nil
}
func (f *fakeRepo) Commit(_ context.Context, message string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = message
	return nil
}
func (f *fakeRepo) WriteEditMessage(_ context.Context, message string) (string, error) {
	f.editMsg = message
	return "/repo/.git/COMMIT_EDITMSG", nil
}

type fakeContext struct {
	ctx     session.Context
	removed bool
}

func (f *fakeContext) Read() session.Context { return f.ctx }
func (f *fakeContext) Remove() error         { f.removed = true; return nil }

type fakeDrafter struct {
	gotDiff string
	gotCtx  session.Context
}

func (f *fakeDrafter) Draft(diffText string, ctx session.Context) synth.CommitMessage {
	f.gotDiff = diffText
	f.gotCtx = ctx
	return synth.CommitMessage{Title: "Add x functionality", Bullets: []string{"Implemented x function"}}
}

func newRunner(t *testing.T, repo *fakeRepo, ctx *fakeContext, d *fakeDrafter, mode Mode, out *bytes.Buffer) *Runner {
	t.Helper()
	r, err := New(Config{Repo: repo, Context: ctx, Drafter: d, Mode: mode, Out: out, Logger: logging.New(logr.Discard())})
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r
}

func TestRunSkipsOutsideRepository(t *testing.T) {
	var out bytes.Buffer
	d := &fakeDrafter{}
	res, err := newRunner(t, &fakeRepo{}, &fakeContext{}, d, ModeStage, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Skipped || !strings.Contains(out.String(), "Not in a git repository") {
		t.Fatalf("expected skip, got %+v / %q", res, out.String())
	}
	if d.gotDiff != "" {
		t.Fatalf("drafter should not run")
	}
}

func TestRunSkipsWithoutChanges(t *testing.T) {
	var out bytes.Buffer
	res, err := newRunner(t, &fakeRepo{isRepo: true}, &fakeContext{}, &fakeDrafter{}, ModeStage, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Skipped || res.Reason != "No changes to stage" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunStageMode(t *testing.T) {
	var out bytes.Buffer
	repo := &fakeRepo{isRepo: true, pending: true, diff: "diff --git a/x b/x\n+def x():\n"}
	ctx := &fakeContext{ctx: session.Context{LastPrompt: "do it"}}
	d := &fakeDrafter{}
	res, err := newRunner(t, repo, ctx, d, ModeStage, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Add x functionality\n\n- Implemented x function"
	if !res.Applied || res.Message != want {
		t.Fatalf("unexpected result %+v", res)
	}
	if !repo.staged || repo.editMsg != want || repo.committed != "" {
		t.Fatalf("expected staged changes and saved message, got %+v", repo)
	}
	if d.gotDiff != repo.diff || d.gotCtx.LastPrompt != "do it" {
		t.Fatalf("drafter got unexpected input")
	}
	if !res.WithContext {
		t.Fatalf("expected the session context to be used")
	}
	if !ctx.removed {
		t.Fatalf("expected context file cleanup")
	}
	if !strings.Contains(out.String(), "STAGED CHANGES WITH COMMIT MESSAGE:") || !strings.Contains(out.String(), "/repo/.git/COMMIT_EDITMSG") {
		t.Fatalf("unexpected report %q", out.String())
	}
}

func TestRunCommitMode(t *testing.T) {
	var out bytes.Buffer
	repo := &fakeRepo{isRepo: true, pending: true}
	res, err := newRunner(t, repo, &fakeContext{}, &fakeDrafter{}, ModeCommit, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Applied || repo.committed != res.Message || repo.editMsg != "" {
		t.Fatalf("expected commit, got %+v / %+v", res, repo)
	}
	if res.WithContext {
		t.Fatalf("empty session context should be reported as unused")
	}
}

func TestRunReportsSinkFailure(t *testing.T) {
	var out bytes.Buffer
	repo := &fakeRepo{isRepo: true, pending: true, stageErr: errors.New("index.lock exists")}
	ctx := &fakeContext{}
	res, err := newRunner(t, repo, ctx, &fakeDrafter{}, ModeStage, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("sink failures should not fail the hook: %v", err)
	}
	if res.Applied || !strings.Contains(out.String(), "Failed to stage changes") {
		t.Fatalf("expected failure report, got %+v / %q", res, out.String())
	}
	if ctx.removed {
		t.Fatalf("context should be kept when nothing was applied")
	}
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error without collaborators")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"": ModeStage, "stage": ModeStage, " COMMIT ": ModeCommit}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("%q: expected %q, got %q (%v)", in, want, got, err)
		}
	}
	if _, err := ParseMode("push"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}
