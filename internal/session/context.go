// Package session loads the conversation context left behind by the coding
// session that triggered the hook.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/roivaz/commitdraft/internal/logging"
)

// DefaultFileName is the side-channel file written into the workspace root.
const DefaultFileName = ".claude-context.json"

// Context is free-text intent supplied outside the diff. All fields may be
// empty.
type Context struct {
	LastPrompt          string `json:"last_prompt"`
	TaskDescription     string `json:"task_description"`
	WorkSummary         string `json:"work_summary"`
	ConversationSummary string `json:"conversation_summary"`
}

// Text joins the fields in the order concept extraction reads them.
func (c Context) Text() string {
	return strings.Join([]string{c.WorkSummary, c.LastPrompt, c.TaskDescription, c.ConversationSummary}, " ")
}

// Empty reports whether no field carries text.
func (c Context) Empty() bool {
	return strings.TrimSpace(c.Text()) == ""
}

// ReaderConfig configures a Reader.
type ReaderConfig struct {
	// Workspace is the directory holding the context file. Defaults to ".".
	Workspace string
	// FileName defaults to DefaultFileName.
	FileName string
	// Fallback supplies the context when the file is missing or unreadable,
	// typically from environment variables.
	Fallback func() Context
	Logger   logging.Logger
}

// Reader loads Context from the side-channel file.
type Reader struct {
	path     string
	fallback func() Context
	log      logging.Logger
}

func NewReader(cfg ReaderConfig) *Reader {
	if cfg.Workspace == "" {
		cfg.Workspace = "."
	}
	if cfg.FileName == "" {
		cfg.FileName = DefaultFileName
	}
	if cfg.Fallback == nil {
		cfg.Fallback = EnvFallback
	}
	return &Reader{
		path:     filepath.Join(cfg.Workspace, cfg.FileName),
		fallback: cfg.Fallback,
		log:      cfg.Logger,
	}
}

// Path returns the context file location.
func (r *Reader) Path() string { return r.path }

// Read returns the file-backed context, or the fallback when the file cannot
// be read or is not a JSON object. It never fails.
func (r *Reader) Read() Context {
	ctx, err := r.readFile()
	if err == nil {
		return ctx
	}
	if errors.Is(err, os.ErrNotExist) {
		r.log.Debug("no context file", "path", r.path)
	} else {
		r.log.Info("failed to read context, using fallback", "path", r.path, "reason", err.Error())
	}
	return r.fallback()
}

func (r *Reader) readFile() (Context, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return Context{}, err
	}
	return Parse(data)
}

// Remove deletes the context file. A missing file is not an error.
func (r *Reader) Remove() error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove context file: %w", err)
	}
	return nil
}

// Parse decodes a context JSON object. Unknown keys are ignored and
// non-string values read as empty strings.
func Parse(data []byte) (Context, error) {
	if !gjson.ValidBytes(data) {
		return Context{}, fmt.Errorf("invalid context json")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return Context{}, fmt.Errorf("context json is not an object")
	}
	return Context{
		LastPrompt:          stringField(doc, "last_prompt"),
		TaskDescription:     stringField(doc, "task_description"),
		WorkSummary:         stringField(doc, "work_summary"),
		ConversationSummary: stringField(doc, "conversation_summary"),
	}, nil
}

func stringField(doc gjson.Result, key string) string {
	v := doc.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// Env variables consulted by EnvFallback.
const (
	EnvLastPrompt          = "CLAUDE_LAST_PROMPT"
	EnvTaskDescription     = "CLAUDE_TASK_DESCRIPTION"
	EnvWorkSummary         = "CLAUDE_WORK_SUMMARY"
	EnvConversationSummary = "CLAUDE_CONVERSATION_SUMMARY"
)

// EnvFallback assembles a Context from environment variables; unset
// variables become empty strings.
func EnvFallback() Context {
	return Context{
		LastPrompt:          os.Getenv(EnvLastPrompt),
		TaskDescription:     os.Getenv(EnvTaskDescription),
		WorkSummary:         os.Getenv(EnvWorkSummary),
		ConversationSummary: os.Getenv(EnvConversationSummary),
	}
}
