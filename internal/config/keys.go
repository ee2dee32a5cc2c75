package config

const (
	KeyWorkspace           = "workspace"
	KeyContextFile         = "context_file"
	KeyLogLevel            = "log_level"
	KeyCommitMode          = "commit_mode"
	KeyStaged              = "staged"
	KeyMaxBullets          = "max_bullets"
	KeySimilarityThreshold = "similarity_threshold"
	KeySkipGenerated       = "skip_generated"
	KeySignalsFile         = "signals_file"
	KeyGitTimeout          = "git_timeout"
	KeyMCPHost             = "mcp_host"
	KeyMCPPort             = "mcp_port"
	KeyMCPTransport        = "mcp_transport"

	// Context fallbacks, read only from the environment.
	KeyLastPrompt          = "last_prompt"
	KeyTaskDescription     = "task_description"
	KeyWorkSummary         = "work_summary"
	KeyConversationSummary = "conversation_summary"
)

// envBindings maps keys to the environment variables the session hook exports.
var envBindings = map[string]string{
	KeyWorkspace:           "CLAUDE_WORKSPACE",
	KeyLastPrompt:          "CLAUDE_LAST_PROMPT",
	KeyTaskDescription:     "CLAUDE_TASK_DESCRIPTION",
	KeyWorkSummary:         "CLAUDE_WORK_SUMMARY",
	KeyConversationSummary: "CLAUDE_CONVERSATION_SUMMARY",
}
