package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = godotenv.Load(".commitdraft.env")
	for key, env := range envBindings {
		_ = viper.BindEnv(key, env)
	}
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyWorkspace, ".")
	viper.SetDefault(KeyContextFile, ".claude-context.json")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyCommitMode, "stage")
	viper.SetDefault(KeyStaged, false)
	viper.SetDefault(KeyMaxBullets, 5)
	viper.SetDefault(KeySimilarityThreshold, 2)
	viper.SetDefault(KeySkipGenerated, false)
	viper.SetDefault(KeySignalsFile, "")
	viper.SetDefault(KeyGitTimeout, "30s")
	viper.SetDefault(KeyMCPHost, "127.0.0.1")
	viper.SetDefault(KeyMCPPort, 8000)
	viper.SetDefault(KeyMCPTransport, "http")
}

func Workspace() string           { return viper.GetString(KeyWorkspace) }
func ContextFile() string         { return viper.GetString(KeyContextFile) }
func LogLevel() string            { return viper.GetString(KeyLogLevel) }
func CommitMode() string          { return strings.ToLower(viper.GetString(KeyCommitMode)) }
func Staged() bool                { return viper.GetBool(KeyStaged) }
func MaxBullets() int             { return viper.GetInt(KeyMaxBullets) }
func SimilarityThreshold() int    { return viper.GetInt(KeySimilarityThreshold) }
func SkipGenerated() bool         { return viper.GetBool(KeySkipGenerated) }
func SignalsFile() string         { return viper.GetString(KeySignalsFile) }
func MCPHost() string             { return viper.GetString(KeyMCPHost) }
func MCPPort() int                { return viper.GetInt(KeyMCPPort) }
func MCPTransport() string        { return strings.ToLower(viper.GetString(KeyMCPTransport)) }
func LastPrompt() string          { return viper.GetString(KeyLastPrompt) }
func TaskDescription() string     { return viper.GetString(KeyTaskDescription) }
func WorkSummary() string         { return viper.GetString(KeyWorkSummary) }
func ConversationSummary() string { return viper.GetString(KeyConversationSummary) }

// GitTimeout parses git_timeout, falling back to 30s on empty or invalid input.
func GitTimeout() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(viper.GetString(KeyGitTimeout)))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
