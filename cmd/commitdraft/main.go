package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/roivaz/commitdraft/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "commitdraft",
	Short:         "Draft commit messages from uncommitted changes and session context",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	flags := rootCmd.PersistentFlags()
	flags.String("workspace", ".", "Repository root holding the session context file")
	flags.String("context-file", ".claude-context.json", "Session context file name inside the workspace")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("commit-mode", "stage", "How the hook applies the message: stage or commit")
	flags.Bool("staged", false, "Draft from the index instead of the work tree")
	flags.Int("max-bullets", 5, "Maximum number of summary bullets")
	flags.Int("similarity-threshold", 2, "Bullets sharing more than this many words are duplicates")
	flags.Bool("skip-generated", false, "Ignore lockfiles, vendored and generated sources when extracting facts")
	flags.String("signals-file", "", "YAML file with extra implementation-pattern signals")
	flags.String("git-timeout", "30s", "Timeout for each git invocation")

	rootCmd.AddCommand(hookCmd, draftCmd, analyzeCmd, mcpServerCmd)

	config.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("commitdraft: %v", err)
	}
}
