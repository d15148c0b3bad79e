package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate AI-grouped release notes from merged pull requests",
	Long: `changelog is a CI step that collects pull requests merged since the
last published release, groups them by label, summarizes each group with
Gemini, and publishes the result as a build artifact plus step outputs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the CLI. The returned error is the run's terminal failure.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
