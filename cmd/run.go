package cmd

import (
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"

	"github.com/forgent-ai/changelog/app"
	"github.com/forgent-ai/changelog/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the changelog generation pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local runs can keep inputs in a .env file; inside Actions the
		// variables are already present and the load is a no-op.
		_ = godotenv.Load()

		action := githubactions.New()
		cfg, err := config.Load(action)
		if err != nil {
			return err
		}
		return app.Run(cmd.Context(), action, cfg)
	},
}
