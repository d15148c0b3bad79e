package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forgent-ai/changelog/report"
	"github.com/forgent-ai/changelog/web"
)

var (
	servePort     string
	serveArtifact string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview a generated changelog artifact in the browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := web.NewServer(serveArtifact)
		return server.Start(servePort)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to run the server on")
	serveCmd.Flags().StringVar(&serveArtifact, "artifact",
		filepath.Join("changelog-artifacts", report.ArtifactFileName),
		"Path to the changelog artifact to preview")
}
