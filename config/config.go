package config

import (
	"fmt"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// Config represents the action configuration
type Config struct {
	GitHubToken         string   // token used for the hosting API
	GeminiAPIKey        string   // key for the generative-text endpoint
	GroupingLabels      []string // label names used as changelog buckets
	RequireFeatureLabel bool     // require the literal "feature" label in addition

	Model             string // Gemini model name
	OutputDir         string // directory for the changelog artifact
	ArtifactUploadURL string // optional artifact store endpoint
	PromptConfigPath  string // optional YAML prompt template overrides

	Repository    string // owner/repo of the current run
	APIBaseURL    string // hosting API base URL, empty means api.github.com
	GeminiBaseURL string // generative endpoint base URL, empty means production
}

const (
	defaultModel     = "gemini-2.0-flash"
	defaultOutputDir = "./changelog-artifacts"
)

// Load reads the action inputs and the GitHub context.
// The required inputs are validated up front; everything else has a default.
func Load(action *githubactions.Action) (Config, error) {
	cfg := Config{
		GitHubToken:         action.GetInput("github-token"),
		GeminiAPIKey:        action.GetInput("gemini-api-key"),
		GroupingLabels:      splitLabels(action.GetInput("grouping-labels")),
		RequireFeatureLabel: action.GetInput("require-feature-label") == "true",
		Model:               action.GetInput("model"),
		OutputDir:           action.GetInput("output-dir"),
		ArtifactUploadURL:   action.GetInput("artifact-upload-url"),
		PromptConfigPath:    action.GetInput("prompt-config"),
		GeminiBaseURL:       action.GetInput("gemini-api-url"),
	}

	var missing []string
	if cfg.GitHubToken == "" {
		missing = append(missing, "github-token")
	}
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "gemini-api-key")
	}
	if len(cfg.GroupingLabels) == 0 {
		missing = append(missing, "grouping-labels")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("Missing required inputs: %s", strings.Join(missing, ", "))
	}

	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}

	ghCtx, err := action.Context()
	if err != nil {
		return Config{}, fmt.Errorf("read github context: %w", err)
	}
	cfg.Repository = ghCtx.Repository
	cfg.APIBaseURL = ghCtx.APIURL

	return cfg, nil
}

// splitLabels turns a comma-separated input into trimmed, non-blank label names.
func splitLabels(raw string) []string {
	var labels []string
	for _, part := range strings.Split(raw, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
