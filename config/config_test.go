package config

import (
	"strings"
	"testing"

	"github.com/sethvargo/go-githubactions"
)

func actionWithEnv(env map[string]string) *githubactions.Action {
	return githubactions.New(githubactions.WithGetenv(func(key string) string {
		return env[key]
	}))
}

func TestLoadReadsInputsAndContext(t *testing.T) {
	action := actionWithEnv(map[string]string{
		"INPUT_GITHUB-TOKEN":          "ghp_test",
		"INPUT_GEMINI-API-KEY":        "gk_test",
		"INPUT_GROUPING-LABELS":       " writer, ui ,",
		"INPUT_REQUIRE-FEATURE-LABEL": "true",
		"GITHUB_REPOSITORY":           "acme/widgets",
	})

	cfg, err := Load(action)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GitHubToken != "ghp_test" || cfg.GeminiAPIKey != "gk_test" {
		t.Fatalf("tokens not read, got %+v", cfg)
	}
	if len(cfg.GroupingLabels) != 2 || cfg.GroupingLabels[0] != "writer" || cfg.GroupingLabels[1] != "ui" {
		t.Fatalf("expected trimmed labels [writer ui], got %+v", cfg.GroupingLabels)
	}
	if !cfg.RequireFeatureLabel {
		t.Fatalf("expected require-feature-label to be set")
	}
	if cfg.Repository != "acme/widgets" {
		t.Fatalf("expected repository from context, got %q", cfg.Repository)
	}
	if cfg.Model == "" || cfg.OutputDir == "" {
		t.Fatalf("expected defaults to be populated, got %+v", cfg)
	}
}

func TestLoadReportsAllMissingInputs(t *testing.T) {
	_, err := Load(actionWithEnv(map[string]string{}))
	if err == nil {
		t.Fatalf("expected error for missing inputs")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Missing required inputs") {
		t.Fatalf("expected missing-inputs message, got %q", msg)
	}
	for _, name := range []string{"github-token", "gemini-api-key", "grouping-labels"} {
		if !strings.Contains(msg, name) {
			t.Fatalf("expected %q in message %q", name, msg)
		}
	}
}

func TestLoadRejectsBlankLabelList(t *testing.T) {
	_, err := Load(actionWithEnv(map[string]string{
		"INPUT_GITHUB-TOKEN":    "t",
		"INPUT_GEMINI-API-KEY":  "k",
		"INPUT_GROUPING-LABELS": " , ,",
	}))
	if err == nil || !strings.Contains(err.Error(), "grouping-labels") {
		t.Fatalf("expected grouping-labels validation error, got %v", err)
	}
}

func TestRequireFeatureLabelDefaultsToFalse(t *testing.T) {
	for _, value := range []string{"", "false", "yes", "TRUE"} {
		cfg, err := Load(actionWithEnv(map[string]string{
			"INPUT_GITHUB-TOKEN":          "t",
			"INPUT_GEMINI-API-KEY":        "k",
			"INPUT_GROUPING-LABELS":       "writer",
			"INPUT_REQUIRE-FEATURE-LABEL": value,
			"GITHUB_REPOSITORY":           "acme/widgets",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.RequireFeatureLabel {
			t.Fatalf("expected flag to be false for input %q", value)
		}
	}
}
