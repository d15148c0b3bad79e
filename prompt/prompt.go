package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forgent-ai/changelog/github"
)

// Templates holds the instruction text sent ahead of the PR data.
// Either field can be overridden from a YAML file; blanks keep the default.
type Templates struct {
	SummaryInstructions string `yaml:"summary_instructions"`
	SlackInstructions   string `yaml:"slack_instructions"`
}

const (
	defaultSummaryInstructions = "Write a concise markdown changelog section for the pull requests below. " +
		"Use short bullet points focused on user-visible changes, keep PR numbers and authors, " +
		"and return only the markdown with no preamble."

	defaultSlackInstructions = "Rewrite the following markdown release notes as a Slack message. " +
		"Use Slack formatting (*bold*, bullet points), keep links and PR numbers, " +
		"and return only the message text."
)

// LoadTemplates reads template overrides from a YAML file. A missing file or
// an empty path yields the built-in defaults.
func LoadTemplates(path string) (Templates, error) {
	templates := Templates{
		SummaryInstructions: defaultSummaryInstructions,
		SlackInstructions:   defaultSlackInstructions,
	}
	if path == "" {
		return templates, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return templates, nil
		}
		return Templates{}, fmt.Errorf("read prompt config: %w", err)
	}

	var overrides Templates
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Templates{}, fmt.Errorf("parse prompt config: %w", err)
	}

	if overrides.SummaryInstructions != "" {
		templates.SummaryInstructions = overrides.SummaryInstructions
	}
	if overrides.SlackInstructions != "" {
		templates.SlackInstructions = overrides.SlackInstructions
	}
	return templates, nil
}

// BuildSummaryPrompt formats the group's pull requests for the LLM.
func BuildSummaryPrompt(t Templates, groupName string, prs []github.PullRequest) string {
	var b strings.Builder

	if groupName != "" {
		fmt.Fprintf(&b, "Generate release notes for the %q changes in this release.\n", groupName)
	} else {
		b.WriteString("Generate release notes for the changes in this release.\n")
	}
	b.WriteString(t.SummaryInstructions)
	b.WriteString("\n\nMerged pull requests:\n")

	for _, pr := range prs {
		fmt.Fprintf(&b, "- PR #%d: %s by %s (merged %s)\n",
			pr.Number, pr.Title, valueOr(pr.Author, "unknown"), valueOr(pr.MergedAt, "unknown"))
		fmt.Fprintf(&b, "  URL: %s\n", pr.URL)
		if len(pr.Labels) > 0 {
			fmt.Fprintf(&b, "  Labels: %s\n", strings.Join(pr.Labels, ", "))
		}
		if pr.Body != "" {
			b.WriteString("  Description:\n  ")
			b.WriteString(strings.ReplaceAll(pr.Body, "\n", "\n  "))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// BuildSlackPrompt asks for a Slack-formatted rendering of existing markdown.
func BuildSlackPrompt(t Templates, markdown string) string {
	var b strings.Builder
	b.WriteString(t.SlackInstructions)
	b.WriteString("\n\n")
	b.WriteString(markdown)
	return b.String()
}

func valueOr(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
