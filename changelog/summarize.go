package changelog

import (
	"context"
	"errors"

	"github.com/sethvargo/go-githubactions"

	"github.com/forgent-ai/changelog/gemini"
	"github.com/forgent-ai/changelog/github"
	"github.com/forgent-ai/changelog/prompt"
)

// Fixed placeholder strings substituted for generated content. A failed or
// pointless generation never aborts the run; it degrades to one of these.
const (
	NoChangesText       = "No new changes were released in this period."
	FailedSummaryText   = "Failed to generate summary"
	FailedSlackText     = "Failed to generate Slack summary"
	FailedAISummaryText = "Failed to generate AI summary"
	FailedAISlackText   = "Failed to generate AI Slack summary"
)

// Generator produces text for a single free-form prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summarizer fills in group summaries one group at a time. The two calls per
// group are sequential: the Slack rendering depends on the markdown output.
type Summarizer struct {
	Gen       Generator
	Templates prompt.Templates
	Action    *githubactions.Action
}

// Summarize generates both renderings for a group in place.
func (s Summarizer) Summarize(ctx context.Context, group *LabelGroup) {
	markdown := s.MarkdownSummary(ctx, group.Name, group.PullRequests)
	group.Summary = Summary{
		Markdown: markdown,
		Slack:    s.SlackSummary(ctx, markdown),
	}
}

// MarkdownSummary asks for a markdown changelog section. An empty PR list
// short-circuits to the no-changes sentinel without a network call.
func (s Summarizer) MarkdownSummary(ctx context.Context, groupName string, prs []github.PullRequest) string {
	if len(prs) == 0 {
		return NoChangesText
	}

	text, err := s.Gen.Generate(ctx, prompt.BuildSummaryPrompt(s.Templates, groupName, prs))
	if err != nil {
		if errors.Is(err, gemini.ErrNoContent) {
			return FailedSummaryText
		}
		s.Action.Warningf("Summary generation for group %q failed: %v", groupName, err)
		return FailedAISummaryText
	}
	return text
}

// SlackSummary transforms markdown notes into a Slack-formatted variant.
// Known placeholder inputs pass through untouched.
func (s Summarizer) SlackSummary(ctx context.Context, markdown string) string {
	switch markdown {
	case NoChangesText, FailedSummaryText, FailedAISummaryText:
		return markdown
	}

	text, err := s.Gen.Generate(ctx, prompt.BuildSlackPrompt(s.Templates, markdown))
	if err != nil {
		if errors.Is(err, gemini.ErrNoContent) {
			return FailedSlackText
		}
		s.Action.Warningf("Slack summary generation failed: %v", err)
		return FailedAISlackText
	}
	return text
}
