package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-githubactions"

	"github.com/forgent-ai/changelog/changelog"
	"github.com/forgent-ai/changelog/config"
	"github.com/forgent-ai/changelog/gemini"
	"github.com/forgent-ai/changelog/github"
	"github.com/forgent-ai/changelog/prompt"
	"github.com/forgent-ai/changelog/report"
)

// lookbackDays is the fetch window when no previous release exists.
const lookbackDays = 7

// Run orchestrates the full workflow: release lookup -> PR filter ->
// grouped AI summaries -> artifact file -> upload -> step outputs.
// Any returned error is the single terminal failure of the run; outputs
// already set before the failing stage remain set. Upload failure never
// aborts, it only empties the artifact-name output.
func Run(ctx context.Context, action *githubactions.Action, cfg config.Config) error {
	now := time.Now().UTC()
	releaseTimestamp := report.ReleaseTimestamp(now)
	action.SetOutput("release-date", report.ReleaseDate(now))
	action.SetOutput("release-timestamp", releaseTimestamp)

	client, err := github.NewClient(cfg, action)
	if err != nil {
		return err
	}

	release := client.LatestRelease(ctx)
	action.SetOutput("has-previous-release", strconv.FormatBool(release.Exists))
	action.SetOutput("previous-tag", release.TagName)
	previousDate := ""
	if release.Exists {
		previousDate = release.CreatedAt.Format(time.RFC3339)
	}
	action.SetOutput("previous-release-date", previousDate)

	cutoff := now.AddDate(0, 0, -lookbackDays)
	if release.Exists {
		cutoff = release.CreatedAt
	}

	prs, err := client.MergedPRsSince(ctx, cutoff, cfg.GroupingLabels, cfg.RequireFeatureLabel)
	if err != nil {
		return err
	}
	action.Infof("Found %d merged pull requests since %s", len(prs), cutoff.Format(time.RFC3339))

	groups := changelog.GroupByLabel(prs, cfg.GroupingLabels)

	templates, err := prompt.LoadTemplates(cfg.PromptConfigPath)
	if err != nil {
		return err
	}
	summarizer := changelog.Summarizer{
		Gen:       gemini.NewClient(cfg.GeminiAPIKey, cfg.Model, cfg.GeminiBaseURL),
		Templates: templates,
		Action:    action,
	}
	for i := range groups {
		action.Infof("Summarizing group %q (%d PRs)", groups[i].Name, len(groups[i].PullRequests))
		summarizer.Summarize(ctx, &groups[i])
	}

	summaries := make(map[string]changelog.Summary, len(groups))
	for _, group := range groups {
		summaries[group.Name] = group.Summary
	}
	encoded, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("marshal grouped summaries: %w", err)
	}
	action.SetOutput("grouped-summaries", string(encoded))
	action.SetOutput("label-groups", strings.Join(changelog.GroupNames(groups), ","))
	action.SetOutput("total-prs", strconv.Itoa(len(prs)))
	action.SetOutput("has-content", strconv.FormatBool(len(groups) > 0))

	doc := report.BuildDocument(now, cfg.GroupingLabels, groups, len(prs))
	path, err := report.WriteJSON(doc, cfg.OutputDir)
	if err != nil {
		return err
	}
	action.Infof("Wrote changelog artifact to %s", path)

	artifactName := "grouped-changelog-" + releaseTimestamp
	if err := report.NewUploader(cfg.ArtifactUploadURL).Upload(ctx, artifactName, path); err != nil {
		action.Warningf("Artifact upload failed: %v", err)
		artifactName = ""
	}
	action.SetOutput("artifact-name", artifactName)

	return nil
}
