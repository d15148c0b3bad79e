package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v72/github"
	"github.com/sethvargo/go-githubactions"

	"github.com/forgent-ai/changelog/config"
)

// Client handles GitHub API operations for the configured repository
type Client struct {
	api    *gh.Client
	owner  string
	repo   string
	action *githubactions.Action
}

// NewClient creates a new GitHub client from the action configuration
func NewClient(cfg config.Config, action *githubactions.Action) (*Client, error) {
	owner, repo, ok := strings.Cut(cfg.Repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("GITHUB_REPOSITORY must be in owner/repo form, got %q", cfg.Repository)
	}

	api := gh.NewClient(nil).WithAuthToken(cfg.GitHubToken)
	if cfg.APIBaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(cfg.APIBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse API base URL: %w", err)
		}
		api.BaseURL = base
	}

	return &Client{
		api:    api,
		owner:  owner,
		repo:   repo,
		action: action,
	}, nil
}

// LatestRelease looks up the most recent published release. Every failure,
// including "no releases exist", is reported as a normal no-release outcome.
func (c *Client) LatestRelease(ctx context.Context) ReleaseInfo {
	release, _, err := c.api.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		c.action.Infof("No previous release found for %s/%s: %v", c.owner, c.repo, err)
		return ReleaseInfo{}
	}

	return ReleaseInfo{
		Exists:    true,
		TagName:   release.GetTagName(),
		CreatedAt: release.GetCreatedAt().Time.UTC(),
	}
}

// MergedPRsSince fetches the 100 most-recently-updated closed pull requests
// and keeps those merged strictly after the cutoff that intersect the
// grouping labels. The API's descending-update order is preserved.
// Only the first page is fetched; older qualifying PRs beyond 100 are missed.
func (c *Client) MergedPRsSince(ctx context.Context, cutoff time.Time, labels []string, requireFeature bool) ([]PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		State:     "closed",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	prs, _, err := c.api.PullRequests.List(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("list closed pull requests: %w", err)
	}

	grouping := make(map[string]bool, len(labels))
	for _, label := range labels {
		grouping[label] = true
	}

	var filtered []PullRequest
	for _, pr := range prs {
		if !qualifies(pr, cutoff, grouping, requireFeature) {
			continue
		}
		filtered = append(filtered, project(pr))
	}
	return filtered, nil
}

func qualifies(pr *gh.PullRequest, cutoff time.Time, grouping map[string]bool, requireFeature bool) bool {
	if pr.MergedAt == nil || !pr.MergedAt.Time.After(cutoff) {
		return false
	}

	matchesGroup := false
	hasFeature := false
	for _, label := range pr.Labels {
		if grouping[label.GetName()] {
			matchesGroup = true
		}
		if label.GetName() == "feature" {
			hasFeature = true
		}
	}
	if !matchesGroup {
		return false
	}
	if requireFeature && !hasFeature {
		return false
	}
	return true
}

func project(pr *gh.PullRequest) PullRequest {
	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	mergedAt := ""
	if pr.MergedAt != nil {
		mergedAt = pr.MergedAt.Time.UTC().Format(time.RFC3339)
	}

	return PullRequest{
		Title:    pr.GetTitle(),
		Body:     pr.GetBody(),
		Number:   pr.GetNumber(),
		URL:      pr.GetHTMLURL(),
		Author:   pr.GetUser().GetLogin(),
		MergedAt: mergedAt,
		Labels:   labels,
	}
}
