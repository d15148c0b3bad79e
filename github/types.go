package github

import "time"

// types.go - Data structures for GitHub integration

// PullRequest is the minimal projection of a merged pull request that
// the changelog pipeline carries around. Immutable once fetched.
type PullRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Number   int      `json:"number"`
	URL      string   `json:"url"`
	Author   string   `json:"author"`
	MergedAt string   `json:"mergedAt"` // RFC 3339, empty if unmerged
	Labels   []string `json:"labels"`
}

// ReleaseInfo describes the most recent published release, if any.
type ReleaseInfo struct {
	Exists    bool
	TagName   string
	CreatedAt time.Time
}
