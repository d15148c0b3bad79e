package changelog

import "github.com/forgent-ai/changelog/github"

// Summary carries both renderings of a group's generated notes.
type Summary struct {
	Markdown string `json:"markdown"`
	Slack    string `json:"slack"`
}

// LabelGroup is one named changelog bucket. Grouping is non-exclusive:
// a pull request carrying two grouping labels appears in two groups.
type LabelGroup struct {
	Name         string               `json:"name"`
	PullRequests []github.PullRequest `json:"prs"`
	Summary      Summary              `json:"summary"`
}

// GroupByLabel partitions the filtered pull requests into buckets, one per
// configured grouping label, in configuration order. Empty buckets are
// dropped from the result entirely.
func GroupByLabel(prs []github.PullRequest, labels []string) []LabelGroup {
	buckets := make(map[string][]github.PullRequest, len(labels))
	configured := make(map[string]bool, len(labels))
	for _, label := range labels {
		configured[label] = true
	}

	for _, pr := range prs {
		for _, label := range pr.Labels {
			if configured[label] {
				buckets[label] = append(buckets[label], pr)
			}
		}
	}

	var groups []LabelGroup
	for _, label := range labels {
		if len(buckets[label]) == 0 {
			continue
		}
		groups = append(groups, LabelGroup{
			Name:         label,
			PullRequests: buckets[label],
		})
	}
	return groups
}

// GroupNames lists the group names in order.
func GroupNames(groups []LabelGroup) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}
