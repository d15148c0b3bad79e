package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/forgent-ai/changelog/changelog"
)

// ArtifactFileName is the fixed name of the changelog artifact on disk.
const ArtifactFileName = "grouped-changelog.json"

// Metadata describes one generation run.
type Metadata struct {
	ReleaseDate      string   `json:"releaseDate"`
	ReleaseTimestamp string   `json:"releaseTimestamp"`
	TotalPRs         int      `json:"totalPRs"`
	GroupingLabels   []string `json:"groupingLabels"`
	GeneratedAt      string   `json:"generatedAt"`
	RunID            string   `json:"runId"`
}

// ArtifactDocument is the full result set persisted at the end of a run.
// Written once, never mutated afterwards.
type ArtifactDocument struct {
	Metadata Metadata               `json:"metadata"`
	Groups   []changelog.LabelGroup `json:"groups"`
}

// ReleaseDate renders the run instant as YYYY-MM-DD.
func ReleaseDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ReleaseTimestamp renders the run instant as YYYYMMDD-HHMMSS.
func ReleaseTimestamp(t time.Time) string {
	return t.UTC().Format("20060102-150405")
}

// BuildDocument assembles the artifact for one run.
func BuildDocument(now time.Time, labels []string, groups []changelog.LabelGroup, totalPRs int) ArtifactDocument {
	return ArtifactDocument{
		Metadata: Metadata{
			ReleaseDate:      ReleaseDate(now),
			ReleaseTimestamp: ReleaseTimestamp(now),
			TotalPRs:         totalPRs,
			GroupingLabels:   labels,
			GeneratedAt:      now.UTC().Format(time.RFC3339),
			RunID:            uuid.NewString(),
		},
		Groups: groups,
	}
}

// WriteJSON saves the document as pretty-printed JSON under dir,
// creating the directory if needed. Returns the file path.
func WriteJSON(doc ArtifactDocument, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal artifact document: %w", err)
	}

	path := filepath.Join(dir, ArtifactFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact file: %w", err)
	}
	return path, nil
}
