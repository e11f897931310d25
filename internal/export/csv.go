// Package export writes a collection bundle to flat CSV files, one per
// resource type, in normalized-list order.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ghcollect/ghcollect/internal/models"
)

var (
	commitHeader      = []string{"sha", "author", "date", "message"}
	pullRequestHeader = []string{"number", "title", "author", "created_at", "closed_at", "state", "review_comments", "additions", "deletions"}
	issueHeader       = []string{"number", "title", "created_at", "closed_at", "reopen_count"}
)

// WriteBundle writes <name>_commits.csv, <name>_pull_requests.csv and
// <name>_issues.csv into dir and returns the paths written.
func WriteBundle(dir string, bundle *models.Bundle) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	files := []struct {
		path  string
		write func(w *csv.Writer) error
	}{
		{filepath.Join(dir, bundle.Name+"_commits.csv"), func(w *csv.Writer) error {
			return writeCommits(w, bundle.Commits)
		}},
		{filepath.Join(dir, bundle.Name+"_pull_requests.csv"), func(w *csv.Writer) error {
			return writePullRequests(w, bundle.PullRequests)
		}},
		{filepath.Join(dir, bundle.Name+"_issues.csv"), func(w *csv.Writer) error {
			return writeIssues(w, bundle.Issues)
		}},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		if err := writeFile(f.path, f.write); err != nil {
			return nil, err
		}
		paths = append(paths, f.path)
	}
	return paths, nil
}

func writeFile(path string, write func(w *csv.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := write(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

func writeCommits(w *csv.Writer, commits []models.CommitRecord) error {
	if err := w.Write(commitHeader); err != nil {
		return err
	}
	for _, c := range commits {
		row := []string{c.SHA, c.Author, c.Date.Format(time.RFC3339), c.Message}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writePullRequests(w *csv.Writer, prs []models.PullRequestRecord) error {
	if err := w.Write(pullRequestHeader); err != nil {
		return err
	}
	for _, pr := range prs {
		row := []string{
			strconv.Itoa(pr.Number),
			pr.Title,
			pr.Author,
			formatOptionalTime(pr.CreatedAt),
			formatOptionalTime(pr.ClosedAt),
			pr.State,
			strconv.Itoa(pr.ReviewComments),
			strconv.Itoa(pr.Additions),
			strconv.Itoa(pr.Deletions),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeIssues(w *csv.Writer, issues []models.IssueRecord) error {
	if err := w.Write(issueHeader); err != nil {
		return err
	}
	for _, issue := range issues {
		row := []string{
			strconv.Itoa(issue.Number),
			issue.Title,
			issue.CreatedAt.Format(time.RFC3339),
			formatOptionalTime(issue.ClosedAt),
			strconv.Itoa(issue.ReopenCount),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
