package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghcollect/ghcollect/internal/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteBundle(t *testing.T) {
	dir := t.TempDir()
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	closed := created.AddDate(0, 0, 2)

	bundle := &models.Bundle{
		Owner: "test-owner",
		Name:  "test-repo",
		Commits: []models.CommitRecord{
			{SHA: "sha-a", Author: "alice", Date: created, Message: "first"},
			{SHA: "sha-b", Author: "bob", Date: created.Add(time.Hour), Message: "second, with comma"},
		},
		PullRequests: []models.PullRequestRecord{
			{Number: 1, Title: "Fix", Author: "alice", CreatedAt: &created, ClosedAt: &closed, State: "closed", ReviewComments: 2, Additions: 10, Deletions: 3},
			{Number: 2, Title: "Open one", Author: "bob", CreatedAt: &created, State: "open"},
		},
		Issues: []models.IssueRecord{
			{Number: 5, Title: "bug: boom", CreatedAt: created, ReopenCount: 1},
		},
	}

	paths, err := WriteBundle(dir, bundle)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "test-repo_commits.csv"), paths[0])

	commits := readCSV(t, paths[0])
	require.Len(t, commits, 3)
	assert.Equal(t, []string{"sha", "author", "date", "message"}, commits[0])
	assert.Equal(t, []string{"sha-a", "alice", "2024-03-01T09:00:00Z", "first"}, commits[1])
	assert.Equal(t, "second, with comma", commits[2][3])

	prs := readCSV(t, paths[1])
	require.Len(t, prs, 3)
	assert.Equal(t, "number", prs[0][0])
	assert.Equal(t, []string{"1", "Fix", "alice", "2024-03-01T09:00:00Z", "2024-03-03T09:00:00Z", "closed", "2", "10", "3"}, prs[1])
	// open PR has an empty closed_at cell
	assert.Equal(t, "", prs[2][4])

	issues := readCSV(t, paths[2])
	require.Len(t, issues, 2)
	assert.Equal(t, []string{"5", "bug: boom", "2024-03-01T09:00:00Z", "", "1"}, issues[1])
}

func TestWriteBundleEmptyTables(t *testing.T) {
	dir := t.TempDir()
	bundle := &models.Bundle{Owner: "test-owner", Name: "empty-repo"}

	paths, err := WriteBundle(dir, bundle)
	require.NoError(t, err)

	for _, p := range paths {
		rows := readCSV(t, p)
		assert.Len(t, rows, 1, "header only for %s", p)
	}
}

func TestWriteBundleCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	bundle := &models.Bundle{Owner: "o", Name: "r"}

	_, err := WriteBundle(dir, bundle)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "r_commits.csv"))
	assert.NoError(t, err)
}
