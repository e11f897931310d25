package collector

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghcollect/ghcollect/internal/models"
)

func commitAt(author string, date time.Time) models.CommitRecord {
	return models.CommitRecord{SHA: fmt.Sprintf("%s-%d", author, date.Unix()), Author: author, Date: date}
}

func TestAggregate_EmptyTables(t *testing.T) {
	m := Aggregate(nil, nil, nil)

	assert.Zero(t, m.AverageCommitsPerWeek)
	assert.Zero(t, m.AverageActiveContributorsPerMonth)
	assert.Zero(t, m.AveragePRReviewCycleTimeDays)
	assert.Zero(t, m.AveragePRSize)
	assert.Zero(t, m.AveragePRReviewComments)
	assert.Zero(t, m.IssueReopeningRate)
	assert.Zero(t, m.BugToFeatureRatio)
	assert.Empty(t, m.TopContributorsByCommits)
}

func TestAggregate_Idempotent(t *testing.T) {
	now := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	commits := []models.CommitRecord{
		commitAt("alice", now),
		commitAt("bob", now.Add(24*time.Hour)),
		commitAt("alice", now.Add(48*time.Hour)),
	}
	issues := []models.IssueRecord{
		{Number: 1, Title: "bug in parser", CreatedAt: now, ReopenCount: 1},
	}

	first := Aggregate(commits, nil, issues)
	second := Aggregate(commits, nil, issues)
	assert.Equal(t, first, second)
}

func TestAverageCommitsPerWeek(t *testing.T) {
	// 10 commits over 3 ISO weeks, split 4/3/3.
	week1 := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC) // Monday of ISO week 14
	week2 := week1.AddDate(0, 0, 7)
	week3 := week1.AddDate(0, 0, 14)

	var commits []models.CommitRecord
	for i := 0; i < 4; i++ {
		commits = append(commits, commitAt("alice", week1.Add(time.Duration(i)*time.Hour)))
	}
	for i := 0; i < 3; i++ {
		commits = append(commits, commitAt("alice", week2.Add(time.Duration(i)*time.Hour)))
	}
	for i := 0; i < 3; i++ {
		commits = append(commits, commitAt("alice", week3.Add(time.Duration(i)*time.Hour)))
	}

	m := Aggregate(commits, nil, nil)
	assert.InDelta(t, 10.0/3.0, m.AverageCommitsPerWeek, 1e-9)
}

func TestAverageActiveContributorsPerMonth(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	commits := []models.CommitRecord{
		// January: alice, bob (alice twice still counts once)
		commitAt("alice", jan),
		commitAt("alice", jan.Add(time.Hour)),
		commitAt("bob", jan.Add(2*time.Hour)),
		// February: alice only
		commitAt("alice", feb),
	}

	m := Aggregate(commits, nil, nil)
	assert.InDelta(t, 1.5, m.AverageActiveContributorsPerMonth, 1e-9)
}

func TestPRMetrics(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	closedAfter3 := created.AddDate(0, 0, 3)
	closedAfter5 := created.AddDate(0, 0, 5)

	prs := []models.PullRequestRecord{
		{Number: 1, CreatedAt: &created, ClosedAt: &closedAfter3, Additions: 100, Deletions: 50, ReviewComments: 2},
		{Number: 2, CreatedAt: &created, ClosedAt: &closedAfter5, Additions: 10, Deletions: 0, ReviewComments: 4},
		{Number: 3, CreatedAt: &created, State: "open", Additions: 30, Deletions: 10, ReviewComments: 0},
	}

	m := Aggregate(nil, prs, nil)

	// Open PR contributes no cycle-time sample: (3+5)/2.
	assert.InDelta(t, 4.0, m.AveragePRReviewCycleTimeDays, 1e-9)
	// Size and comment means cover all PRs: (150+10+40)/3, (2+4+0)/3.
	assert.InDelta(t, 200.0/3.0, m.AveragePRSize, 1e-9)
	assert.InDelta(t, 2.0, m.AveragePRReviewComments, 1e-9)
}

func TestPRMetricsNoClosedSamples(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	prs := []models.PullRequestRecord{
		{Number: 1, CreatedAt: &created, State: "open"},
	}

	m := Aggregate(nil, prs, nil)
	assert.Zero(t, m.AveragePRReviewCycleTimeDays)
}

func TestIssueReopeningRate(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	issues := []models.IssueRecord{
		{Number: 1, Title: "first", CreatedAt: now, ReopenCount: 0},
		{Number: 2, Title: "second", CreatedAt: now, ReopenCount: 2},
	}

	m := Aggregate(nil, nil, issues)
	assert.InDelta(t, 1.0, m.IssueReopeningRate, 1e-9)
}

func TestBugToFeatureRatio(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("case-insensitive matching", func(t *testing.T) {
		issues := []models.IssueRecord{
			{Number: 1, Title: "BUG: crash", CreatedAt: now},
			{Number: 2, Title: "Nasty bug in parser", CreatedAt: now},
			{Number: 3, Title: "Feature: dark mode", CreatedAt: now},
			{Number: 4, Title: "unrelated chore", CreatedAt: now},
		}
		m := Aggregate(nil, nil, issues)
		assert.InDelta(t, 2.0, m.BugToFeatureRatio, 1e-9)
	})

	t.Run("zero feature denominator yields zero", func(t *testing.T) {
		issues := []models.IssueRecord{
			{Number: 1, Title: "bug: crash", CreatedAt: now},
		}
		m := Aggregate(nil, nil, issues)
		assert.Zero(t, m.BugToFeatureRatio)
	})
}

func TestTopContributorsByCommits(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ranked by count, capped at ten", func(t *testing.T) {
		var commits []models.CommitRecord
		for author := 0; author < 12; author++ {
			name := fmt.Sprintf("author-%02d", author)
			for i := 0; i <= author; i++ {
				commits = append(commits, commitAt(name, now.Add(time.Duration(i)*time.Minute)))
			}
		}

		m := Aggregate(commits, nil, nil)
		require.Len(t, m.TopContributorsByCommits, 10)
		assert.Equal(t, "author-11", m.TopContributorsByCommits[0].Author)
		assert.Equal(t, 12, m.TopContributorsByCommits[0].Commits)
		assert.Equal(t, "author-02", m.TopContributorsByCommits[9].Author)
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		commits := []models.CommitRecord{
			commitAt("zed", now),
			commitAt("amy", now.Add(time.Minute)),
			commitAt("zed", now.Add(2*time.Minute)),
			commitAt("amy", now.Add(3*time.Minute)),
		}

		m := Aggregate(commits, nil, nil)
		require.Len(t, m.TopContributorsByCommits, 2)
		assert.Equal(t, "zed", m.TopContributorsByCommits[0].Author)
		assert.Equal(t, "amy", m.TopContributorsByCommits[1].Author)
	})
}
