package collector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghcollect/ghcollect/internal/models"
)

const topContributorCount = 10

// Aggregate computes the metrics snapshot from the three normalized tables.
// It is a pure function: identical tables always yield identical metrics.
// Every metric degrades to 0 on an empty table, never to NaN or an error,
// and the bug/feature ratio is defined as 0 when no issue title mentions a
// feature. Timestamps are assumed comparable; timezone normalization is the
// fetcher's job.
func Aggregate(commits []models.CommitRecord, prs []models.PullRequestRecord, issues []models.IssueRecord) models.Metrics {
	return models.Metrics{
		AverageCommitsPerWeek:             averageCommitsPerWeek(commits),
		AverageActiveContributorsPerMonth: averageActiveContributorsPerMonth(commits),
		AveragePRReviewCycleTimeDays:      averagePRReviewCycleTime(prs),
		AveragePRSize:                     averagePRSize(prs),
		AveragePRReviewComments:           averagePRReviewComments(prs),
		IssueReopeningRate:                issueReopeningRate(issues),
		BugToFeatureRatio:                 bugToFeatureRatio(issues),
		TopContributorsByCommits:          topContributorsByCommits(commits),
	}
}

// averageCommitsPerWeek buckets commits into ISO calendar weeks and takes
// the mean bucket size.
func averageCommitsPerWeek(commits []models.CommitRecord) float64 {
	if len(commits) == 0 {
		return 0
	}

	weeks := make(map[string]int)
	for _, c := range commits {
		year, week := c.Date.ISOWeek()
		weeks[fmt.Sprintf("%04d-W%02d", year, week)]++
	}

	return float64(len(commits)) / float64(len(weeks))
}

// averageActiveContributorsPerMonth buckets commits into calendar months and
// takes the mean count of distinct authors per month.
func averageActiveContributorsPerMonth(commits []models.CommitRecord) float64 {
	if len(commits) == 0 {
		return 0
	}

	months := make(map[string]map[string]struct{})
	for _, c := range commits {
		month := c.Date.Format("2006-01")
		if months[month] == nil {
			months[month] = make(map[string]struct{})
		}
		months[month][c.Author] = struct{}{}
	}

	total := 0
	for _, authors := range months {
		total += len(authors)
	}
	return float64(total) / float64(len(months))
}

// averagePRReviewCycleTime is the mean closed−created gap in whole days.
// An open PR contributes no sample.
func averagePRReviewCycleTime(prs []models.PullRequestRecord) float64 {
	totalDays := 0
	samples := 0
	for _, pr := range prs {
		if pr.CreatedAt == nil || pr.ClosedAt == nil {
			continue
		}
		totalDays += int(pr.ClosedAt.Sub(*pr.CreatedAt).Hours() / 24)
		samples++
	}
	if samples == 0 {
		return 0
	}
	return float64(totalDays) / float64(samples)
}

// averagePRSize is the mean of additions+deletions across all PRs.
func averagePRSize(prs []models.PullRequestRecord) float64 {
	if len(prs) == 0 {
		return 0
	}
	total := 0
	for _, pr := range prs {
		total += pr.Additions + pr.Deletions
	}
	return float64(total) / float64(len(prs))
}

// averagePRReviewComments is the mean review-comment count across all PRs,
// a review-effort proxy rather than a duration.
func averagePRReviewComments(prs []models.PullRequestRecord) float64 {
	if len(prs) == 0 {
		return 0
	}
	total := 0
	for _, pr := range prs {
		total += pr.ReviewComments
	}
	return float64(total) / float64(len(prs))
}

// issueReopeningRate is the mean reopen count across all issues.
func issueReopeningRate(issues []models.IssueRecord) float64 {
	if len(issues) == 0 {
		return 0
	}
	total := 0
	for _, issue := range issues {
		total += issue.ReopenCount
	}
	return float64(total) / float64(len(issues))
}

// bugToFeatureRatio divides the count of bug-titled issues by the count of
// feature-titled ones. A zero feature count yields 0, never infinity.
func bugToFeatureRatio(issues []models.IssueRecord) float64 {
	bugs, features := 0, 0
	for _, issue := range issues {
		title := strings.ToLower(issue.Title)
		if strings.Contains(title, "bug") {
			bugs++
		}
		if strings.Contains(title, "feature") {
			features++
		}
	}
	if features == 0 {
		return 0
	}
	return float64(bugs) / float64(features)
}

// topContributorsByCommits ranks authors by commit count and keeps the top
// 10. Ties keep first-encountered order, which a stable sort over the
// insertion-ordered author list guarantees.
func topContributorsByCommits(commits []models.CommitRecord) []models.ContributorCount {
	counts := make(map[string]int)
	var order []string
	for _, c := range commits {
		if _, seen := counts[c.Author]; !seen {
			order = append(order, c.Author)
		}
		counts[c.Author]++
	}

	ranking := make([]models.ContributorCount, 0, len(order))
	for _, author := range order {
		ranking = append(ranking, models.ContributorCount{Author: author, Commits: counts[author]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Commits > ranking[j].Commits
	})

	if len(ranking) > topContributorCount {
		ranking = ranking[:topContributorCount]
	}
	return ranking
}
