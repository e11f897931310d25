package models

// Metrics is the derived, read-only snapshot computed from one collection
// run. It is rebuilt from scratch on every run.
//
// AveragePRReviewCycleTimeDays is wall-clock time between PR creation and
// closure. AveragePRReviewComments is the mean review-comment count, a
// review-effort proxy, not a duration; the two are deliberately named apart.
type Metrics struct {
	AverageCommitsPerWeek             float64            `json:"average_commits_per_week"`
	AverageActiveContributorsPerMonth float64            `json:"average_active_contributors_per_month"`
	AveragePRReviewCycleTimeDays      float64            `json:"average_pr_review_cycle_time_days"`
	AveragePRSize                     float64            `json:"average_pr_size"`
	AveragePRReviewComments           float64            `json:"average_pr_review_comments"`
	IssueReopeningRate                float64            `json:"issue_reopening_rate"`
	BugToFeatureRatio                 float64            `json:"bug_to_feature_ratio"`
	TopContributorsByCommits          []ContributorCount `json:"top_contributors_by_commits"`
}
