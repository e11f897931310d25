package models

import "time"

// Bundle is the result of one collection run: the three normalized record
// tables plus the metrics derived from them. A bundle is created whole by
// one collection call and superseded wholesale by the next; it is never
// mutated in place, and a partial bundle is never produced.
type Bundle struct {
	Owner        string              `json:"owner"`
	Name         string              `json:"name"`
	Commits      []CommitRecord      `json:"commits"`
	PullRequests []PullRequestRecord `json:"pull_requests"`
	Issues       []IssueRecord       `json:"issues"`
	Metrics      Metrics             `json:"metrics"`
	CollectedAt  time.Time           `json:"collected_at"`
}
