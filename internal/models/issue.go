package models

import "time"

// IssueRecord is one normalized issue row. ReopenCount is the number of
// "reopened" lifecycle events on the issue.
type IssueRecord struct {
	Number      int        `json:"number"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"created_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	ReopenCount int        `json:"reopen_count"`
}
