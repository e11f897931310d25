package models

import "time"

// PullRequestRecord is one normalized pull request row. CreatedAt and
// ClosedAt stay nil when the API provides no timestamp; an open PR always
// has a nil ClosedAt.
type PullRequestRecord struct {
	Number         int        `json:"number"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	State          string     `json:"state"`
	ReviewComments int        `json:"review_comments"`
	Additions      int        `json:"additions"`
	Deletions      int        `json:"deletions"`
}
