package models

import "time"

// CommitRecord is one normalized commit row. Author falls back to "Unknown"
// when the commit has no identifiable account.
type CommitRecord struct {
	SHA     string    `json:"sha"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}

// ContributorCount is one entry of the top-contributors ranking.
type ContributorCount struct {
	Author  string `json:"author"`
	Commits int    `json:"commits"`
}
