package collector

import (
	"context"
	"time"

	gh "github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ghcollect/ghcollect/internal/errors"
	"github.com/ghcollect/ghcollect/internal/github"
	"github.com/ghcollect/ghcollect/internal/models"
	"github.com/ghcollect/ghcollect/internal/parallel"
)

const (
	// UnknownAuthor is the fallback when a commit or PR has no account.
	UnknownAuthor = "Unknown"

	// NoTitle is the fallback for a pull request or issue without a title.
	NoTitle = "No Title"

	normalizeWorkers = 8
)

// NormalizeCommit maps one raw API commit onto a CommitRecord. A commit
// missing its SHA or author date is malformed and reported as such; it is
// never partially populated.
func NormalizeCommit(raw *gh.RepositoryCommit) (models.CommitRecord, error) {
	if raw == nil || raw.SHA == nil {
		return models.CommitRecord{}, apperrors.New(apperrors.ErrMalformedRecord, "commit has no sha", nil)
	}
	if raw.Commit == nil || raw.Commit.Author == nil || raw.Commit.Author.Date == nil {
		return models.CommitRecord{}, apperrors.New(apperrors.ErrMalformedRecord, "commit "+*raw.SHA+" has no author date", nil)
	}

	author := UnknownAuthor
	if raw.Author != nil && raw.Author.Login != nil {
		author = *raw.Author.Login
	}

	return models.CommitRecord{
		SHA:     *raw.SHA,
		Author:  author,
		Date:    raw.Commit.Author.Date.Time,
		Message: raw.Commit.GetMessage(),
	}, nil
}

// NormalizePullRequest maps one raw API pull request onto a
// PullRequestRecord. Absent timestamps stay nil rather than zero.
func NormalizePullRequest(raw *gh.PullRequest) (models.PullRequestRecord, error) {
	if raw == nil || raw.Number == nil {
		return models.PullRequestRecord{}, apperrors.New(apperrors.ErrMalformedRecord, "pull request has no number", nil)
	}

	title := raw.GetTitle()
	if title == "" {
		title = NoTitle
	}

	author := UnknownAuthor
	if raw.User != nil && raw.User.Login != nil {
		author = *raw.User.Login
	}

	return models.PullRequestRecord{
		Number:         *raw.Number,
		Title:          title,
		Author:         author,
		CreatedAt:      timestampPtr(raw.CreatedAt),
		ClosedAt:       timestampPtr(raw.ClosedAt),
		State:          raw.GetState(),
		ReviewComments: raw.GetReviewComments(),
		Additions:      raw.GetAdditions(),
		Deletions:      raw.GetDeletions(),
	}, nil
}

// NormalizeIssue maps one raw API issue plus its event history onto an
// IssueRecord. The reopen count is the number of "reopened" events; an
// issue that was never reopened yields 0.
func NormalizeIssue(raw github.RawIssue) (models.IssueRecord, error) {
	if raw.Issue == nil || raw.Issue.Number == nil {
		return models.IssueRecord{}, apperrors.New(apperrors.ErrMalformedRecord, "issue has no number", nil)
	}
	if raw.Issue.CreatedAt == nil {
		return models.IssueRecord{}, apperrors.New(apperrors.ErrMalformedRecord, "issue has no creation date", nil)
	}

	title := raw.Issue.GetTitle()
	if title == "" {
		title = NoTitle
	}

	reopenCount := 0
	for _, event := range raw.Events {
		if event != nil && event.GetEvent() == "reopened" {
			reopenCount++
		}
	}

	return models.IssueRecord{
		Number:      *raw.Issue.Number,
		Title:       title,
		CreatedAt:   raw.Issue.CreatedAt.Time,
		ClosedAt:    timestampPtr(raw.Issue.ClosedAt),
		ReopenCount: reopenCount,
	}, nil
}

// NormalizeCommits normalizes a commit list concurrently. Malformed records
// are logged and dropped; the survivors keep their input order.
func NormalizeCommits(ctx context.Context, logger *logrus.Logger, raw []*gh.RepositoryCommit) []models.CommitRecord {
	records, _ := parallel.MapOrdered(ctx, normalizeWorkers, raw,
		func(_ context.Context, i int, rc *gh.RepositoryCommit) (parallel.Result[models.CommitRecord], error) {
			record, err := NormalizeCommit(rc)
			if err != nil {
				logger.WithError(err).WithField("index", i).Warn("Dropping malformed commit")
				return parallel.Skip[models.CommitRecord](), nil
			}
			return parallel.Keep(record), nil
		})
	return records
}

// NormalizePullRequests normalizes a pull request list concurrently with the
// same drop-and-log policy as NormalizeCommits.
func NormalizePullRequests(ctx context.Context, logger *logrus.Logger, raw []*gh.PullRequest) []models.PullRequestRecord {
	records, _ := parallel.MapOrdered(ctx, normalizeWorkers, raw,
		func(_ context.Context, i int, pr *gh.PullRequest) (parallel.Result[models.PullRequestRecord], error) {
			record, err := NormalizePullRequest(pr)
			if err != nil {
				logger.WithError(err).WithField("index", i).Warn("Dropping malformed pull request")
				return parallel.Skip[models.PullRequestRecord](), nil
			}
			return parallel.Keep(record), nil
		})
	return records
}

// NormalizeIssues normalizes an issue list concurrently with the same
// drop-and-log policy as NormalizeCommits.
func NormalizeIssues(ctx context.Context, logger *logrus.Logger, raw []github.RawIssue) []models.IssueRecord {
	records, _ := parallel.MapOrdered(ctx, normalizeWorkers, raw,
		func(_ context.Context, i int, ri github.RawIssue) (parallel.Result[models.IssueRecord], error) {
			record, err := NormalizeIssue(ri)
			if err != nil {
				logger.WithError(err).WithField("index", i).Warn("Dropping malformed issue")
				return parallel.Skip[models.IssueRecord](), nil
			}
			return parallel.Keep(record), nil
		})
	return records
}

func timestampPtr(ts *gh.Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
