package github

import (
	"context"
	"errors"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	apperrors "github.com/ghcollect/ghcollect/internal/errors"
	"github.com/ghcollect/ghcollect/internal/parallel"
)

// RawIssue pairs an issue with its event history. The events come from a
// per-issue subquery; the normalizer scans them for "reopened" entries.
type RawIssue struct {
	Issue  *gh.Issue
	Events []*gh.IssueEvent
}

// Fetcher is the read-only contract the collection pipeline depends on.
// The three listings are independent of each other and each follows
// pagination until exhausted.
type Fetcher interface {
	// ListCommits retrieves every commit of the repository in the API's
	// native order.
	ListCommits(ctx context.Context, owner, repo string) ([]*gh.RepositoryCommit, error)

	// ListPullRequests retrieves every pull request (all states, created
	// descending) with size and review-comment counts populated.
	ListPullRequests(ctx context.Context, owner, repo string) ([]*gh.PullRequest, error)

	// ListIssues retrieves every issue (all states) together with its event
	// history. Pull requests surfaced by the issues endpoint are excluded.
	ListIssues(ctx context.Context, owner, repo string) ([]RawIssue, error)
}

// Client implements Fetcher on top of the GitHub REST API. The underlying
// API client carries only read-only credential state, so one Client is safe
// to share across the concurrent fetches without extra synchronization.
type Client struct {
	gh              *gh.Client
	logger          *logrus.Logger
	pageSize        int
	subqueryWorkers int
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*Client)

// WithBaseURL points the client at a different API endpoint, e.g. a test
// server. The URL must end in a slash for relative resolution to work.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		if u, err := url.Parse(baseURL); err == nil {
			c.gh.BaseURL = u
		}
	}
}

// WithPageSize overrides the listing page size.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithSubqueryWorkers bounds the concurrency of per-record subqueries
// (full PR fetches, issue event listings).
func WithSubqueryWorkers(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.subqueryWorkers = n
		}
	}
}

// NewClient creates a new GitHub client with the given token and options.
// An empty token yields an unauthenticated client with the lower rate limit.
func NewClient(token string, logger *logrus.Logger, opts ...ClientOption) *Client {
	httpClient := oauth2.NewClient(context.Background(), nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := &Client{
		gh:              gh.NewClient(httpClient),
		logger:          logger,
		pageSize:        100,
		subqueryWorkers: 10,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// mapAPIError translates go-github errors into the application taxonomy.
// Rate limit exhaustion is kept distinct so callers can choose to back off;
// everything else is a generic transport failure.
func mapAPIError(operation string, err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return apperrors.New(apperrors.ErrRateLimit, operation, err)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return apperrors.New(apperrors.ErrRateLimit, operation, err)
	}
	return apperrors.New(apperrors.ErrTransport, operation, err)
}

// ListCommits retrieves the complete commit history of a repository.
func (c *Client) ListCommits(ctx context.Context, owner, repo string) ([]*gh.RepositoryCommit, error) {
	logger := c.logger.WithFields(logrus.Fields{"owner": owner, "repo": repo, "resource": "commits"})

	opts := &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}

	var all []*gh.RepositoryCommit
	for {
		commits, resp, err := c.gh.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			logger.WithError(err).Error("Failed to list commits")
			return nil, mapAPIError("list commits", err)
		}
		all = append(all, commits...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logger.WithField("count", len(all)).Debug("Fetched commits")
	return all, nil
}

// ListPullRequests retrieves every pull request, all states, created
// descending. The list endpoint omits additions, deletions and
// review-comment counts, so each PR needs a follow-up fetch; those run on a
// bounded pool and the results keep list order.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string) ([]*gh.PullRequest, error) {
	logger := c.logger.WithFields(logrus.Fields{"owner": owner, "repo": repo, "resource": "pull_requests"})

	opts := &gh.PullRequestListOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}

	var listed []*gh.PullRequest
	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			logger.WithError(err).Error("Failed to list pull requests")
			return nil, mapAPIError("list pull requests", err)
		}
		listed = append(listed, prs...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	full, err := parallel.MapOrdered(ctx, c.subqueryWorkers, listed,
		func(ctx context.Context, _ int, pr *gh.PullRequest) (parallel.Result[*gh.PullRequest], error) {
			if pr.Number == nil {
				return parallel.Keep(pr), nil
			}
			detailed, _, err := c.gh.PullRequests.Get(ctx, owner, repo, *pr.Number)
			if err != nil {
				return parallel.Skip[*gh.PullRequest](), mapAPIError("get pull request", err)
			}
			return parallel.Keep(detailed), nil
		})
	if err != nil {
		logger.WithError(err).Error("Failed to fetch pull request details")
		return nil, err
	}

	logger.WithField("count", len(full)).Debug("Fetched pull requests")
	return full, nil
}

// ListIssues retrieves every issue, all states, each paired with its event
// history. The issues endpoint also surfaces pull requests; those are
// dropped here so an IssueRecord always means an issue.
func (c *Client) ListIssues(ctx context.Context, owner, repo string) ([]RawIssue, error) {
	logger := c.logger.WithFields(logrus.Fields{"owner": owner, "repo": repo, "resource": "issues"})

	opts := &gh.IssueListByRepoOptions{
		State:       "all",
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}

	var listed []*gh.Issue
	for {
		issues, resp, err := c.gh.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			logger.WithError(err).Error("Failed to list issues")
			return nil, mapAPIError("list issues", err)
		}
		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			listed = append(listed, issue)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	raw, err := parallel.MapOrdered(ctx, c.subqueryWorkers, listed,
		func(ctx context.Context, _ int, issue *gh.Issue) (parallel.Result[RawIssue], error) {
			if issue.Number == nil {
				return parallel.Keep(RawIssue{Issue: issue}), nil
			}
			events, err := c.listIssueEvents(ctx, owner, repo, *issue.Number)
			if err != nil {
				return parallel.Skip[RawIssue](), err
			}
			return parallel.Keep(RawIssue{Issue: issue, Events: events}), nil
		})
	if err != nil {
		logger.WithError(err).Error("Failed to fetch issue events")
		return nil, err
	}

	logger.WithField("count", len(raw)).Debug("Fetched issues")
	return raw, nil
}

// listIssueEvents retrieves the full event history of one issue.
func (c *Client) listIssueEvents(ctx context.Context, owner, repo string, number int) ([]*gh.IssueEvent, error) {
	opts := &gh.ListOptions{PerPage: c.pageSize}

	var all []*gh.IssueEvent
	for {
		events, resp, err := c.gh.Issues.ListIssueEvents(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, mapAPIError("list issue events", err)
		}
		all = append(all, events...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}
