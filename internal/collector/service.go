package collector

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ghcollect/ghcollect/internal/errors"
	"github.com/ghcollect/ghcollect/internal/github"
	"github.com/ghcollect/ghcollect/internal/models"
	"github.com/ghcollect/ghcollect/internal/parallel"
	"github.com/ghcollect/ghcollect/internal/utils"
)

// Service is the collection façade. One Collect call runs the whole
// pipeline: locate the repository, fetch the three resource lists
// concurrently, normalize them concurrently, and aggregate the metrics.
type Service struct {
	fetcher github.Fetcher
	logger  *logrus.Logger
}

// NewService creates a collection service around an injected fetcher.
func NewService(fetcher github.Fetcher, logger *logrus.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Collect produces the bundle for one repository URL. Any fetch failure
// means the whole collection failed; metrics over an incomplete resource
// set would be misleading, so no partial bundle is ever returned. A
// repository with no activity yields an empty bundle and no error, which is
// how callers tell "nothing happened" from "collection failed".
func (s *Service) Collect(ctx context.Context, repoURL string) (*models.Bundle, error) {
	owner, name, err := utils.ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}
	return s.CollectRepository(ctx, owner, name)
}

// CollectRepository is Collect for an already-parsed owner and name.
func (s *Service) CollectRepository(ctx context.Context, owner, name string) (*models.Bundle, error) {
	logger := s.logger.WithFields(logrus.Fields{"owner": owner, "repo": name})
	logger.Info("Starting collection")
	start := time.Now()

	var (
		rawCommits []*gh.RepositoryCommit
		rawPRs     []*gh.PullRequest
		rawIssues  []github.RawIssue
	)

	err := parallel.Run(ctx, 3,
		func(ctx context.Context) error {
			var err error
			rawCommits, err = s.fetcher.ListCommits(ctx, owner, name)
			return err
		},
		func(ctx context.Context) error {
			var err error
			rawPRs, err = s.fetcher.ListPullRequests(ctx, owner, name)
			return err
		},
		func(ctx context.Context) error {
			var err error
			rawIssues, err = s.fetcher.ListIssues(ctx, owner, name)
			return err
		},
	)
	if err != nil {
		logger.WithError(err).Error("Collection failed")
		return nil, apperrors.New(apperrors.ErrCollectionFailed,
			fmt.Sprintf("collecting %s/%s", owner, name), err)
	}

	var (
		commits []models.CommitRecord
		prs     []models.PullRequestRecord
		issues  []models.IssueRecord
	)

	// Normalization never fails a batch, so this Run cannot error.
	_ = parallel.Run(ctx, 3,
		func(ctx context.Context) error {
			commits = NormalizeCommits(ctx, s.logger, rawCommits)
			return nil
		},
		func(ctx context.Context) error {
			prs = NormalizePullRequests(ctx, s.logger, rawPRs)
			return nil
		},
		func(ctx context.Context) error {
			issues = NormalizeIssues(ctx, s.logger, rawIssues)
			return nil
		},
	)

	bundle := &models.Bundle{
		Owner:        owner,
		Name:         name,
		Commits:      commits,
		PullRequests: prs,
		Issues:       issues,
		Metrics:      Aggregate(commits, prs, issues),
		CollectedAt:  time.Now().UTC(),
	}

	logger.WithFields(logrus.Fields{
		"commits":       len(commits),
		"pull_requests": len(prs),
		"issues":        len(issues),
		"duration":      time.Since(start).String(),
	}).Info("Collection complete")

	return bundle, nil
}
