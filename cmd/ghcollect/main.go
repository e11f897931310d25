// ghcollect collects the activity of one GitHub repository, prints the
// derived metrics and optionally writes the record tables to CSV files.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ghcollect/ghcollect/internal/collector"
	"github.com/ghcollect/ghcollect/internal/config"
	apperrors "github.com/ghcollect/ghcollect/internal/errors"
	"github.com/ghcollect/ghcollect/internal/export"
	"github.com/ghcollect/ghcollect/internal/github"
	"github.com/ghcollect/ghcollect/internal/models"
)

var (
	outputDir string
	noExport  bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "ghcollect <repository-url>",
	Short: "Collect GitHub repository activity and engineering metrics",
	Long: `ghcollect fetches the commits, pull requests and issues of a GitHub
repository, derives engineering metrics from them and writes the record
tables to CSV files.

The GitHub token is read from the GITHUB_TOKEN environment variable
(a .env file in the working directory is honored).`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "directory for the CSV files")
	rootCmd.Flags().BoolVar(&noExport, "no-csv", false, "skip writing CSV files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.SilenceUsage = true
}

func run(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := github.NewClient(cfg.GitHubToken, logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithPageSize(cfg.GitHub.PageSize),
		github.WithSubqueryWorkers(cfg.GitHub.SubqueryWorkers),
	)
	service := collector.NewService(client, logger)

	start := time.Now()
	bundle, err := service.Collect(cmd.Context(), args[0])
	if err != nil {
		switch {
		case apperrors.IsInvalidRepoURL(err):
			return fmt.Errorf("%q is not a GitHub repository URL", args[0])
		case apperrors.IsRateLimit(err):
			return fmt.Errorf("GitHub API rate limit exceeded, wait before retrying: %w", err)
		default:
			return fmt.Errorf("collection failed: %w", err)
		}
	}

	printReport(bundle, time.Since(start))

	if !noExport {
		paths, err := export.WriteBundle(outputDir, bundle)
		if err != nil {
			return err
		}
		fmt.Println("\nData saved to CSV files:")
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}

	return nil
}

func printReport(bundle *models.Bundle, elapsed time.Duration) {
	fmt.Printf("Repository: %s/%s (collected in %s)\n", bundle.Owner, bundle.Name, elapsed.Round(time.Millisecond))
	fmt.Printf("Records: %d commits, %d pull requests, %d issues\n\n",
		len(bundle.Commits), len(bundle.PullRequests), len(bundle.Issues))

	m := bundle.Metrics
	fmt.Println("Repository Metrics:")
	fmt.Printf("  average_commits_per_week:              %.2f\n", m.AverageCommitsPerWeek)
	fmt.Printf("  average_active_contributors_per_month: %.2f\n", m.AverageActiveContributorsPerMonth)
	fmt.Printf("  average_pr_review_cycle_time_days:     %.2f\n", m.AveragePRReviewCycleTimeDays)
	fmt.Printf("  average_pr_size:                       %.2f\n", m.AveragePRSize)
	fmt.Printf("  average_pr_review_comments:            %.2f\n", m.AveragePRReviewComments)
	fmt.Printf("  issue_reopening_rate:                  %.2f\n", m.IssueReopeningRate)
	fmt.Printf("  bug_to_feature_ratio:                  %.2f\n", m.BugToFeatureRatio)

	if len(m.TopContributorsByCommits) > 0 {
		fmt.Println("  top_contributors_by_commits:")
		for _, c := range m.TopContributorsByCommits {
			fmt.Printf("    %-30s %d\n", c.Author, c.Commits)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
