package config

// GitHubConfig holds GitHub-specific configuration
type GitHubConfig struct {
	Token           string
	APIBaseURL      string
	PageSize        int
	SubqueryWorkers int
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL:      "https://api.github.com",
		PageSize:        100,
		SubqueryWorkers: 10,
	}
}
