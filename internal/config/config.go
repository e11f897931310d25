package config

import "os"

type Config struct {
	Port        string
	GitHubToken string
	ExportDir   string
	LogLevel    string
	GitHub      *GitHubConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
		ExportDir:   getEnv("EXPORT_DIR", "."),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		GitHub:      DefaultGitHubConfig(),
	}

	cfg.GitHub.Token = cfg.GitHubToken
	if base := os.Getenv("GITHUB_API_BASE_URL"); base != "" {
		cfg.GitHub.APIBaseURL = base
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
