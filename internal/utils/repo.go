package utils

import (
	"strings"

	apperrors "github.com/ghcollect/ghcollect/internal/errors"
)

const hostMarker = "github.com/"

// ParseRepoURL parses a GitHub repository URL into owner and name components.
// The owner and name are the first two path segments following the
// "github.com/" marker; anything without that shape is rejected.
func ParseRepoURL(repoURL string) (owner, name string, err error) {
	idx := strings.Index(repoURL, hostMarker)
	if idx < 0 {
		return "", "", apperrors.New(apperrors.ErrInvalidRepoURL, repoURL, nil)
	}

	parts := strings.Split(repoURL[idx+len(hostMarker):], "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", apperrors.New(apperrors.ErrInvalidRepoURL, repoURL, nil)
	}

	return parts[0], parts[1], nil
}

// IsValidRepoURL reports whether a repository URL can be parsed.
func IsValidRepoURL(repoURL string) bool {
	_, _, err := ParseRepoURL(repoURL)
	return err == nil
}
