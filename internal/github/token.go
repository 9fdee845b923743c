package github

import "strings"

const (
	// TokenKey is the .env key the backend reads its token from.
	TokenKey = "GITHUB_TOKEN"

	// PlaceholderToken is the value shipped in example .env files.
	// A file still carrying it is treated as unconfigured.
	PlaceholderToken = "your_github_token_here"

	// TokenSettingsURL is where users generate a personal access token.
	TokenSettingsURL = "https://github.com/settings/tokens"
)

// TokenPrefixes lists the prefixes of classic and fine-grained personal access tokens.
var TokenPrefixes = []string{"ghp_", "github_pat_"}

// HasKnownPrefix reports whether token starts with one of TokenPrefixes.
func HasKnownPrefix(token string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

// IsConfigured reports whether .env content already carries a real token:
// a GITHUB_TOKEN= assignment is present and the placeholder is absent.
// Both are substring tests on the whole content, not per-line parsing.
func IsConfigured(content string) bool {
	return strings.Contains(content, TokenKey+"=") && !strings.Contains(content, PlaceholderToken)
}
