package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIURL is the public GitHub REST API.
const DefaultAPIURL = "https://api.github.com"

// BroadScopes lists classic token scopes that allow destructive operations.
// The setup only needs public_repo (or repo).
var BroadScopes = []string{
	"delete_repo",
	"admin:org",
	"admin:enterprise",
	"admin:gpg_key",
	"admin:public_key",
	"admin:ssh_signing_key",
}

// ValidationResult holds the result of token verification.
type ValidationResult struct {
	Valid       bool
	StatusCode  int
	Scopes      string
	BroadScopes []string
}

// Verifier checks tokens against the GitHub API.
type Verifier struct {
	BaseURL string
	Client  *http.Client
}

// NewVerifier returns a Verifier for DefaultAPIURL with a 10 second timeout.
func NewVerifier() *Verifier {
	return &Verifier{
		BaseURL: DefaultAPIURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CheckScopes requests /user with token and reports whether GitHub accepted it.
// For a valid classic token the X-OAuth-Scopes header is recorded and searched
// for BroadScopes. Fine-grained tokens carry no scopes header.
//
// A non-200 response is not an error; transport failures are.
func (v *Verifier) CheckScopes(ctx context.Context, token string) (*ValidationResult, error) {
	url := strings.TrimRight(v.BaseURL, "/") + "/user"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/vnd.github+json")

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach GitHub API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	result := &ValidationResult{
		Valid:      resp.StatusCode == http.StatusOK,
		StatusCode: resp.StatusCode,
	}
	if !result.Valid {
		return result, nil
	}

	scopesHeader := resp.Header.Get("X-OAuth-Scopes")
	if scopesHeader == "" {
		return result, nil
	}

	result.Scopes = scopesHeader
	result.BroadScopes = findBroadScopes(scopesHeader)

	return result, nil
}

// findBroadScopes returns the BroadScopes present in a comma-separated scopes header
// like "repo, user, delete_repo". Matching is case-insensitive on whole entries.
func findBroadScopes(scopesHeader string) []string {
	present := make(map[string]bool)
	for _, scope := range strings.Split(scopesHeader, ",") {
		present[strings.ToLower(strings.TrimSpace(scope))] = true
	}

	var found []string
	for _, scope := range BroadScopes {
		if present[scope] {
			found = append(found, scope)
		}
	}
	return found
}

// FormatBroadScopesWarning formats a warning message for broad-scope tokens.
func FormatBroadScopesWarning(broadScopes []string) string {
	return fmt.Sprintf("GitHub token has broad scopes: %s\nThe analyzer only needs public_repo (or repo for private repos).\nConsider generating a narrower token at %s",
		strings.Join(broadScopes, ", "), TokenSettingsURL)
}
