package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckScopes(t *testing.T) {
	tests := []struct {
		name            string
		scopesHeader    string
		statusCode      int
		wantValid       bool
		wantScopes      string
		wantBroadScopes []string
	}{
		{
			name:       "fine-grained token (no scopes header)",
			statusCode: 200,
			wantValid:  true,
		},
		{
			name:         "classic token with safe scopes",
			scopesHeader: "public_repo, user",
			statusCode:   200,
			wantValid:    true,
			wantScopes:   "public_repo, user",
		},
		{
			name:            "classic token with delete_repo",
			scopesHeader:    "repo, delete_repo, user",
			statusCode:      200,
			wantValid:       true,
			wantScopes:      "repo, delete_repo, user",
			wantBroadScopes: []string{"delete_repo"},
		},
		{
			name:            "classic token with multiple dangerous scopes",
			scopesHeader:    "repo, delete_repo, admin:org, admin:enterprise",
			statusCode:      200,
			wantValid:       true,
			wantScopes:      "repo, delete_repo, admin:org, admin:enterprise",
			wantBroadScopes: []string{"delete_repo", "admin:org", "admin:enterprise"},
		},
		{
			name:         "invalid token ignores scopes",
			scopesHeader: "delete_repo",
			statusCode:   401,
			wantValid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/user" {
					t.Errorf("Expected path /user, got %s", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "token ghp_test" {
					t.Errorf("Authorization header = %q, want %q", got, "token ghp_test")
				}
				if tt.scopesHeader != "" {
					w.Header().Set("X-OAuth-Scopes", tt.scopesHeader)
				}
				w.WriteHeader(tt.statusCode)
				if tt.statusCode == 200 {
					_, _ = w.Write([]byte(`{"login":"testuser"}`))
				}
			}))
			defer server.Close()

			v := &Verifier{BaseURL: server.URL + "/", Client: server.Client()}
			result, err := v.CheckScopes(context.Background(), "ghp_test")
			if err != nil {
				t.Fatalf("CheckScopes() error = %v", err)
			}

			if result.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Valid, tt.wantValid)
			}
			if result.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", result.StatusCode, tt.statusCode)
			}
			if result.Scopes != tt.wantScopes {
				t.Errorf("Scopes = %q, want %q", result.Scopes, tt.wantScopes)
			}
			if diff := cmp.Diff(tt.wantBroadScopes, result.BroadScopes); diff != "" {
				t.Errorf("BroadScopes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckScopesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	v := &Verifier{BaseURL: url, Client: &http.Client{}}
	if _, err := v.CheckScopes(context.Background(), "ghp_test"); err == nil {
		t.Error("CheckScopes() expected error for closed server, got nil")
	}
}

func TestCheckScopesCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := &Verifier{BaseURL: server.URL, Client: server.Client()}
	if _, err := v.CheckScopes(ctx, "ghp_test"); err == nil {
		t.Error("CheckScopes() expected error for canceled context, got nil")
	}
}

func TestFindBroadScopes(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   []string
	}{
		{name: "empty", header: "", want: nil},
		{name: "no spaces", header: "repo,delete_repo", want: []string{"delete_repo"}},
		{name: "mixed case", header: "Repo, ADMIN:ORG", want: []string{"admin:org"}},
		{name: "partial name is not a match", header: "read:org, admin:org_hook", want: nil},
		{name: "ordered by BroadScopes", header: "admin:gpg_key, delete_repo", want: []string{"delete_repo", "admin:gpg_key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, findBroadScopes(tt.header)); diff != "" {
				t.Errorf("findBroadScopes(%q) mismatch (-want +got):\n%s", tt.header, diff)
			}
		})
	}
}

func TestFormatBroadScopesWarning(t *testing.T) {
	msg := FormatBroadScopesWarning([]string{"delete_repo", "admin:org"})
	if !strings.Contains(msg, "delete_repo, admin:org") {
		t.Errorf("FormatBroadScopesWarning() = %q, want joined scopes", msg)
	}
	if !strings.Contains(msg, TokenSettingsURL) {
		t.Errorf("FormatBroadScopesWarning() = %q, want settings URL", msg)
	}
}
