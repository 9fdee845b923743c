package setup

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rickgorman/github-analyzer/internal/github"
	logger "github.com/rickgorman/github-analyzer/internal/logging"
	"github.com/rickgorman/github-analyzer/internal/ui"
	"github.com/rickgorman/github-analyzer/pkg/hash"
)

// ErrPersist is returned when the configuration cannot be read or written.
var ErrPersist = errors.New("configuration persistence failed")

// Outcome describes how a setup run ended.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeAlreadyConfigured
	OutcomeNoToken
	OutcomeDeclined
	OutcomeSaved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyConfigured:
		return "already configured"
	case OutcomeNoToken:
		return "no token"
	case OutcomeDeclined:
		return "declined"
	case OutcomeSaved:
		return "saved"
	default:
		return "failed"
	}
}

// Configurator runs the token setup against a backend directory.
type Configurator struct {
	// Dir is the backend directory holding the .env file.
	Dir string

	// Verify enables the online token check after saving.
	Verify   bool
	Verifier *github.Verifier

	Log logger.Logger
}

// NewConfigurator returns a Configurator for ./backend.
func NewConfigurator() *Configurator {
	return &Configurator{
		Dir:      github.DefaultEnvDir,
		Verifier: github.NewVerifier(),
	}
}

// EnvPath returns the path of the .env file.
func (c *Configurator) EnvPath() string {
	return filepath.Join(c.Dir, github.EnvFileName)
}

// Run performs one setup pass. See the package documentation for the steps.
func (c *Configurator) Run(ctx context.Context) (Outcome, error) {
	printInstructions()

	envPath := c.EnvPath()
	display := filepath.ToSlash(envPath)

	c.Log.Debugf("checking %s", envPath)
	content, exists, err := github.ReadEnvFile(envPath)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if exists && github.IsConfigured(content) {
		c.Log.Debugf("existing token fingerprint %q", hash.Fingerprint(github.TokenFromEnv(content)))
		ui.Success("✅ GitHub token is already configured!")
		return OutcomeAlreadyConfigured, nil
	}
	if exists {
		c.Log.Infof("%s has no usable token, prompting", envPath)
	}

	token := ui.AskSecret("🔑 Paste your GitHub token here: ")
	if token == "" {
		ui.Fail("❌ No token provided. You can set it manually in %s", display)
		return OutcomeNoToken, nil
	}
	c.Log.Debugf("received token fingerprint %q", hash.Fingerprint(token))

	if !github.HasKnownPrefix(token) {
		ui.Warn("⚠️  Warning: Token doesn't look like a GitHub token (should start with 'ghp_' or 'github_pat_')")
		if !ui.Confirm("Continue anyway? (y/N): ") {
			c.Log.Infof("unrecognized token declined, nothing written")
			return OutcomeDeclined, nil
		}
	}

	if err := github.WriteEnvFile(envPath, token); err != nil {
		return OutcomeFailed, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	c.Log.Infof("wrote %s", envPath)

	ui.Success("✅ GitHub token saved to %s", display)
	ui.Success("🎉 Setup complete! You can now run the application.")
	ui.BlankLine()
	ui.Line("To start the application:")
	ui.Line("Backend:  cd backend && python app.py")
	ui.Line("Frontend: cd frontend && npm start")

	if c.Verify {
		c.verify(ctx, token)
	}

	return OutcomeSaved, nil
}

// verify reports what GitHub thinks of the token. It never fails the run.
func (c *Configurator) verify(ctx context.Context, token string) {
	verifier := c.Verifier
	if verifier == nil {
		verifier = github.NewVerifier()
	}

	ui.BlankLine()
	ui.Info("🔍 Verifying token with GitHub...")

	result, err := verifier.CheckScopes(ctx, token)
	if err != nil {
		c.Log.Debugf("verification error: %v", err)
		ui.Warn("⚠️  Could not verify token: %v", err)
		return
	}

	if !result.Valid {
		ui.Warn("⚠️  GitHub rejected the token (HTTP %d). Generate a new one at %s", result.StatusCode, github.TokenSettingsURL)
		return
	}

	if len(result.BroadScopes) > 0 {
		ui.Warn("⚠️  %s", github.FormatBroadScopesWarning(result.BroadScopes))
		return
	}

	ui.Success("✅ GitHub accepted the token")
}

func printInstructions() {
	ui.Banner("🚀 GitHub Analyzer Setup")
	ui.Line("To use the GitHub API effectively, you need a Personal Access Token.")
	ui.Line("This increases the rate limit from 60 to 5,000 requests per hour.")
	ui.BlankLine()
	ui.Info("📋 Steps to get your token:")
	ui.Line("1. Go to: %s", github.TokenSettingsURL)
	ui.Line("2. Click 'Generate new token' → 'Generate new token (classic)'")
	ui.Line("3. Give it a name like 'GitHub Analyzer'")
	ui.Line("4. Select scopes: ✅ public_repo (or ✅ repo for private repos)")
	ui.Line("5. Click 'Generate token'")
	ui.Line("6. Copy the token (it starts with 'ghp_' or 'github_pat_')")
	ui.BlankLine()
}
