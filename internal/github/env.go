package github

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

const (
	// DefaultEnvDir is the backend directory, relative to the working directory.
	DefaultEnvDir = "backend"

	// EnvFileName is the name of the configuration record inside DefaultEnvDir.
	EnvFileName = ".env"

	// DefaultPort is the fixed PORT value written for the backend.
	DefaultPort = "5000"
)

const envTemplate = `# GitHub API Configuration
# Get your token from: %s
# Permissions needed: public_repo (or repo for private repos)
%s=%s

# Flask Configuration
PORT=%s
`

// RenderEnv returns the full .env content for token.
// The token is interpolated as-is, with no quoting or escaping.
func RenderEnv(token string) string {
	return fmt.Sprintf(envTemplate, TokenSettingsURL, TokenKey, token, DefaultPort)
}

// ReadEnvFile returns the content of the .env file at path.
// A missing file, or a parent path that is not a directory, is not an
// error: exists is false and content empty.
func ReadEnvFile(path string) (content string, exists bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), true, nil
}

// WriteEnvFile creates the parent directory of path if needed and replaces
// the file with RenderEnv(token). Prior content is discarded, never merged.
func WriteEnvFile(path, token string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(RenderEnv(token)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// TokenFromEnv extracts the GITHUB_TOKEN value from .env content.
// Supports formats:
//   - GITHUB_TOKEN=value
//   - export GITHUB_TOKEN=value
//   - GITHUB_TOKEN = "value" (single or double quotes)
//
// Returns an empty string when no assignment with a value is found.
func TokenFromEnv(content string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if token := extractTokenFromLine(line, TokenKey); token != "" {
			return token
		}
	}
	return ""
}

// extractTokenFromLine returns the value of key from a single assignment line.
func extractTokenFromLine(line, key string) string {
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

	rest, ok := strings.CutPrefix(line, key)
	if !ok {
		return ""
	}

	rest, ok = strings.CutPrefix(strings.TrimSpace(rest), "=")
	if !ok {
		return ""
	}

	return strings.TrimSpace(strings.Trim(strings.TrimSpace(rest), `"'`))
}
