// Package github holds the GitHub token rules used by the setup tool.
//
// It covers three things:
//
//   - The surface shape of a personal access token (known prefixes and the
//     placeholder value shipped in example files)
//   - The backend/.env configuration record: rendering, inspecting, writing
//   - Optional online verification of a token against the GitHub API
//
// Shape checks are deliberately plain substring and prefix tests. A token
// that does not look like a GitHub token is reported, never rejected.
//
// Example usage:
//
//	content, exists, err := github.ReadEnvFile("backend/.env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if exists && github.IsConfigured(content) {
//	    return
//	}
//
//	if !github.HasKnownPrefix(token) {
//	    log.Printf("token does not look like a GitHub token")
//	}
//
//	if err := github.WriteEnvFile("backend/.env", token); err != nil {
//	    log.Fatal(err)
//	}
package github
