// Package cli builds the command-line entry point for the setup tool.
//
// The command takes no positional arguments. Supported flags:
//   - --verbose: Print info-level log messages
//   - --debug: Print debug-level log messages (implies --verbose)
//   - --verify: Check the saved token against the GitHub API
//   - --version: Print the version and exit
//
// Example usage:
//
//	cmd := cli.NewRootCommand("1.0.0")
//	if err := cmd.Execute(); err != nil {
//	    os.Exit(1)
//	}
package cli
