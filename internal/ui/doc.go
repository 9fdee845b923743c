// Package ui provides terminal output formatting and prompts for the setup tool.
//
// This package handles all user-facing console I/O:
//   - Colored output (cyan, green, red, yellow)
//   - Banner and horizontal rules
//   - Info, success, failure, and warning messages
//   - Interactive prompts (free text, secret, yes/no confirmation)
//
// All output goes to ui.Out (defaults to os.Stdout) and all input is read
// from ui.In (defaults to os.Stdin) to allow testing and redirection.
// Call SetInput after replacing the input so buffered state is reset.
//
// Example usage:
//
//	ui.Banner("GitHub Analyzer Setup")
//	token := ui.AskSecret("🔑 Paste your GitHub token here: ")
//	if !ui.Confirm("Continue anyway? (y/N): ") {
//	    return
//	}
//	ui.Success("GitHub token saved")
//
// Message prefixes are passed through verbatim; color is applied around
// them and disabled automatically when NO_COLOR is set or Out is not a
// terminal.
package ui
