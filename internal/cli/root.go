// Package cli handles command-line argument parsing and execution.
package cli

import (
	"github.com/spf13/cobra"

	logger "github.com/rickgorman/github-analyzer/internal/logging"
	"github.com/rickgorman/github-analyzer/internal/setup"
)

// Options represents parsed command-line flags.
type Options struct {
	Verbose bool
	Debug   bool
	Verify  bool
}

// RunFunc performs the setup with the parsed options.
type RunFunc func(cmd *cobra.Command, opts Options) error

// NewRootCommand returns the setup command wired to the default runner.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(version, runSetup)
}

func newRootCommand(version string, run RunFunc) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure the GitHub token for GitHub Analyzer",
		Long: `Setup prompts for a GitHub Personal Access Token and writes it to backend/.env
together with the backend PORT.

A token raises the GitHub API rate limit from 60 to 5,000 requests per hour.
If backend/.env already holds a token, nothing is changed.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print info-level log messages")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "print debug-level log messages")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "check the saved token against the GitHub API")

	return cmd
}

func runSetup(cmd *cobra.Command, opts Options) error {
	c := setup.NewConfigurator()
	c.Verify = opts.Verify
	c.Log = logger.Logger{Verbose: opts.Verbose, Debug: opts.Debug, Out: cmd.ErrOrStderr()}

	outcome, err := c.Run(cmd.Context())
	if err != nil {
		return err
	}
	c.Log.Infof("setup finished: %s", outcome)
	return nil
}
