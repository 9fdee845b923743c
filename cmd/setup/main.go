package main

import (
	"context"
	"errors"
	"os"

	"github.com/rickgorman/github-analyzer/internal/cli"
	"github.com/rickgorman/github-analyzer/internal/setup"
	"github.com/rickgorman/github-analyzer/internal/ui"
)

const version = "1.0.0"

func main() {
	cmd := cli.NewRootCommand(version)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, setup.ErrPersist) {
			ui.Fail("❌ Could not save the GitHub token: %v", err)
			ui.Info("Check that backend/ is writable, or set GITHUB_TOKEN in backend/.env manually")
		} else {
			ui.Fail("Error: %v", err)
			ui.Info("Run %s for usage information", ui.Bold("setup --help"))
		}
		os.Exit(1)
	}
}
