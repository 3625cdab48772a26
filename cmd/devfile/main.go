// Command devfile creates and extends the devfile of a project interactively.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/devfile-wizard/internal/adapters/in/cli"
	"github.com/bnema/devfile-wizard/pkg/version"
)

// Build information, set via -ldflags.
var (
	buildVersion = "dev"
	commit       = "unknown"
	date         = "unknown"
)

func main() {
	version.Set(buildVersion, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
