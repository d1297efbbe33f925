// Package main is the entry point for the wxpack pipeline compositor.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/wxpack/cmd/wxpack/commands"
	"go.trai.ch/wxpack/internal/app"
	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/wxpack/internal/engine/profile"
	_ "go.trai.ch/wxpack/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI. The environment is read exactly once.
	cli := commands.New(components.App, profile.EnvMap(os.Environ()))

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrCopySourceMissing) {
			// The check command already listed what is missing.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
