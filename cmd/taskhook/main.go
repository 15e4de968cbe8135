package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"basegraph.app/taskhook/cmd/taskhook/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := commands.NewRootCommand()
	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
