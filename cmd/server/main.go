package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"basegraph.app/taskhook/core/config"
	"basegraph.app/taskhook/internal/server"
)

func main() {
	fmt.Printf("%s\n", banner)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	if err := server.Run(ctx, cfg); err != nil {
		slog.ErrorContext(ctx, "taskhook exited", "error", err)
		os.Exit(1)
	}
}

const banner = `
 _            _    _                 _
| |_ __ _ ___| | _| |__   ___   ___ | | __
| __/ _' / __| |/ / '_ \ / _ \ / _ \| |/ /
| || (_| \__ \   <| | | | (_) | (_) |   <
 \__\__,_|___/_|\_\_| |_|\___/ \___/|_|\_\
`
