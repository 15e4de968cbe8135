package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"basegraph.app/taskhook/core/config"
	"basegraph.app/taskhook/internal/server"
)

// NewServeCommand returns the server subcommand.
func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the webhook server (configured from the environment)",
		Action: func(ctx context.Context, _ *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return server.Run(ctx, cfg)
		},
	}
}
