package commands

import (
	"github.com/urfave/cli/v3"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "taskhook",
		Usage: "GitHub webhook automation for the task board",
		Commands: []*cli.Command{
			NewServeCommand(),
			NewSignCommand(),
			NewExtractCommand(),
		},
	}
}
