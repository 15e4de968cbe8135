package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"basegraph.app/taskhook/internal/reference"
)

type extractedReference struct {
	TaskKey   string `json:"task_key"`
	IsClosing bool   `json:"is_closing"`
}

// NewExtractCommand returns the subcommand that shows which task keys a
// commit message would touch.
func NewExtractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "List the task references found in a message",
		ArgsUsage: "<message...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print references as JSON",
			},
		},
		Action: runExtract,
	}
}

func runExtract(_ context.Context, cmd *cli.Command) error {
	text := strings.Join(cmd.Args().Slice(), " ")
	refs := reference.Extract(text)
	w := cmd.Root().Writer

	if cmd.Bool("json") {
		out := make([]extractedReference, 0, len(refs))
		for _, r := range refs {
			out = append(out, extractedReference{TaskKey: r.TaskKey, IsClosing: r.IsClosing})
		}
		return json.NewEncoder(w).Encode(out)
	}

	if len(refs) == 0 {
		_, err := fmt.Fprintln(w, "no task references")
		return err
	}
	for _, r := range refs {
		action := "link"
		if r.IsClosing {
			action = "close"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.TaskKey, action); err != nil {
			return err
		}
	}
	return nil
}
