package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"basegraph.app/taskhook/internal/signature"
)

// NewSignCommand returns the subcommand that signs a payload the way
// GitHub does, for replaying deliveries with curl.
func NewSignCommand() *cli.Command {
	return &cli.Command{
		Name:      "sign",
		Usage:     "Print the signature header GitHub would send for a payload",
		ArgsUsage: "<file|->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "secret",
				Aliases:  []string{"s"},
				Usage:    "Webhook secret",
				Sources:  cli.EnvVars("GITHUB_WEBHOOK_SECRET"),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "sha256 or sha1",
				Value:   string(signature.SHA256),
			},
		},
		Action: runSign,
	}
}

func runSign(_ context.Context, cmd *cli.Command) error {
	var header string
	alg := signature.Algorithm(cmd.String("algorithm"))
	switch alg {
	case signature.SHA256:
		header = signature.HeaderSHA256
	case signature.SHA1:
		header = signature.HeaderSHA1
	default:
		return fmt.Errorf("unsupported algorithm %q", alg)
	}

	body, err := readPayload(cmd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "%s: %s\n", header, signature.Sign(body, cmd.String("secret"), alg))
	return err
}

func readPayload(cmd *cli.Command) ([]byte, error) {
	path := cmd.Args().First()
	switch path {
	case "":
		return nil, errors.New("payload file is required (use - for stdin)")
	case "-":
		body, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return body, nil
	default:
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		return body, nil
	}
}
