package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	return newApp(os.Stdin, os.Stdout).Run(context.Background(), os.Args)
}

// newApp builds the command tree reading input from stdin and writing results to stdout.
func newApp(stdin io.Reader, stdout io.Writer) *cli.Command {
	deps := &cliDependencies{
		stdin:  stdin,
		stdout: stdout,
	}

	return &cli.Command{
		Name:      "cipherkit",
		Usage:     "Encrypt, decrypt and crack classical text ciphers",
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the config file (searches the default config paths when empty)",
			},
			&cli.StringFlag{
				Name:  "log-dir",
				Usage: "Directory for session log files (logs go to stderr when empty)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON",
			},
		},
		Commands: []*cli.Command{
			transformCommand(deps, "encrypt", "Encrypt text", false),
			transformCommand(deps, "decrypt", "Decrypt text", true),
			reverseCommand(deps),
			detectCommand(deps),
			crackCommand(deps),
			dictionaryCommand(deps),
		},
	}
}
