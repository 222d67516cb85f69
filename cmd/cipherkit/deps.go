package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/robalyx/cipherkit/internal/setup"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// cliDependencies holds the common dependencies needed by CLI commands.
type cliDependencies struct {
	stdin  io.Reader
	stdout io.Writer
}

// initialize sets up the application from the global flags.
func (d *cliDependencies) initialize(ctx context.Context, c *cli.Command) (*setup.App, error) {
	app, err := setup.InitializeApp(ctx, setup.Options{
		ConfigPath: c.String("config"),
		LogDir:     c.String("log-dir"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}

// run initializes the application, runs action and logs its failure.
func (d *cliDependencies) run(ctx context.Context, c *cli.Command, action func(app *setup.App) error) error {
	app, err := d.initialize(ctx, c)
	if err != nil {
		return err
	}
	defer app.Cleanup()

	if err := action(app); err != nil {
		app.Logger.Error("Command failed",
			zap.String("command", c.Name),
			zap.Error(err))

		return err
	}

	return nil
}

// readText joins the command arguments with spaces, or reads stdin when
// there are no arguments or the only argument is "-".
func (d *cliDependencies) readText(c *cli.Command) (string, error) {
	args := c.Args().Slice()
	if len(args) > 0 && (len(args) != 1 || args[0] != "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(d.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

// write prints value as JSON when --json is set and text otherwise.
func (d *cliDependencies) write(c *cli.Command, value any, text string) error {
	if c.Bool("json") {
		data, err := sonic.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		text = string(data)
	}

	if _, err := fmt.Fprintln(d.stdout, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
