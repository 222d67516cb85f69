package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robalyx/cipherkit/internal/cipher"
	"github.com/robalyx/cipherkit/internal/cracker"
	"github.com/robalyx/cipherkit/internal/setup"
	"github.com/robalyx/cipherkit/internal/wordlist"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var (
	errCrackFailed      = errors.New("no shift key found for some inputs")
	errDictionaryIssues = errors.New("dictionary has issues")
	errInvalidThreshold = errors.New("threshold must be between 0 and 100")
)

// transformOutput is the JSON result of encrypt, decrypt and reverse.
type transformOutput struct {
	Mode   string `json:"mode"`
	Key    string `json:"key,omitempty"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// detectOutput is the JSON result of detect.
type detectOutput struct {
	Text       string  `json:"text"`
	Percentage float64 `json:"percentage"`
	Threshold  float64 `json:"threshold"`
	English    bool    `json:"english"`
}

// crackOutput is the JSON result of crack for a single ciphertext.
type crackOutput struct {
	Ciphertext string              `json:"ciphertext"`
	Result     *cracker.Result     `json:"result,omitempty"`
	Candidates []cracker.Candidate `json:"candidates,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func dictionaryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dictionary",
			Aliases: []string{"d"},
			Usage:   "Dictionary file (defaults to the configured dictionary)",
		},
		&cli.Float64Flag{
			Name:    "threshold",
			Aliases: []string{"t"},
			Usage:   "Minimum percentage of known words, 0 to 100 (defaults to the configured threshold)",
		},
	}
}

// transformCommand builds the encrypt and decrypt commands.
func transformCommand(deps *cliDependencies, name, usage string, decrypt bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[TEXT...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "key",
				Aliases: []string{"k"},
				Usage:   "Shift key letter (caesar mode)",
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Value:   cipher.ModeCaesar.String(),
				Usage:   "Cipher to use (" + strings.Join(cipher.ModeStrings(), ", ") + ")",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return deps.run(ctx, c, func(app *setup.App) error {
				mode, err := cipher.ModeString(c.String("mode"))
				if err != nil {
					return fmt.Errorf("%w: %s", cipher.ErrInvalidMode, c.String("mode"))
				}

				// Validate the key before reading any input
				cph, err := cipher.New(mode, c.String("key"))
				if err != nil {
					return err
				}

				text, err := deps.readText(c)
				if err != nil {
					return err
				}

				var result string
				if decrypt {
					result = cph.Decrypt(text)
				} else {
					result = cph.Encrypt(text)
				}

				app.Logger.Debug("Transformed text",
					zap.String("command", name),
					zap.String("mode", mode.String()),
					zap.Int("length", len(text)))

				output := transformOutput{Mode: mode.String(), Input: text, Output: result}
				if mode == cipher.ModeCaesar {
					output.Key = strings.ToUpper(c.String("key"))
				}

				return deps.write(c, output, result)
			})
		},
	}
}

// reverseCommand builds the reverse command.
func reverseCommand(deps *cliDependencies) *cli.Command {
	return &cli.Command{
		Name:      "reverse",
		Usage:     "Reverse text (encrypts and decrypts)",
		ArgsUsage: "[TEXT...]",
		Action: func(_ context.Context, c *cli.Command) error {
			text, err := deps.readText(c)
			if err != nil {
				return err
			}

			result := cipher.Reverse(text)

			return deps.write(c, transformOutput{
				Mode:   cipher.ModeReverse.String(),
				Input:  text,
				Output: result,
			}, result)
		},
	}
}

// detectCommand builds the detect command.
func detectCommand(deps *cliDependencies) *cli.Command {
	return &cli.Command{
		Name:      "detect",
		Usage:     "Check whether text looks like English",
		ArgsUsage: "[TEXT...]",
		Flags:     dictionaryFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return deps.run(ctx, c, func(app *setup.App) error {
				threshold, err := thresholdFlag(c, app.Config.Detector.Threshold)
				if err != nil {
					return err
				}

				d, err := app.NewDetector(c.String("dictionary"))
				if err != nil {
					return err
				}

				text, err := deps.readText(c)
				if err != nil {
					return err
				}

				percentage, err := d.Percentage(text)
				if err != nil {
					return err
				}

				output := detectOutput{
					Text:       text,
					Percentage: percentage,
					Threshold:  threshold,
					English:    percentage >= threshold,
				}

				return deps.write(c, output,
					fmt.Sprintf("English: %t (%.2f%% known words, threshold %.2f%%)", output.English, percentage, threshold))
			})
		},
	}
}

// crackCommand builds the crack command. Every non-empty input line is
// cracked separately.
func crackCommand(deps *cliDependencies) *cli.Command {
	return &cli.Command{
		Name:      "crack",
		Usage:     "Recover the shift key of Caesar ciphertext by trying every key",
		ArgsUsage: "[CIPHERTEXT...]",
		Flags: append(dictionaryFlags(),
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of keys tried at once (defaults to the configured concurrency)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show the plaintext of every key",
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			return deps.run(ctx, c, func(app *setup.App) error {
				threshold, err := thresholdFlag(c, app.Config.Detector.Threshold)
				if err != nil {
					return err
				}

				d, err := app.NewDetector(c.String("dictionary"))
				if err != nil {
					return err
				}

				text, err := deps.readText(c)
				if err != nil {
					return err
				}

				lines := nonEmptyLines(text)
				if len(lines) == 0 {
					return cracker.ErrEmptyCiphertext
				}

				opts := []cracker.Option{cracker.WithThreshold(threshold)}
				if c.IsSet("concurrency") {
					opts = append(opts, cracker.WithConcurrency(c.Int("concurrency")))
				}

				cr := app.NewCracker(d, opts...)

				var outputs []crackOutput
				if c.Bool("verbose") {
					outputs, err = crackVerbose(ctx, cr, lines)
				} else {
					outputs, err = crackLines(ctx, cr, lines)
				}

				if err != nil {
					return err
				}

				if err := deps.write(c, outputs, formatCrackOutputs(outputs, c.Bool("verbose"))); err != nil {
					return err
				}

				for _, output := range outputs {
					if output.Result == nil {
						return errCrackFailed
					}
				}

				return nil
			})
		},
	}
}

// crackLines cracks every line concurrently.
func crackLines(ctx context.Context, cr *cracker.Cracker, lines []string) ([]crackOutput, error) {
	results, err := cr.CrackBatch(ctx, lines)
	if err != nil {
		return nil, err
	}

	outputs := make([]crackOutput, 0, len(results))
	for _, result := range results {
		output := crackOutput{Ciphertext: result.Ciphertext, Result: result.Result}
		if result.Err != nil {
			output.Error = result.Err.Error()
		}

		outputs = append(outputs, output)
	}

	return outputs, nil
}

// crackVerbose scores every key of every line.
func crackVerbose(ctx context.Context, cr *cracker.Cracker, lines []string) ([]crackOutput, error) {
	outputs := make([]crackOutput, 0, len(lines))

	for _, line := range lines {
		candidates, err := cr.Candidates(ctx, line)
		if err != nil {
			return nil, err
		}

		output := crackOutput{Ciphertext: line, Candidates: candidates}

		for _, candidate := range candidates {
			if candidate.Match {
				output.Result = &cracker.Result{
					Key:        candidate.Key,
					Plaintext:  candidate.Plaintext,
					Percentage: candidate.Percentage,
				}

				break
			}
		}

		if output.Result == nil {
			output.Error = cracker.ErrNoMatch.Error()
		}

		outputs = append(outputs, output)
	}

	return outputs, nil
}

// formatCrackOutputs renders crack results as text.
func formatCrackOutputs(outputs []crackOutput, verbose bool) string {
	var sb strings.Builder

	for i, output := range outputs {
		if i > 0 {
			sb.WriteString("\n")
		}

		if verbose {
			for _, candidate := range output.Candidates {
				marker := "-"
				if candidate.Match {
					marker = "+"
				}

				fmt.Fprintf(&sb, "[%s] %s (%.2f%%): %s\n", marker, candidate.Key, candidate.Percentage, candidate.Plaintext)
			}
		}

		if output.Result == nil {
			fmt.Fprintf(&sb, "No key found: %s", output.Error)
			continue
		}

		fmt.Fprintf(&sb, "Key %s: %s", output.Result.Key, output.Result.Plaintext)
	}

	return sb.String()
}

// dictionaryCommand builds the dictionary command.
func dictionaryCommand(deps *cliDependencies) *cli.Command {
	return &cli.Command{
		Name:  "dictionary",
		Usage: "Dictionary maintenance tools",
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Check a plain-text or JSONC dictionary for errors",
				ArgsUsage: "PATH",
				Description: `Check a dictionary for entries the detector cannot use:
- Duplicate words (ignoring case)
- Empty lines
- Surrounding whitespace
- Entries containing whitespace
- Entries without alphabet letters

Returns exit code 1 if errors found, 0 if clean.`,
				Action: func(ctx context.Context, c *cli.Command) error {
					return deps.run(ctx, c, func(app *setup.App) error {
						if c.Args().Len() != 1 {
							return fmt.Errorf("expected exactly one dictionary path, got %d", c.Args().Len())
						}

						path := c.Args().First()

						entries, err := wordlist.ReadEntries(path)
						if err != nil {
							return err
						}

						issues := wordlist.ValidateDictionary(entries)
						if issues == nil {
							issues = []wordlist.Issue{}
						}

						app.Logger.Debug("Checked dictionary",
							zap.String("path", path),
							zap.Int("entries", len(entries)),
							zap.Int("issues", len(issues)))

						var sb strings.Builder
						if len(issues) == 0 {
							sb.WriteString("No errors found")
						} else {
							fmt.Fprintf(&sb, "Found %d error(s):\n", len(issues))
							for _, issue := range issues {
								fmt.Fprintf(&sb, "\n• %s", issue.Description)
							}
						}

						if err := deps.write(c, issues, sb.String()); err != nil {
							return err
						}

						if len(issues) > 0 {
							return errDictionaryIssues
						}

						return nil
					})
				},
			},
		},
	}
}

// thresholdFlag returns the --threshold flag when it was given and fallback
// otherwise.
func thresholdFlag(c *cli.Command, fallback float64) (float64, error) {
	if !c.IsSet("threshold") {
		return fallback, nil
	}

	threshold := c.Float64("threshold")
	if threshold < 0 || threshold > 100 {
		return 0, fmt.Errorf("%w: %.2f", errInvalidThreshold, threshold)
	}

	return threshold, nil
}

// nonEmptyLines splits text into lines, dropping blank ones.
func nonEmptyLines(text string) []string {
	var lines []string

	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
