package cracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/robalyx/cipherkit/internal/cipher"
	"github.com/robalyx/cipherkit/internal/detector"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCiphertext is returned when there is nothing to crack.
	ErrEmptyCiphertext = errors.New("ciphertext is empty")
	// ErrNoMatch is returned when no shift key produces English text.
	ErrNoMatch = errors.New("no shift key produced English text")
)

// Oracle scores how much of a text is made of known words.
type Oracle interface {
	Percentage(text string) (float64, error)
}

// Candidate is the result of decrypting with a single shift key.
type Candidate struct {
	Key        cipher.ShiftKey `json:"key"`
	Plaintext  string          `json:"plaintext"`
	Percentage float64         `json:"percentage"`
	Match      bool            `json:"match"`
}

// Result is the key and plaintext recovered from a ciphertext.
type Result struct {
	Key        cipher.ShiftKey `json:"key"`
	Plaintext  string          `json:"plaintext"`
	Percentage float64         `json:"percentage"`
}

// Cracker recovers Caesar shift keys by trying every key and asking the
// oracle whether the output reads as English.
type Cracker struct {
	oracle      Oracle
	logger      *zap.Logger
	threshold   float64
	concurrency int
}

// Option configures a Cracker.
type Option func(*Cracker)

// WithThreshold sets the minimum word percentage for a match.
func WithThreshold(threshold float64) Option {
	return func(c *Cracker) {
		c.threshold = threshold
	}
}

// WithConcurrency sets how many keys are tried at once.
func WithConcurrency(n int) Option {
	return func(c *Cracker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cracker) {
		c.logger = logger.Named("cracker")
	}
}

// New creates a Cracker backed by oracle.
func New(oracle Oracle, opts ...Option) *Cracker {
	c := &Cracker{
		oracle:      oracle,
		logger:      zap.NewNop(),
		threshold:   detector.DefaultThreshold,
		concurrency: cipher.AlphabetSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Candidates decrypts ciphertext with every shift key and scores each
// plaintext. Candidates are returned in key order.
func (c *Cracker) Candidates(ctx context.Context, ciphertext string) ([]Candidate, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return nil, ErrEmptyCiphertext
	}

	p := pool.NewWithResults[Candidate]().
		WithMaxGoroutines(c.concurrency).
		WithContext(ctx).
		WithCancelOnError()

	for _, key := range cipher.Keys() {
		p.Go(func(ctx context.Context) (Candidate, error) {
			if err := ctx.Err(); err != nil {
				return Candidate{}, err
			}

			plaintext := key.Decrypt(ciphertext)

			percentage, err := c.oracle.Percentage(plaintext)
			if err != nil {
				return Candidate{}, fmt.Errorf("failed to score key %s: %w", key, err)
			}

			return Candidate{
				Key:        key,
				Plaintext:  plaintext,
				Percentage: percentage,
				Match:      percentage >= c.threshold,
			}, nil
		})
	}

	candidates, err := p.Wait()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		return a.Key.Int() - b.Key.Int()
	})

	c.logger.Debug("Scored all shift keys",
		zap.Int("candidates", len(candidates)),
		zap.Float64("threshold", c.threshold))

	return candidates, nil
}

// Crack returns the first key, in alphabet order, whose plaintext meets the
// threshold.
func (c *Cracker) Crack(ctx context.Context, ciphertext string) (*Result, error) {
	candidates, err := c.Candidates(ctx, ciphertext)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if !candidate.Match {
			continue
		}

		c.logger.Debug("Recovered shift key",
			zap.String("key", candidate.Key.String()),
			zap.Float64("percentage", candidate.Percentage))

		return &Result{
			Key:        candidate.Key,
			Plaintext:  candidate.Plaintext,
			Percentage: candidate.Percentage,
		}, nil
	}

	return nil, ErrNoMatch
}
