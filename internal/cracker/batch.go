package cracker

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of cracking one ciphertext in a batch.
type BatchResult struct {
	Ciphertext string  `json:"ciphertext"`
	Result     *Result `json:"result,omitempty"`
	Err        error   `json:"-"`
}

// CrackBatch cracks several ciphertexts concurrently. Failures for a single
// ciphertext are recorded on its BatchResult; only context cancellation
// aborts the batch. Results keep the order of ciphertexts.
func (c *Cracker) CrackBatch(ctx context.Context, ciphertexts []string) ([]BatchResult, error) {
	results := make([]BatchResult, len(ciphertexts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, ciphertext := range ciphertexts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := c.Crack(ctx, ciphertext)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}

			results[i] = BatchResult{
				Ciphertext: ciphertext,
				Result:     result,
				Err:        err,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for i, result := range results {
		if result.Err == nil {
			continue
		}

		failed++

		if errors.Is(result.Err, ErrNoMatch) {
			c.logger.Warn("No shift key matched ciphertext", zap.Int("index", i))
			continue
		}

		c.logger.Error("Failed to crack ciphertext",
			zap.Int("index", i),
			zap.Error(result.Err))
	}

	c.logger.Debug("Cracked ciphertext batch",
		zap.Int("total", len(results)),
		zap.Int("failed", failed))

	return results, nil
}
