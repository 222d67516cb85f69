package cracker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/robalyx/cipherkit/internal/cipher"
	"github.com/robalyx/cipherkit/internal/cracker"
	"github.com/robalyx/cipherkit/internal/detector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

var errOracle = errors.New("oracle unavailable")

type failingOracle struct{}

func (failingOracle) Percentage(string) (float64, error) {
	return 0, errOracle
}

func newCracker(t *testing.T, opts ...cracker.Option) *cracker.Cracker {
	t.Helper()

	d := detector.New()
	d.Add("in", "fair", "where", "we", "lay", "our", "scene", "the", "way", "of", "dragon")

	opts = append([]cracker.Option{cracker.WithLogger(zaptest.NewLogger(t))}, opts...)

	return cracker.New(d, opts...)
}

func TestCrack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plaintext string
		key       string
	}{
		{
			name:      "key B",
			plaintext: "The way of the dragon",
			key:       "B",
		},
		{
			name:      "key W",
			plaintext: "In fair Verona where we lay our scene",
			key:       "W",
		},
		{
			name:      "identity key",
			plaintext: "the way of the dragon",
			key:       "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ciphertext, err := cipher.Encrypt(tt.plaintext, tt.key)
			require.NoError(t, err)

			result, err := newCracker(t, cracker.WithConcurrency(4)).Crack(context.Background(), ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tt.key, result.Key.String())
			assert.Equal(t, tt.plaintext, result.Plaintext)
			assert.GreaterOrEqual(t, result.Percentage, detector.DefaultThreshold)
		})
	}
}

func TestCrackErrors(t *testing.T) {
	t.Parallel()

	c := newCracker(t)

	_, err := c.Crack(context.Background(), "   ")
	require.ErrorIs(t, err, cracker.ErrEmptyCiphertext)

	_, err = c.Crack(context.Background(), "zzzz qqqq")
	require.ErrorIs(t, err, cracker.ErrNoMatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Crack(ctx, "Uif xbz pg uif esbhpo")
	require.ErrorIs(t, err, context.Canceled)

	_, err = cracker.New(failingOracle{}).Crack(context.Background(), "Uif xbz")
	require.ErrorIs(t, err, errOracle)
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	candidates, err := newCracker(t).Candidates(context.Background(), "Uif xbz pg uif esbhpo")
	require.NoError(t, err)
	require.Len(t, candidates, cipher.AlphabetSize)

	for i, candidate := range candidates {
		assert.Equal(t, i, candidate.Key.Int())
		assert.Equal(t, candidate.Key.String() == "B", candidate.Match)
	}

	assert.Equal(t, "The way of the dragon", candidates[1].Plaintext)
	assert.InDelta(t, 100.0, candidates[1].Percentage, 1e-9)
}

func TestThreshold(t *testing.T) {
	t.Parallel()

	// Only three of the five words are known, which is 60 percent.
	ciphertext := "Uif xbz pg ufhcjf bcdef"

	_, err := newCracker(t).Crack(context.Background(), ciphertext)
	require.ErrorIs(t, err, cracker.ErrNoMatch)

	result, err := newCracker(t, cracker.WithThreshold(60)).Crack(context.Background(), ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "B", result.Key.String())
}

func TestCrackBatch(t *testing.T) {
	t.Parallel()

	results, err := newCracker(t, cracker.WithConcurrency(2)).CrackBatch(context.Background(), []string{
		"Uif xbz pg uif esbhpo",
		"zzzz qqqq",
		"  ",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Equal(t, "B", results[0].Result.Key.String())
	assert.Equal(t, "Uif xbz pg uif esbhpo", results[0].Ciphertext)

	require.ErrorIs(t, results[1].Err, cracker.ErrNoMatch)
	assert.Nil(t, results[1].Result)

	require.ErrorIs(t, results[2].Err, cracker.ErrEmptyCiphertext)
}

func TestCrackBatchCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newCracker(t).CrackBatch(ctx, []string{"Uif xbz"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCrackBatchLogsFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	c := cracker.New(failingOracle{}, cracker.WithLogger(zap.New(core)))

	results, err := c.CrackBatch(context.Background(), []string{"Uif xbz"})
	require.NoError(t, err)
	require.ErrorIs(t, results[0].Err, errOracle)

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errorLogs, 1)
	assert.Equal(t, "Failed to crack ciphertext", errorLogs[0].Message)
	assert.Equal(t, "cracker", errorLogs[0].LoggerName)

	core, logs = observer.New(zapcore.DebugLevel)
	_, err = newCracker(t, cracker.WithLogger(zap.New(core))).CrackBatch(context.Background(), []string{"zzzz qqqq"})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
