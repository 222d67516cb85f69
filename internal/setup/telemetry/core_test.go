package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetErrorCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		function string
		expected string
	}{
		{"github.com/robalyx/cipherkit/internal/cracker.(*Cracker).Crack", "cracker"},
		{"github.com/robalyx/cipherkit/internal/detector.(*Detector).LoadFrom", "detector"},
		{"github.com/robalyx/cipherkit/internal/wordlist.ValidateDictionary", "wordlist"},
		{"github.com/robalyx/cipherkit/internal/cipher.Encrypt", "cipher"},
		{"github.com/robalyx/cipherkit/internal/setup.InitializeApp", "setup"},
		{"main.run", "application"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			ent := zapcore.Entry{Caller: zapcore.EntryCaller{Defined: true, Function: tt.function}}
			assert.Equal(t, tt.expected, getErrorCategory(ent))
		})
	}
}

func TestFieldValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", fieldValue(zap.Error(errors.New("boom"))))
	assert.Equal(t, "26", fieldValue(zap.Int("keys", 26)))
	assert.Equal(t, "caesar", fieldValue(zap.String("mode", "caesar")))
}

func TestCoreForwardsOnlyErrors(t *testing.T) {
	t.Parallel()

	core := NewCore(zapcore.InfoLevel)

	assert.Nil(t, core.Check(zapcore.Entry{Level: zapcore.DebugLevel}, nil))
	assert.NotNil(t, core.Check(zapcore.Entry{Level: zapcore.ErrorLevel}, nil))

	assert.NoError(t, core.Write(zapcore.Entry{Level: zapcore.InfoLevel, Message: "ignored"}, nil))
	assert.NoError(t, core.Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "forwarded"}, nil))
	assert.NoError(t, core.Sync())
}
