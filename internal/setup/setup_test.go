package setup_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalyx/cipherkit/internal/cracker"
	"github.com/robalyx/cipherkit/internal/detector"
	"github.com/robalyx/cipherkit/internal/setup"
	"github.com/robalyx/cipherkit/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestInitializeApp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dictionary := writeFile(t, dir, "dictionary.txt", "the\nway\nof\ndragon\n")
	configPath := writeFile(t, dir, config.FileName, `
version = 1

[debug]
log_level = "debug"

[detector]
dictionary_path = "`+filepath.ToSlash(dictionary)+`"
threshold = 80

[cracker]
concurrency = 3
`)

	var console bytes.Buffer

	app, err := setup.InitializeApp(context.Background(), setup.Options{
		ConfigPath: configPath,
		Console:    &console,
	})
	require.NoError(t, err)
	defer app.Cleanup()

	assert.Equal(t, configPath, app.ConfigPath)
	assert.InDelta(t, 80.0, app.Config.Detector.Threshold, 1e-9)

	d, err := app.NewDetector("")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())
	assert.Contains(t, console.String(), "Loaded dictionary")

	result, err := app.NewCracker(d).Crack(context.Background(), "Uif xbz pg uif esbhpo")
	require.NoError(t, err)
	assert.Equal(t, "B", result.Key.String())

	// An explicit zero threshold accepts the first key
	result, err = app.NewCracker(d, cracker.WithThreshold(0)).Crack(context.Background(), "zzzz qqqq")
	require.NoError(t, err)
	assert.Equal(t, "A", result.Key.String())

	_, err = app.NewCracker(d).Crack(context.Background(), "zzzz qqqq")
	require.ErrorIs(t, err, cracker.ErrNoMatch)
}

func TestInitializeAppErrors(t *testing.T) {
	t.Parallel()

	_, err := setup.InitializeApp(context.Background(), setup.Options{
		ConfigPath: filepath.Join(t.TempDir(), config.FileName),
		Console:    &bytes.Buffer{},
	})
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)

	configPath := writeFile(t, t.TempDir(), config.FileName, "version = 1\n")

	app, err := setup.InitializeApp(context.Background(), setup.Options{
		ConfigPath: configPath,
		Console:    &bytes.Buffer{},
	})
	require.NoError(t, err)

	_, err = app.NewDetector(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, detector.ErrDictionaryNotFound)
}
