package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/robalyx/cipherkit/internal/cracker"
	"github.com/robalyx/cipherkit/internal/detector"
	"github.com/robalyx/cipherkit/internal/setup/config"
	"github.com/robalyx/cipherkit/internal/setup/telemetry"
	"go.uber.org/zap"
)

// Options controls how the application is initialized.
type Options struct {
	ConfigPath string    // Explicit config file, empty to search the config paths
	LogDir     string    // Session log directory, empty to log to the console
	Console    io.Writer // Console log output, nil for stderr
}

// App bundles the configuration and services needed by the CLI.
type App struct {
	Config     *config.Config     // Application configuration
	ConfigPath string             // Config file in use, empty when running on defaults
	Logger     *zap.Logger        // Main application logger
	LogManager *telemetry.Manager // Log management system
}

// InitializeApp loads the configuration and builds the logger.
// A missing config file is not an error when no explicit path was given;
// the defaults are used instead.
func InitializeApp(_ context.Context, opts Options) (*App, error) {
	cfg, configPath, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		if opts.ConfigPath != "" || !errors.Is(err, config.ErrConfigFileNotFound) {
			return nil, err
		}

		cfg = config.Default()
	}

	logManager := telemetry.NewManager(opts.LogDir, &cfg.Debug, opts.Console)

	logger, err := logManager.GetLogger()
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		logger.Debug("No config file found, using defaults")
	} else {
		logger.Debug("Loaded config", zap.String("path", configPath))
	}

	return &App{
		Config:     cfg,
		ConfigPath: configPath,
		Logger:     logger,
		LogManager: logManager,
	}, nil
}

// NewDetector loads the dictionary at path, falling back to the configured
// dictionary when path is empty.
func (s *App) NewDetector(path string) (*detector.Detector, error) {
	if path == "" {
		path = s.Config.Detector.DictionaryPath
	}

	d := detector.New()
	if err := d.LoadFrom(path); err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	s.Logger.Debug("Loaded dictionary",
		zap.String("path", path),
		zap.Int("words", d.Len()))

	return d, nil
}

// NewCracker creates a cracker backed by oracle using the configured
// threshold and concurrency. Options given in overrides are applied last.
func (s *App) NewCracker(oracle cracker.Oracle, overrides ...cracker.Option) *cracker.Cracker {
	opts := []cracker.Option{
		cracker.WithThreshold(s.Config.Detector.Threshold),
		cracker.WithConcurrency(s.Config.Cracker.Concurrency),
		cracker.WithLogger(s.Logger),
	}

	return cracker.New(oracle, append(opts, overrides...)...)
}

// Cleanup flushes buffered logs.
func (s *App) Cleanup() {
	if err := s.Logger.Sync(); err != nil {
		s.Logger.Error("Failed to sync logger", zap.Error(err))
		log.Printf("Failed to sync logger: %v", err)
	}
}
