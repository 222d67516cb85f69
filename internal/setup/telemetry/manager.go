package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/robalyx/cipherkit/internal/setup/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Manager handles the creation of loggers and their log directories.
// Without a log directory, logs go to the console writer only.
type Manager struct {
	console           io.Writer // Console output when no log directory is set
	instanceID        string    // Unique identifier for this program instance
	currentSessionDir string    // Path to the current session's log directory
	logDir            string    // Base directory for all logs
	level             string    // Logging level (debug, info, warn, error)
	maxLogsToKeep     int       // Maximum number of log sessions to retain
}

// NewManager creates a new Manager instance.
// A nil console writes to stderr.
func NewManager(logDir string, debugCfg *config.Debug, console io.Writer) *Manager {
	if console == nil {
		console = os.Stderr
	}

	return &Manager{
		console:       console,
		instanceID:    uuid.New().String(),
		logDir:        logDir,
		level:         debugCfg.LogLevel,
		maxLogsToKeep: debugCfg.MaxLogsToKeep,
	}
}

// GetLogger initializes the main application logger.
func (lm *Manager) GetLogger() (*zap.Logger, error) {
	if lm.logDir == "" {
		// Hide Sync since terminals reject fsync
		return lm.initLogger(zapcore.Lock(zapcore.AddSync(struct{ io.Writer }{lm.console})))
	}

	if err := lm.setupLogDirectories(); err != nil {
		return nil, err
	}

	path := filepath.Join(lm.currentSessionDir, "main.log")

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger, err := lm.initLogger(zapcore.AddSync(file))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to initialize main logger: %w", err)
	}

	return logger, nil
}

// GetCurrentSessionDir returns the current session directory.
// It is empty when logging to the console.
func (lm *Manager) GetCurrentSessionDir() string {
	return lm.currentSessionDir
}

// GetInstanceID returns the unique instance identifier for this program run.
func (lm *Manager) GetInstanceID() string {
	return lm.instanceID
}

// setupLogDirectories creates and manages the log directory structure.
// It ensures the base directory exists, rotates old logs, and creates a new session directory.
func (lm *Manager) setupLogDirectories() error {
	// Ensure base log directory exists
	if err := os.MkdirAll(lm.logDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Clean up old log sessions
	if err := lm.rotateLogSessions(); err != nil {
		return fmt.Errorf("failed to rotate log sessions: %w", err)
	}

	// Create new session directory with timestamp
	lm.currentSessionDir = filepath.Join(lm.logDir, time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(lm.currentSessionDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	return nil
}

// initLogger creates a new zap logger writing to ws and forwarding errors to OpenTelemetry.
func (lm *Manager) initLogger(ws zapcore.WriteSyncer) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(lm.level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), ws, zapLevel),
		NewCore(zapLevel),
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Development(),
	).With(zap.String("instance_id", lm.instanceID)), nil
}

// rotateLogSessions maintains the log directory by removing old sessions.
// Keeps only the most recent sessions based on maxLogsToKeep.
func (lm *Manager) rotateLogSessions() error {
	sessions, err := filepath.Glob(filepath.Join(lm.logDir, "*"))
	if err != nil {
		return err
	}

	if len(sessions) <= lm.maxLogsToKeep {
		return nil // No rotation needed
	}

	// Sort sessions by modification time (oldest first)
	sort.Slice(sessions, func(i, j int) bool {
		iInfo, _ := os.Stat(sessions[i])
		jInfo, _ := os.Stat(sessions[j])

		return iInfo.ModTime().Before(jInfo.ModTime())
	})

	// Remove oldest sessions to maintain maxLogsToKeep
	toDelete := len(sessions) - lm.maxLogsToKeep
	for i := range toDelete {
		if err := os.RemoveAll(sessions[i]); err != nil {
			return err
		}
	}

	return nil
}
