package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// FileName is the name of the config file looked up in each config path.
const FileName = "cipherkit.toml"

// CurrentVersion is the current version of the config file.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version  int      `koanf:"version"`
	Debug    Debug    `koanf:"debug"`
	Detector Detector `koanf:"detector"`
	Cracker  Cracker  `koanf:"cracker"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log sessions to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
}

// Detector contains English detection configuration.
type Detector struct {
	// Path to the dictionary file (plain text or JSONC).
	DictionaryPath string `koanf:"dictionary_path"`
	// Minimum percentage of known words for text to count as English.
	Threshold float64 `koanf:"threshold"`
}

// Cracker contains brute force configuration.
type Cracker struct {
	// Maximum number of shift keys tried at once.
	Concurrency int `koanf:"concurrency"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Debug: Debug{
			LogLevel:      "info",
			MaxLogsToKeep: 10,
		},
		Detector: Detector{
			DictionaryPath: "config/dictionary.txt",
			Threshold:      75,
		},
		Cracker: Cracker{
			Concurrency: 26,
		},
	}
}

// LoadConfig loads the configuration from configPath, or from the first
// config path that holds a config file when configPath is empty.
// Values missing from the file keep their defaults.
// Returns the config along with the used config file.
func LoadConfig(configPath string) (*Config, string, error) {
	k := koanf.New(".")

	var candidates []string
	if configPath != "" {
		candidates = []string{configPath}
	} else {
		paths, err := searchPaths()
		if err != nil {
			return nil, "", err
		}

		candidates = paths
	}

	var usedConfigPath string

	for _, path := range candidates {
		if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, FileName)
	}

	config := Default()
	config.Version = 0

	if err := k.Unmarshal("", config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := checkConfigVersion(usedConfigPath, config.Version, CurrentVersion); err != nil {
		return nil, "", err
	}

	return config, usedConfigPath, nil
}

// searchPaths lists the config file locations in lookup order.
func searchPaths() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dirs := []string{
		".cipherkit",
		homeDir + "/.cipherkit/config",
		"/etc/cipherkit/config",
		"config",
		".",
	}

	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, filepath.Join(dir, FileName))
	}

	return paths, nil
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(path string, current, expected int) error {
	if current == 0 {
		return fmt.Errorf("%w: %s", ErrConfigVersionMissing, path)
	}

	if current != expected {
		return fmt.Errorf("%w: %s (got: %d, expected: %d)", ErrConfigVersionMismatch, path, current, expected)
	}

	return nil
}
