package detector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tailscale/hujson"
)

// Wordlist is the JSONC dictionary format.
type Wordlist struct {
	Words []string `json:"words"`
}

// LoadFrom loads a dictionary file into the vocabulary.
// Files ending in .json or .jsonc are read as a Wordlist document,
// anything else as plain text with one word per line.
func (d *Detector) LoadFrom(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrDictionaryNotFound, err)
		}

		return fmt.Errorf("failed to stat dictionary: %w", err)
	}

	if IsWordlistPath(path) {
		return d.loadWordlist(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	if err := d.Load(file); err != nil {
		return fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	return nil
}

// Load reads one word per line from r into the vocabulary.
func (d *Detector) Load(r io.Reader) error {
	caser := newCaser()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if word := normalizeWord(caser, scanner.Text()); word != "" {
			d.words[word] = struct{}{}
		}
	}

	return scanner.Err()
}

// IsWordlistPath reports whether path names a JSON or JSONC wordlist.
func IsWordlistPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return true
	default:
		return false
	}
}

// ReadWordlist returns the words of a JSONC wordlist document exactly as
// written, without normalizing them.
func ReadWordlist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrDictionaryNotFound, err)
		}

		return nil, fmt.Errorf("failed to read wordlist file: %w", err)
	}

	// Parse JSONC
	standardJSON, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to standardize JSONC: %w", err)
	}

	var wordlist Wordlist
	if err := sonic.Unmarshal(standardJSON, &wordlist); err != nil {
		return nil, fmt.Errorf("failed to parse wordlist JSON: %w", err)
	}

	return wordlist.Words, nil
}

// loadWordlist reads a JSONC wordlist document from path.
func (d *Detector) loadWordlist(path string) error {
	words, err := ReadWordlist(path)
	if err != nil {
		return err
	}

	d.Add(words...)

	return nil
}
