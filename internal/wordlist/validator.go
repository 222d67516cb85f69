package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/robalyx/cipherkit/internal/detector"
)

// ValidateDictionary performs all validation checks on the dictionary entries.
func ValidateDictionary(words []string) []Issue {
	var issues []Issue

	if len(words) == 0 {
		issues = append(issues, Issue{
			Type:        "empty_dictionary",
			Description: "Dictionary is empty or could not be loaded",
			Word:        "",
			Location:    -1,
		})

		return issues
	}

	validators := []Validator{
		NewDuplicateValidator(),
		NewEntryValidator(),
	}

	for _, validator := range validators {
		issues = append(issues, validator.Validate(words)...)
	}

	return issues
}

// ReadEntries reads the raw entries of a dictionary without normalizing
// them, so validators see exactly what the file holds. Plain-text files give
// one entry per line and JSON or JSONC wordlists one entry per word.
func ReadEntries(path string) ([]string, error) {
	if detector.IsWordlistPath(path) {
		return detector.ReadWordlist(path)
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", detector.ErrDictionaryNotFound, err)
		}

		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	var entries []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	return entries, nil
}
