package wordlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalyx/cipherkit/internal/detector"
	"github.com/robalyx/cipherkit/internal/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTypes(issues []wordlist.Issue) []string {
	types := make([]string, 0, len(issues))
	for _, issue := range issues {
		types = append(types, issue.Type)
	}

	return types
}

func TestValidateDictionary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    []string
		expected []string
	}{
		{
			name:     "clean dictionary",
			words:    []string{"the", "way", "of", "dragon"},
			expected: []string{},
		},
		{
			name:     "empty dictionary",
			words:    nil,
			expected: []string{"empty_dictionary"},
		},
		{
			name:     "case-insensitive duplicate",
			words:    []string{"the", "The"},
			expected: []string{"duplicate"},
		},
		{
			name:     "malformed entries",
			words:    []string{"", "  way", "ice cream", "123"},
			expected: []string{"empty_entry", "untrimmed_entry", "multi_word_entry", "no_letters"},
		},
		{
			name:     "duplicates are reported before entry issues",
			words:    []string{"of ", "of"},
			expected: []string{"duplicate", "untrimmed_entry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues := wordlist.ValidateDictionary(tt.words)
			assert.Equal(t, tt.expected, issueTypes(issues))
		})
	}
}

func TestDuplicateLocation(t *testing.T) {
	t.Parallel()

	issues := wordlist.NewDuplicateValidator().Validate([]string{"a", "b", "A"})
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Location)
	assert.Equal(t, "A", issues[0].Word)
	assert.Contains(t, issues[0].Description, "lines 1 and 3")
}

func TestReadEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("the\n  way\n\nof\n"), 0o600))

	entries, err := wordlist.ReadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "  way", "", "of"}, entries)

	_, err = wordlist.ReadEntries(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, detector.ErrDictionaryNotFound)
}

func TestReadEntriesWordlist(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
  // Common words
  "words": [
    "the",
    "way",
    "The",
  ],
}
`), 0o600))

	entries, err := wordlist.ReadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "way", "The"}, entries)
	assert.Equal(t, []string{"duplicate"}, issueTypes(wordlist.ValidateDictionary(entries)))

	_, err = wordlist.ReadEntries(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, detector.ErrDictionaryNotFound)
}
