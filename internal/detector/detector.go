package detector

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultThreshold is the minimum percentage of known words for text to count as English.
const DefaultThreshold = 75.0

var (
	// ErrDictionaryNotFound is returned when the dictionary path does not exist.
	ErrDictionaryNotFound = errors.New("dictionary file not found")
	// ErrEmptyInput is returned when text contains no words to score.
	ErrEmptyInput = errors.New("text contains no words")
)

// Detector decides whether text looks like English by checking its words
// against a known vocabulary.
//
// Loading is not safe for concurrent use. Once loaded, lookups may be made
// from any number of goroutines.
type Detector struct {
	words map[string]struct{}
}

// New creates a Detector with an empty vocabulary.
func New() *Detector {
	return &Detector{
		words: make(map[string]struct{}),
	}
}

// Add inserts words into the vocabulary. Blank words are ignored.
func (d *Detector) Add(words ...string) {
	caser := newCaser()
	for _, word := range words {
		if normalized := normalizeWord(caser, word); normalized != "" {
			d.words[normalized] = struct{}{}
		}
	}
}

// Contains reports whether word is in the vocabulary, ignoring case and
// surrounding whitespace.
func (d *Detector) Contains(word string) bool {
	_, ok := d.words[normalizeWord(newCaser(), word)]
	return ok
}

// Len returns the number of distinct words in the vocabulary.
func (d *Detector) Len() int {
	return len(d.words)
}

// Percentage returns the share of whitespace-separated words in text that
// are in the vocabulary, from 0 to 100.
func (d *Detector) Percentage(text string) (float64, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0, ErrEmptyInput
	}

	caser := newCaser()
	matches := 0

	for _, word := range words {
		if _, ok := d.words[normalizeWord(caser, word)]; ok {
			matches++
		}
	}

	return float64(matches) / float64(len(words)) * 100, nil
}

// IsEnglish reports whether at least threshold percent of the words in text
// are in the vocabulary.
func (d *Detector) IsEnglish(text string, threshold float64) (bool, error) {
	percentage, err := d.Percentage(text)
	if err != nil {
		return false, err
	}

	return percentage >= threshold, nil
}

// newCaser returns a lower-casing transformer. Casers keep internal state so
// each caller needs its own.
func newCaser() cases.Caser {
	return cases.Lower(language.Und)
}

// normalizeWord trims and lower-cases word.
func normalizeWord(caser cases.Caser, word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}

	return caser.String(word)
}
