package wordlist

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/robalyx/cipherkit/internal/cipher"
)

// EntryValidator handles per-entry format validation.
type EntryValidator struct{}

// NewEntryValidator creates a new EntryValidator instance.
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{}
}

// Validate performs entry format validation.
func (v *EntryValidator) Validate(words []string) []Issue {
	var issues []Issue

	for i, word := range words {
		trimmed := strings.TrimSpace(word)

		// Blank line
		if trimmed == "" {
			issues = append(issues, Issue{
				Type:        "empty_entry",
				Description: fmt.Sprintf("Line %d is empty", i+1),
				Word:        word,
				Location:    i,
			})

			continue
		}

		// Leading or trailing whitespace
		if trimmed != word {
			issues = append(issues, Issue{
				Type:        "untrimmed_entry",
				Description: fmt.Sprintf("Word '%s' on line %d has surrounding whitespace", trimmed, i+1),
				Word:        word,
				Location:    i,
			})
		}

		// Text is split on whitespace so these can never match
		if strings.IndexFunc(trimmed, unicode.IsSpace) != -1 {
			issues = append(issues, Issue{
				Type:        "multi_word_entry",
				Description: fmt.Sprintf("Entry '%s' on line %d contains whitespace and can never match", trimmed, i+1),
				Word:        word,
				Location:    i,
			})
		}

		if !v.hasLetter(trimmed) {
			issues = append(issues, Issue{
				Type:        "no_letters",
				Description: fmt.Sprintf("Entry '%s' on line %d contains no alphabet letters", trimmed, i+1),
				Word:        word,
				Location:    i,
			})
		}
	}

	return issues
}

// hasLetter checks if word contains at least one cipher alphabet letter.
func (v *EntryValidator) hasLetter(word string) bool {
	for _, r := range word {
		if _, ok := cipher.IndexOf(r); ok {
			return true
		}
	}

	return false
}
