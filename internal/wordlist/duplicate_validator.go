package wordlist

import (
	"fmt"
	"strings"
)

// DuplicateValidator handles duplicate entry validation.
type DuplicateValidator struct{}

// NewDuplicateValidator creates a new DuplicateValidator instance.
func NewDuplicateValidator() *DuplicateValidator {
	return &DuplicateValidator{}
}

// Validate performs duplicate validation.
func (v *DuplicateValidator) Validate(words []string) []Issue {
	return v.checkDuplicates(words)
}

// checkDuplicates finds entries that are equal once case and surrounding
// whitespace are ignored, since the detector would merge them.
func (v *DuplicateValidator) checkDuplicates(words []string) []Issue {
	var issues []Issue

	seen := make(map[string]int)

	for i, word := range words {
		key := strings.ToLower(strings.TrimSpace(word))
		if key == "" {
			continue
		}

		if prevIndex, exists := seen[key]; exists {
			issues = append(issues, Issue{
				Type:        "duplicate",
				Description: fmt.Sprintf("Word '%s' appears multiple times (lines %d and %d)", key, prevIndex+1, i+1),
				Word:        word,
				Location:    i,
			})
		} else {
			seen[key] = i
		}
	}

	return issues
}
