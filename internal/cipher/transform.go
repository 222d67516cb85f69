package cipher

import (
	"strings"
	"unicode"
)

// IndexFunc maps an alphabet position to another position.
// Results outside the alphabet are wrapped with floored modulo.
type IndexFunc func(index int) int

// Translate applies fn to every alphabet letter of document.
// Letters keep their original case and all other runes pass through unchanged.
func Translate(document string, fn IndexFunc) string {
	var result strings.Builder
	result.Grow(len(document))

	for _, char := range document {
		index, ok := IndexOf(char)
		if !ok {
			result.WriteRune(char)
			continue
		}

		result.WriteRune(matchCase(char, LetterAt(fn(index))))
	}

	return result.String()
}

// matchCase returns the uppercase letter t in the case of original.
func matchCase(original, t rune) rune {
	if unicode.IsLower(original) {
		return unicode.ToLower(t)
	}

	return t
}
