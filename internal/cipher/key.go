package cipher

import (
	"fmt"
	"unicode/utf8"
)

// ShiftKey is a rotation amount in the range [0, 25].
// The zero value is the identity key A.
type ShiftKey int

// ParseShiftKey resolves a single alphabet letter, in either case, to a ShiftKey.
func ParseShiftKey(s string) (ShiftKey, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single letter", ErrInvalidKey, s)
	}

	r, _ := utf8.DecodeRuneInString(s)

	index, ok := IndexOf(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not in the alphabet", ErrInvalidKey, s)
	}

	return ShiftKey(index), nil
}

// NewShiftKey creates a ShiftKey from a numeric rotation amount.
func NewShiftKey(n int) (ShiftKey, error) {
	if n < 0 || n >= AlphabetSize {
		return 0, fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidKey, n, AlphabetSize-1)
	}

	return ShiftKey(n), nil
}

// Int returns the rotation amount.
func (k ShiftKey) Int() int {
	return int(k)
}

// Letter returns the uppercase letter that encodes the key.
func (k ShiftKey) Letter() rune {
	return LetterAt(int(k))
}

func (k ShiftKey) String() string {
	return string(k.Letter())
}

// MarshalText encodes the key as its letter.
func (k ShiftKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a key from its letter.
func (k *ShiftKey) UnmarshalText(text []byte) error {
	key, err := ParseShiftKey(string(text))
	if err != nil {
		return err
	}

	*k = key

	return nil
}

// Encrypt shifts every letter of document forward by the key.
func (k ShiftKey) Encrypt(document string) string {
	return Translate(document, func(index int) int {
		return index + int(k)
	})
}

// Decrypt shifts every letter of document backward by the key.
func (k ShiftKey) Decrypt(document string) string {
	return Translate(document, func(index int) int {
		return index - int(k)
	})
}

// Keys returns every valid shift key in alphabet order.
func Keys() []ShiftKey {
	keys := make([]ShiftKey, AlphabetSize)
	for i := range keys {
		keys[i] = ShiftKey(i)
	}

	return keys
}
