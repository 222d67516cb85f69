package cipher

import "errors"

var (
	// ErrInvalidKey is returned when a shift key does not resolve to an alphabet letter.
	ErrInvalidKey = errors.New("invalid shift key")
	// ErrInvalidMode is returned when a cipher mode is unknown.
	ErrInvalidMode = errors.New("invalid cipher mode")
)
