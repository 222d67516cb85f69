package cipher

import "fmt"

// Mode represents the cipher variant to use.
//
//go:generate go tool enumer -type=Mode -trimprefix=Mode -transform=lower
type Mode int

const (
	ModeCaesar Mode = iota
	ModeReverse
)

// Cipher transforms documents in both directions.
type Cipher interface {
	Encrypt(document string) string
	Decrypt(document string) string
}

// New creates the cipher for mode. The key is only used by ModeCaesar.
func New(mode Mode, key string) (Cipher, error) {
	switch mode {
	case ModeCaesar:
		shift, err := ParseShiftKey(key)
		if err != nil {
			return nil, err
		}

		return shift, nil
	case ModeReverse:
		return ReverseCipher{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}
}
