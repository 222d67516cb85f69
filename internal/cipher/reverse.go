package cipher

// Reverse returns document with its runes in reverse order.
func Reverse(document string) string {
	runes := []rune(document)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// ReverseCipher is the reverse-order cipher. Encryption and decryption are
// the same operation.
type ReverseCipher struct{}

// Encrypt reverses document.
func (ReverseCipher) Encrypt(document string) string {
	return Reverse(document)
}

// Decrypt reverses document.
func (ReverseCipher) Decrypt(document string) string {
	return Reverse(document)
}
