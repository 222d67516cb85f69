package cipher

// Encrypt applies a Caesar shift of key to document.
// The key is validated before any text is transformed.
func Encrypt(document, key string) (string, error) {
	shift, err := ParseShiftKey(key)
	if err != nil {
		return "", err
	}

	return shift.Encrypt(document), nil
}

// Decrypt reverses a Caesar shift of key on document.
func Decrypt(document, key string) (string, error) {
	shift, err := ParseShiftKey(key)
	if err != nil {
		return "", err
	}

	return shift.Decrypt(document), nil
}
