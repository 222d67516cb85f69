package cipher

// Alphabet is the ordered set of symbols every shift is relative to.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphabetSize is the modulus for all shift arithmetic.
const AlphabetSize = len(Alphabet)

// IndexOf returns the alphabet position of r, ignoring case.
// Runes outside A-Z and a-z are not members of the alphabet.
func IndexOf(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	default:
		return -1, false
	}
}

// LetterAt returns the uppercase letter at position i.
// Positions outside the alphabet wrap around.
func LetterAt(i int) rune {
	return rune(Alphabet[floorMod(i, AlphabetSize)])
}

// floorMod returns a mod n in the range [0, n) for positive n.
func floorMod(a, n int) int {
	return ((a % n) + n) % n
}
