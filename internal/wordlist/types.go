package wordlist

// Issue represents a validation issue found in a dictionary.
type Issue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Word        string `json:"word"`
	Location    int    `json:"location"`
}

// Validator defines the interface for all dictionary validators.
type Validator interface {
	Validate(words []string) []Issue
}
