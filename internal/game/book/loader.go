package book

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile reads and validates a single book JSON file.
//
// Precondition: path must point to a valid JSON book document.
// Postcondition: returns a validated Book or a non-nil error.
func LoadFromFile(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading book file %s: %w", path, err)
	}
	b, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("book file %s: %w", path, err)
	}
	return b, nil
}

// LoadFromBytes parses and validates a book from JSON bytes.
//
// Precondition: data must be valid JSON conforming to the book schema.
// Postcondition: returns a validated Book or a non-nil error.
func LoadFromBytes(data []byte) (*Book, error) {
	var b Book
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing book JSON: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("validating book: %w", err)
	}
	return &b, nil
}
