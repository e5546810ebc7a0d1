// Package dice provides the randomness abstraction for the rules engine.
// Gamebooks use a single 0-9 random-number table; every roll in the engine
// goes through a Source so tests can substitute deterministic sequences.
package dice

// Digits is the size of the random-number domain: rolls are in [0, Digits).
const Digits = 10

// Source is the randomness provider for random-number picks.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// RollDigit picks one number from the 0-9 random-number table.
//
// Precondition: src must be non-nil.
// Postcondition: result is in [0, 9].
func RollDigit(src Source) int {
	return src.Intn(Digits)
}
