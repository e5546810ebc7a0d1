package rules

import "github.com/hennsa/Aon-sub000/internal/game/book"

// MatchOutcomes returns every outcome whose inclusive range contains roll, in
// declaration order. Ranges may overlap by design; ambiguity is surfaced to
// the caller rather than resolved here.
//
// Precondition: roll should be in the 0-9 die domain.
func MatchOutcomes(roll int, outcomes []book.RandomOutcome) []book.RandomOutcome {
	var out []book.RandomOutcome
	for _, o := range outcomes {
		if o.Contains(roll) {
			out = append(out, o)
		}
	}
	return out
}

// FirstOutcome applies the tie-break policy for callers needing exactly one
// outcome: the first match in declaration order.
//
// Postcondition: ok is false iff no outcome contains roll, in which case the
// choice's declared target and its own effects apply unchanged.
func FirstOutcome(roll int, outcomes []book.RandomOutcome) (book.RandomOutcome, bool) {
	for _, o := range outcomes {
		if o.Contains(roll) {
			return o, true
		}
	}
	return book.RandomOutcome{}, false
}

// MatchChoices returns every choice in the section whose random outcomes
// contain roll. The result is deduplicated by choice identity (a choice with
// several overlapping matching ranges appears once) and order-preserved by
// first occurrence.
func MatchChoices(roll int, sec *book.Section) []*book.Choice {
	var out []*book.Choice
	seen := make(map[*book.Choice]bool)
	for ci := range sec.Choices {
		ch := &sec.Choices[ci]
		if seen[ch] {
			continue
		}
		for _, o := range ch.RandomOutcomes {
			if o.Contains(roll) {
				seen[ch] = true
				out = append(out, ch)
				break
			}
		}
	}
	return out
}
