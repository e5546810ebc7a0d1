package book

import (
	"fmt"
	"strings"
)

// Validate checks the book's structural invariants. It runs at import/load
// time, never during play.
//
// Checks:
//   - book id and at least one numbered section present
//   - section ids unique within the book
//   - every non-random choice target references an existing section
//   - every non-empty random-outcome target references an existing section
//   - random-outcome ranges fall inside the 0-9 die domain with Min <= Max
//
// Postcondition: returns nil if valid, or an error describing all violations.
func (b *Book) Validate() error {
	var errs []string

	if b.ID == "" {
		errs = append(errs, "book id must not be empty")
	}
	if len(b.Sections) == 0 {
		errs = append(errs, "book must contain at least one section")
	}

	ids := make(map[string]bool, len(b.Sections))
	for _, s := range b.Sections {
		if s.ID == "" {
			errs = append(errs, "section with empty id")
			continue
		}
		if ids[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section id %q", s.ID))
		}
		ids[s.ID] = true
	}

	for si := range b.Sections {
		s := &b.Sections[si]
		for ci := range s.Choices {
			ch := &s.Choices[ci]
			loc := fmt.Sprintf("section %q choice %d", s.ID, ci)

			if !ch.RequiresRoll() && !ids[ch.Target] {
				errs = append(errs, fmt.Sprintf("%s: target %q does not exist", loc, ch.Target))
			}
			for oi, out := range ch.RandomOutcomes {
				if out.Min < 0 || out.Max > 9 || out.Min > out.Max {
					errs = append(errs, fmt.Sprintf("%s outcome %d: range [%d,%d] outside 0-9 die domain", loc, oi, out.Min, out.Max))
				}
				if out.Target != "" && !ids[out.Target] {
					errs = append(errs, fmt.Sprintf("%s outcome %d: target %q does not exist", loc, oi, out.Target))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("book validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
