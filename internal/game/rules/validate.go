package rules

import (
	"fmt"
	"sort"

	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/token"
)

// Warning is one advisory finding from the metadata validator. Warnings never
// block runtime evaluation; they exist for content authors.
type Warning struct {
	// Location names where the token or reference was found, e.g.
	// `section "12" choice 0` or `catalog rule "R1"`.
	Location string
	// Token is the offending raw token or rule id.
	Token string
	// Message explains the finding.
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %q: %s", w.Location, w.Token, w.Message)
}

// ValidateBook scans a whole book plus its rule catalog and reports every
// requirement/effect token whose key is recognised but whose value is
// malformed, and every rule-id reference with no matching catalog entry.
//
// Tokens with keys outside the vocabulary are NOT reported: they are
// legitimate unsupported content that degrades safely at runtime.
//
// Precondition: b and cat must be non-nil.
// Postcondition: returns all findings in document order; nil means clean.
func ValidateBook(b *book.Book, cat *Catalog) []Warning {
	var warnings []Warning

	for si := range b.Sections {
		s := &b.Sections[si]
		for ci := range s.Choices {
			ch := &s.Choices[ci]
			loc := fmt.Sprintf("section %q choice %d", s.ID, ci)

			warnings = append(warnings, checkTokens(loc, ch.Requirements, ch.Effects)...)

			for oi, out := range ch.RandomOutcomes {
				outLoc := fmt.Sprintf("%s outcome %d", loc, oi)
				warnings = append(warnings, checkTokens(outLoc, nil, out.Effects)...)
			}

			for _, id := range ch.RuleIDs {
				if id == "" {
					continue
				}
				if !cat.Contains(id) {
					warnings = append(warnings, Warning{
						Location: loc,
						Token:    id,
						Message:  "no matching rule catalog entry",
					})
				}
			}
		}
	}

	warnings = append(warnings, validateCatalog(cat)...)
	return warnings
}

// validateCatalog checks every definition's own tokens, in id order for
// stable reporting.
func validateCatalog(cat *Catalog) []Warning {
	keys := make([]string, 0, len(cat.defs))
	for k := range cat.defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var warnings []Warning
	for _, k := range keys {
		d := cat.defs[k]
		loc := fmt.Sprintf("catalog rule %q", d.ID)
		warnings = append(warnings, checkTokens(loc, d.Requirements, d.Effects)...)
	}
	return warnings
}

// checkTokens reports recognised-but-malformed tokens in the given lists.
func checkTokens(loc string, requirements, effects []string) []Warning {
	var warnings []Warning
	for _, raw := range requirements {
		req := token.ParseRequirement(raw)
		if req.Kind == token.ReqUnsupported && token.RecognizedRequirementKey(raw) {
			warnings = append(warnings, Warning{
				Location: loc,
				Token:    raw,
				Message:  "recognised requirement key with malformed value",
			})
		}
	}
	for _, raw := range effects {
		eff := token.ParseEffect(raw)
		if eff.Kind == token.EffUnsupported && token.RecognizedEffectKey(raw) {
			warnings = append(warnings, Warning{
				Location: loc,
				Token:    raw,
				Message:  "recognised effect key with malformed value",
			})
		}
	}
	return warnings
}
