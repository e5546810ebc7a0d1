// Package token parses the compact requirement/effect tokens embedded in
// gamebook choices and rule catalogs. Parsing is total: malformed or
// unrecognised input degrades to an Unsupported value carrying the original
// string, never an error.
package token

import "strings"

// splitKey separates a raw token into its lowercased key and the remaining
// value text. The value keeps its original casing.
func splitKey(raw string) (key, value string) {
	trimmed := strings.TrimSpace(raw)
	idx := strings.Index(trimmed, ":")
	if idx < 0 {
		return strings.ToLower(trimmed), ""
	}
	return strings.ToLower(trimmed[:idx]), trimmed[idx+1:]
}

// requirementKeys is the fixed requirement vocabulary.
var requirementKeys = map[string]bool{
	"skill": true,
	"item":  true,
	"stat":  true,
}

// effectKeys is the fixed effect vocabulary.
var effectKeys = map[string]bool{
	"stat":       true,
	"combat":     true,
	"endurance":  true,
	"item":       true,
	"flag":       true,
	"discipline": true,
	"counter":    true,
	"slot":       true,
}

// RecognizedRequirementKey reports whether key (matched case-insensitively)
// belongs to the requirement vocabulary. A recognised key whose value fails to
// parse still yields an Unsupported requirement; the metadata validator uses
// this predicate to distinguish "malformed" from "foreign" tokens.
func RecognizedRequirementKey(raw string) bool {
	key, _ := splitKey(raw)
	return requirementKeys[key]
}

// RecognizedEffectKey reports whether key (matched case-insensitively) belongs
// to the effect vocabulary.
func RecognizedEffectKey(raw string) bool {
	key, _ := splitKey(raw)
	return effectKeys[key]
}
