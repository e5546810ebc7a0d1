package token

import (
	"strconv"
	"strings"
)

// RequirementKind discriminates the parsed requirement variants.
type RequirementKind int

const (
	// ReqUnsupported marks a token that could not be parsed into a known
	// requirement. Unsupported requirements always evaluate false.
	ReqUnsupported RequirementKind = iota
	// ReqSkill requires a named discipline or core skill to be present.
	ReqSkill
	// ReqStat requires a named stat to meet a minimum value.
	ReqStat
	// ReqItem requires a named item to be present in the inventory.
	ReqItem
)

// String returns a short label for the kind.
func (k RequirementKind) String() string {
	switch k {
	case ReqSkill:
		return "skill"
	case ReqStat:
		return "stat"
	case ReqItem:
		return "item"
	default:
		return "unsupported"
	}
}

// Requirement is a parsed choice precondition. It is immutable and derived
// purely from the raw token string; Raw always preserves the original input.
//
// Invariant: exactly the fields relevant to Kind are populated. For ReqStat
// these are Stat and Minimum; for ReqSkill and ReqItem only Name.
type Requirement struct {
	Kind    RequirementKind
	Raw     string
	Name    string
	Stat    string
	Minimum int
}

// unsupportedRequirement builds the degraded variant for raw.
func unsupportedRequirement(raw string) Requirement {
	return Requirement{Kind: ReqUnsupported, Raw: raw}
}

// ParseRequirement parses a raw requirement token.
//
// Grammar: `skill:Name`, `item:Name`, `stat:Name>=N` or `stat:Name:N`.
// Keys match case-insensitively; names keep their original casing.
//
// Postcondition: always returns a value; malformed input yields Kind ==
// ReqUnsupported with Raw preserved.
func ParseRequirement(raw string) Requirement {
	key, value := splitKey(raw)
	value = strings.TrimSpace(value)

	switch key {
	case "skill":
		if value == "" {
			return unsupportedRequirement(raw)
		}
		return Requirement{Kind: ReqSkill, Raw: raw, Name: value}

	case "item":
		if value == "" {
			return unsupportedRequirement(raw)
		}
		return Requirement{Kind: ReqItem, Raw: raw, Name: value}

	case "stat":
		name, minimum, ok := parseStatThreshold(value)
		if !ok {
			return unsupportedRequirement(raw)
		}
		return Requirement{Kind: ReqStat, Raw: raw, Stat: name, Minimum: minimum}
	}

	return unsupportedRequirement(raw)
}

// ParseRequirements parses each raw token in order.
func ParseRequirements(raws []string) []Requirement {
	if len(raws) == 0 {
		return nil
	}
	out := make([]Requirement, 0, len(raws))
	for _, raw := range raws {
		out = append(out, ParseRequirement(raw))
	}
	return out
}

// parseStatThreshold accepts `Name>=N` and `Name:N` threshold forms.
func parseStatThreshold(value string) (name string, minimum int, ok bool) {
	var rawName, rawMin string
	if idx := strings.Index(value, ">="); idx >= 0 {
		rawName, rawMin = value[:idx], value[idx+2:]
	} else if idx := strings.Index(value, ":"); idx >= 0 {
		rawName, rawMin = value[:idx], value[idx+1:]
	} else {
		return "", 0, false
	}

	rawName = strings.TrimSpace(rawName)
	minimum, err := strconv.Atoi(strings.TrimSpace(rawMin))
	if rawName == "" || err != nil {
		return "", 0, false
	}
	return rawName, minimum, true
}
