package token

import (
	"strconv"
	"strings"
)

// EffectKind discriminates the parsed effect variants.
type EffectKind int

const (
	// EffUnsupported marks a token that could not be parsed into a known
	// effect. Applying it is a no-op.
	EffUnsupported EffectKind = iota
	// EffAdjustStat adds a signed delta to a named stat.
	EffAdjustStat
	// EffCombatModifier adds a signed delta to the combat-skill bonus attribute.
	EffCombatModifier
	// EffEnduranceDamage removes endurance points (magnitude always positive).
	EffEnduranceDamage
	// EffEnduranceHeal restores endurance points (magnitude always positive).
	EffEnduranceHeal
	// EffAddItem places an item (name + category) into the inventory.
	EffAddItem
	// EffRemoveItem removes the first matching item from the inventory.
	EffRemoveItem
	// EffSetFlag sets a named evaluation-scoped flag.
	EffSetFlag
	// EffGrantDiscipline adds a discipline to the character.
	EffGrantDiscipline
	// EffCounter sets or adjusts a named inventory counter.
	EffCounter
	// EffSlot sets or adjusts a counter in the slot namespace.
	EffSlot
)

// String returns a short label for the kind.
func (k EffectKind) String() string {
	switch k {
	case EffAdjustStat:
		return "stat"
	case EffCombatModifier:
		return "combat"
	case EffEnduranceDamage:
		return "endurance-damage"
	case EffEnduranceHeal:
		return "endurance-heal"
	case EffAddItem:
		return "item-add"
	case EffRemoveItem:
		return "item-remove"
	case EffSetFlag:
		return "flag"
	case EffGrantDiscipline:
		return "discipline"
	case EffCounter:
		return "counter"
	case EffSlot:
		return "slot"
	default:
		return "unsupported"
	}
}

// Effect is a parsed state mutation. It is immutable and derived purely from
// the raw token string; Raw always preserves the original input.
//
// Field use by kind:
//   - EffAdjustStat: Name (stat), Amount (signed delta)
//   - EffCombatModifier: Amount (signed delta)
//   - EffEnduranceDamage / EffEnduranceHeal: Amount (positive magnitude)
//   - EffAddItem: Name, Category; EffRemoveItem: Name
//   - EffSetFlag: Name, Value
//   - EffGrantDiscipline: Name
//   - EffCounter / EffSlot: Name, Amount, Absolute
type Effect struct {
	Kind     EffectKind
	Raw      string
	Name     string
	Amount   int
	Absolute bool
	Category string
	Value    string
}

// unsupportedEffect builds the degraded variant for raw.
func unsupportedEffect(raw string) Effect {
	return Effect{Kind: EffUnsupported, Raw: raw}
}

// ParseEffect parses a raw effect token.
//
// Grammar (keys case-insensitive):
//
//	stat:Name:±N        signed stat delta
//	combat:±N           combat-skill bonus delta
//	endurance:damage:N  endurance loss (magnitude taken as absolute value)
//	endurance:heal:N    endurance gain (magnitude taken as absolute value)
//	item:add:Name[:Cat] add item; `item:Name[:Cat]` defaults to add
//	item:remove:Name    remove item
//	flag:Name[:Value]   set flag; value defaults to "true"
//	discipline:Name     grant discipline
//	counter:Name:±N|N   leading sign => relative delta, none => absolute set
//	slot:Name:±N|N      counter grammar in the slot namespace
//
// Postcondition: always returns a value; malformed input yields Kind ==
// EffUnsupported with Raw preserved.
func ParseEffect(raw string) Effect {
	key, value := splitKey(raw)
	value = strings.TrimSpace(value)

	switch key {
	case "stat":
		idx := strings.LastIndex(value, ":")
		if idx < 0 {
			return unsupportedEffect(raw)
		}
		name := strings.TrimSpace(value[:idx])
		delta, err := strconv.Atoi(strings.TrimSpace(value[idx+1:]))
		if name == "" || err != nil {
			return unsupportedEffect(raw)
		}
		return Effect{Kind: EffAdjustStat, Raw: raw, Name: name, Amount: delta}

	case "combat":
		delta, err := strconv.Atoi(value)
		if err != nil {
			return unsupportedEffect(raw)
		}
		return Effect{Kind: EffCombatModifier, Raw: raw, Amount: delta}

	case "endurance":
		return parseEndurance(raw, value)

	case "item":
		return parseItem(raw, value)

	case "flag":
		name, flagValue := value, "true"
		if idx := strings.Index(value, ":"); idx >= 0 {
			name, flagValue = strings.TrimSpace(value[:idx]), strings.TrimSpace(value[idx+1:])
		}
		if name == "" {
			return unsupportedEffect(raw)
		}
		return Effect{Kind: EffSetFlag, Raw: raw, Name: name, Value: flagValue}

	case "discipline":
		if value == "" {
			return unsupportedEffect(raw)
		}
		return Effect{Kind: EffGrantDiscipline, Raw: raw, Name: value}

	case "counter":
		return parseCounter(raw, value, EffCounter)

	case "slot":
		return parseCounter(raw, value, EffSlot)
	}

	return unsupportedEffect(raw)
}

// ParseEffects parses each raw token in order.
func ParseEffects(raws []string) []Effect {
	if len(raws) == 0 {
		return nil
	}
	out := make([]Effect, 0, len(raws))
	for _, raw := range raws {
		out = append(out, ParseEffect(raw))
	}
	return out
}

// parseEndurance handles `damage:N` and `heal:N` value forms. The magnitude is
// always taken as an absolute value so authored `-4` and `4` mean the same loss.
func parseEndurance(raw, value string) Effect {
	idx := strings.Index(value, ":")
	if idx < 0 {
		return unsupportedEffect(raw)
	}
	mode := strings.ToLower(strings.TrimSpace(value[:idx]))
	amount, err := strconv.Atoi(strings.TrimSpace(value[idx+1:]))
	if err != nil {
		return unsupportedEffect(raw)
	}
	if amount < 0 {
		amount = -amount
	}
	switch mode {
	case "damage":
		return Effect{Kind: EffEnduranceDamage, Raw: raw, Amount: amount}
	case "heal":
		return Effect{Kind: EffEnduranceHeal, Raw: raw, Amount: amount}
	}
	return unsupportedEffect(raw)
}

// parseItem handles `add:Name[:Cat]`, `remove:Name`, and the bare
// `Name[:Cat]` form, which defaults to add.
func parseItem(raw, value string) Effect {
	if value == "" {
		return unsupportedEffect(raw)
	}

	parts := strings.Split(value, ":")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch strings.ToLower(parts[0]) {
	case "add":
		if len(parts) < 2 || parts[1] == "" {
			return unsupportedEffect(raw)
		}
		eff := Effect{Kind: EffAddItem, Raw: raw, Name: parts[1]}
		if len(parts) > 2 {
			eff.Category = parts[2]
		}
		return eff

	case "remove":
		if len(parts) < 2 || parts[1] == "" {
			return unsupportedEffect(raw)
		}
		return Effect{Kind: EffRemoveItem, Raw: raw, Name: parts[1]}
	}

	// Bare `Name[:Cat]` defaults to add.
	if parts[0] == "" {
		return unsupportedEffect(raw)
	}
	eff := Effect{Kind: EffAddItem, Raw: raw, Name: parts[0]}
	if len(parts) > 1 {
		eff.Category = parts[1]
	}
	return eff
}

// parseCounter handles the shared counter/slot grammar: a leading `+` or `-`
// marks a relative delta, an unsigned number an absolute set.
func parseCounter(raw, value string, kind EffectKind) Effect {
	idx := strings.LastIndex(value, ":")
	if idx < 0 {
		return unsupportedEffect(raw)
	}
	name := strings.TrimSpace(value[:idx])
	rawAmount := strings.TrimSpace(value[idx+1:])
	if name == "" || rawAmount == "" {
		return unsupportedEffect(raw)
	}

	relative := rawAmount[0] == '+' || rawAmount[0] == '-'
	amount, err := strconv.Atoi(rawAmount)
	if err != nil {
		return unsupportedEffect(raw)
	}
	return Effect{Kind: kind, Raw: raw, Name: name, Amount: amount, Absolute: !relative}
}
