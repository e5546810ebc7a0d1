// Package character defines the mutable player state the rules engine reads
// and writes: the character sheet, its inventory, and the enclosing game state.
package character

import (
	"strings"

	"github.com/google/uuid"
)

// CombatSkillBonusAttribute is the reserved attribute key holding the sum of
// all `combat:` effect deltas. It is added to CombatSkill when computing the
// effective combat skill.
const CombatSkillBonusAttribute = "CombatSkillBonus"

// Character is a player's sheet for one book series.
//
// A Character is owned by exactly one GameState and mutated in place by effect
// application; no other component holds a competing reference.
type Character struct {
	Name        string         `json:"name"`
	CombatSkill int            `json:"combatSkill"`
	Endurance   int            `json:"endurance"`
	CoreSkills  map[string]int `json:"coreSkills,omitempty"`
	Attributes  map[string]int `json:"attributes,omitempty"`
	Disciplines []string       `json:"disciplines,omitempty"`
	Inventory   Inventory      `json:"inventory"`
}

// HasDiscipline reports whether the character knows a discipline with the
// given name. Matching is case-insensitive.
func (c *Character) HasDiscipline(name string) bool {
	for _, d := range c.Disciplines {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// GrantDiscipline adds a discipline unless an equivalent one is already known.
func (c *Character) GrantDiscipline(name string) {
	if c.HasDiscipline(name) {
		return
	}
	c.Disciplines = append(c.Disciplines, name)
}

// CoreSkill returns the named core-skill pool value. Lookup is
// case-insensitive; ok is false when no such pool exists.
func (c *Character) CoreSkill(name string) (value int, ok bool) {
	for k, v := range c.CoreSkills {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return 0, false
}

// AdjustCoreSkill adds delta to an existing core-skill pool.
//
// Postcondition: returns false and leaves the character unchanged when the
// pool does not exist; core skills are defined by series metadata, never
// created by effects.
func (c *Character) AdjustCoreSkill(name string, delta int) bool {
	for k := range c.CoreSkills {
		if strings.EqualFold(k, name) {
			c.CoreSkills[k] += delta
			return true
		}
	}
	return false
}

// Attribute returns the named free-form attribute value. Lookup is
// case-insensitive; ok is false when the attribute is unset.
func (c *Character) Attribute(name string) (value int, ok bool) {
	for k, v := range c.Attributes {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return 0, false
}

// AdjustAttribute adds delta to the named attribute, creating it at zero when
// unset. The existing key's casing is preserved on updates.
func (c *Character) AdjustAttribute(name string, delta int) {
	if c.Attributes == nil {
		c.Attributes = make(map[string]int)
	}
	for k := range c.Attributes {
		if strings.EqualFold(k, name) {
			c.Attributes[k] += delta
			return
		}
	}
	c.Attributes[name] = delta
}

// EffectiveCombatSkill returns CombatSkill plus the combat-skill bonus
// attribute (zero when unset).
func (c *Character) EffectiveCombatSkill() int {
	bonus, _ := c.Attribute(CombatSkillBonusAttribute)
	return c.CombatSkill + bonus
}

// ApplyEnduranceDamage removes amount endurance points, flooring at zero.
// Endurance is the only floored quantity; counters may go negative.
//
// Precondition: amount >= 0.
// Postcondition: Endurance >= 0.
func (c *Character) ApplyEnduranceDamage(amount int) {
	c.Endurance -= amount
	if c.Endurance < 0 {
		c.Endurance = 0
	}
}

// IsDefeated reports whether the character's endurance has reached zero.
func (c *Character) IsDefeated() bool {
	return c.Endurance <= 0
}

// GameState is one saved playthrough: which book, where in it, and the
// character being played. Exactly one logical session mutates a GameState at
// a time; the core provides no internal locking.
type GameState struct {
	ID        uuid.UUID `json:"id"`
	BookID    string    `json:"bookId"`
	SeriesID  string    `json:"seriesId"`
	SectionID string    `json:"sectionId"`
	Character Character `json:"character"`
}

// NewGameState creates a fresh GameState positioned at sectionID.
//
// Postcondition: the returned state has a non-nil unique ID and owns ch by value.
func NewGameState(bookID, seriesID, sectionID string, ch Character) *GameState {
	return &GameState{
		ID:        uuid.New(),
		BookID:    bookID,
		SeriesID:  seriesID,
		SectionID: sectionID,
		Character: ch,
	}
}
