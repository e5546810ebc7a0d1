// Package rules implements requirement evaluation, the rule catalog, choice
// rule resolution, random-outcome matching, and the authoring-time metadata
// validator.
package rules

import "github.com/hennsa/Aon-sub000/internal/game/character"

// Context is a transient per-operation view binding a GameState to the
// accessors rule evaluation needs, plus a scratch flag map.
//
// Flags set during one resolution call are NOT persisted into the GameState;
// they exist only for the lifetime of this Context unless the caller copies
// them out.
type Context struct {
	State *character.GameState
	Flags map[string]string
}

// NewContext builds a Context over st with an empty flag map.
//
// Precondition: st must be non-nil.
func NewContext(st *character.GameState) *Context {
	return &Context{State: st, Flags: make(map[string]string)}
}

// Character returns the context's character sheet.
func (c *Context) Character() *character.Character {
	return &c.State.Character
}

// Inventory returns the context's inventory.
func (c *Context) Inventory() *character.Inventory {
	return &c.State.Character.Inventory
}
