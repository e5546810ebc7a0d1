package rules

import (
	"strings"

	"github.com/hennsa/Aon-sub000/internal/game/token"
)

// CanApply decides whether a single requirement is satisfied by the current
// player state. Evaluation is total and fail-closed: unsupported requirements
// and unresolvable stat names evaluate false, never an error.
//
// Precondition: ctx must be non-nil.
func CanApply(req token.Requirement, ctx *Context) bool {
	switch req.Kind {
	case token.ReqSkill:
		ch := ctx.Character()
		if ch.HasDiscipline(req.Name) {
			return true
		}
		_, ok := ch.CoreSkill(req.Name)
		return ok

	case token.ReqStat:
		value, ok := resolveStat(ctx, req.Stat)
		return ok && value >= req.Minimum

	case token.ReqItem:
		return ctx.Inventory().HasItem(req.Name)

	case token.ReqUnsupported:
		return false
	}
	return false
}

// AllApply reports whether every requirement holds. An empty list is
// vacuously satisfied.
func AllApply(reqs []token.Requirement, ctx *Context) bool {
	for _, req := range reqs {
		if !CanApply(req, ctx) {
			return false
		}
	}
	return true
}

// resolveStat looks a stat name up against, in order: the CombatSkill and
// Endurance literals on the character, the core-skill pools, then the
// free-form attributes. Names match case-insensitively.
func resolveStat(ctx *Context, name string) (value int, ok bool) {
	ch := ctx.Character()
	switch {
	case strings.EqualFold(name, "CombatSkill"):
		return ch.CombatSkill, true
	case strings.EqualFold(name, "Endurance"):
		return ch.Endurance, true
	}
	if v, ok := ch.CoreSkill(name); ok {
		return v, true
	}
	if v, ok := ch.Attribute(name); ok {
		return v, true
	}
	return 0, false
}
