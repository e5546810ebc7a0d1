package engine

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/hennsa/Aon-sub000/internal/game/character"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
	"github.com/hennsa/Aon-sub000/internal/game/token"
)

// ApplyEffects mutates the context's character and inventory, applying each
// effect in list order. Unsupported effects are skipped silently; application
// never fails mid-list, so there is no partial-rollback concern.
//
// Only Endurance is floored at zero; counters and slots may go negative.
//
// Precondition: ctx must be non-nil.
func (e *Engine) ApplyEffects(effects []token.Effect, ctx *rules.Context) error {
	if ctx == nil {
		return errors.New("engine: ApplyEffects requires a context")
	}
	for _, eff := range effects {
		e.applyEffect(eff, ctx)
	}
	return nil
}

// applyEffect dispatches one effect. The switch enumerates every kind;
// anything unlisted routes to the unsupported no-op path.
func (e *Engine) applyEffect(eff token.Effect, ctx *rules.Context) {
	ch := ctx.Character()
	inv := ctx.Inventory()

	switch eff.Kind {
	case token.EffAdjustStat:
		e.adjustStat(ch, eff.Name, eff.Amount)

	case token.EffCombatModifier:
		ch.AdjustAttribute(character.CombatSkillBonusAttribute, eff.Amount)

	case token.EffEnduranceDamage:
		ch.ApplyEnduranceDamage(eff.Amount)

	case token.EffEnduranceHeal:
		ch.Endurance += eff.Amount

	case token.EffAddItem:
		inv.AddItem(eff.Name, eff.Category)

	case token.EffRemoveItem:
		if !inv.RemoveItem(eff.Name) {
			e.log.Debug("remove-item effect matched nothing", zap.String("item", eff.Name))
		}

	case token.EffSetFlag:
		// Flags are evaluation-scoped scratch state, never persisted.
		ctx.Flags[eff.Name] = eff.Value

	case token.EffGrantDiscipline:
		ch.GrantDiscipline(eff.Name)

	case token.EffCounter:
		if eff.Absolute {
			inv.SetCounter(eff.Name, eff.Amount)
		} else {
			inv.AdjustCounter(eff.Name, eff.Amount)
		}

	case token.EffSlot:
		if eff.Absolute {
			inv.SetSlot(eff.Name, eff.Amount)
		} else {
			inv.AdjustSlot(eff.Name, eff.Amount)
		}

	case token.EffUnsupported:
		e.log.Debug("skipping unsupported effect", zap.String("raw", eff.Raw))
	}
}

// adjustStat routes a stat delta to the right store: the CombatSkill and
// Endurance fields, an existing core-skill pool, or a free-form attribute
// (created when unset). Endurance alone floors at zero.
func (e *Engine) adjustStat(ch *character.Character, name string, delta int) {
	switch {
	case strings.EqualFold(name, "CombatSkill"):
		ch.CombatSkill += delta
	case strings.EqualFold(name, "Endurance"):
		if delta < 0 {
			ch.ApplyEnduranceDamage(-delta)
		} else {
			ch.Endurance += delta
		}
	default:
		if ch.AdjustCoreSkill(name, delta) {
			return
		}
		ch.AdjustAttribute(name, delta)
	}
}
