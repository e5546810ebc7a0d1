package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/dice"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
	"github.com/hennsa/Aon-sub000/internal/game/token"
)

// ChoiceResult reports what taking a choice did.
type ChoiceResult struct {
	// Taken is false when the choice's requirements were not met; nothing
	// was applied and the state did not advance.
	Taken bool
	// Roll is the random number used, or -1 when the choice needed none.
	Roll int
	// Outcome is the selected random outcome (first match in declaration
	// order), nil when no outcome matched or none were declared.
	Outcome *book.RandomOutcome
	// Matches holds every outcome containing the roll, so a front end can
	// surface ambiguity to the player. Empty when no roll was made.
	Matches []book.RandomOutcome
	// NextSection is the section the state advanced to. Unset when not taken.
	NextSection string
	// Effects lists the effects that were applied, in application order.
	Effects []token.Effect
}

// ApplyChoice takes ch for the player: it verifies requirements, rolls a
// random number when the choice declares outcomes, applies all effects, and
// advances the GameState's section. Rolling uses the engine's injected
// source; use ApplyChoiceWithRoll when the caller already rolled.
//
// Precondition: ch and ctx must be non-nil.
func (e *Engine) ApplyChoice(ch *book.Choice, ctx *rules.Context) (ChoiceResult, error) {
	roll := -1
	if ch != nil && ch.RequiresRoll() {
		roll = e.RollRandomNumber()
	}
	return e.ApplyChoiceWithRoll(ch, ctx, roll)
}

// ApplyChoiceWithRoll is ApplyChoice with a caller-supplied roll. Pass -1
// when the choice declares no random outcomes.
//
// The transition is all-or-nothing: when requirements are unmet the result
// reports Taken == false and the state is untouched — never an error. Effects
// apply in order (inline, then catalog, then random-outcome effects) and the
// section id advances only after they are applied.
//
// Precondition: ch and ctx must be non-nil; roll must be -1 or in [0, 9].
func (e *Engine) ApplyChoiceWithRoll(ch *book.Choice, ctx *rules.Context, roll int) (ChoiceResult, error) {
	if ch == nil || ctx == nil {
		return ChoiceResult{}, errors.New("engine: ApplyChoice requires a choice and a context")
	}
	if roll < -1 || roll >= dice.Digits {
		return ChoiceResult{}, errors.New("engine: roll outside the 0-9 die domain")
	}
	if ch.RequiresRoll() && roll < 0 {
		return ChoiceResult{}, errors.New("engine: choice requires a roll but none was supplied")
	}

	assets, err := e.assetsFor(ctx)
	if err != nil {
		return ChoiceResult{}, err
	}

	resolved := rules.ResolveChoice(ch, assets.Catalog)
	if !rules.AllApply(resolved.Requirements, ctx) {
		return ChoiceResult{Taken: false, Roll: roll}, nil
	}

	result := ChoiceResult{Taken: true, Roll: roll, NextSection: ch.Target}
	effects := resolved.Effects

	if ch.RequiresRoll() {
		result.Matches = rules.MatchOutcomes(roll, ch.RandomOutcomes)
		if outcome, ok := rules.FirstOutcome(roll, ch.RandomOutcomes); ok {
			result.Outcome = &outcome
			if outcome.Target != "" {
				result.NextSection = outcome.Target
			}
			effects = append(effects, token.ParseEffects(outcome.Effects)...)
		}
	}

	if err := e.ApplyEffects(effects, ctx); err != nil {
		return ChoiceResult{}, err
	}
	result.Effects = effects

	// Advance only after effects are applied.
	ctx.State.SectionID = result.NextSection

	e.log.Debug("choice applied",
		zap.String("section", result.NextSection),
		zap.Int("roll", roll),
		zap.Int("effects", len(effects)),
	)
	return result, nil
}
