// Package engine provides the rules-engine façade the surrounding
// application calls into: choice evaluation, effect application,
// random-outcome resolution, and combat rounds.
package engine

import (
	"errors"

	"go.uber.org/zap"

	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/combat"
	"github.com/hennsa/Aon-sub000/internal/game/dice"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
	"github.com/hennsa/Aon-sub000/internal/game/series"
)

// Engine evaluates and applies gamebook rules against a GameState. It owns
// no game state itself; all mutation happens through the Context the caller
// supplies, and the caller serialises calls per GameState.
type Engine struct {
	series *series.Registry
	src    dice.Source
	log    *zap.Logger
}

// New constructs an Engine.
//
// Precondition: reg and src must be non-nil; a nil logger is replaced with a
// no-op logger.
func New(reg *series.Registry, src dice.Source, log *zap.Logger) (*Engine, error) {
	if reg == nil {
		return nil, errors.New("engine: series registry must not be nil")
	}
	if src == nil {
		return nil, errors.New("engine: dice source must not be nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{series: reg, src: src, log: log}, nil
}

// RollRandomNumber picks one number from the 0-9 random-number table.
func (e *Engine) RollRandomNumber() int {
	return dice.RollDigit(e.src)
}

// ChoiceEvaluation summarises whether a choice is currently takeable and
// whether taking it needs an external random-number pick.
type ChoiceEvaluation struct {
	Available    bool
	RequiresRoll bool
}

// EvaluateChoice computes availability for ch under ctx.
//
// Precondition: ch and ctx must be non-nil.
func (e *Engine) EvaluateChoice(ch *book.Choice, ctx *rules.Context) (ChoiceEvaluation, error) {
	if ch == nil || ctx == nil {
		return ChoiceEvaluation{}, errors.New("engine: EvaluateChoice requires a choice and a context")
	}
	assets, err := e.assetsFor(ctx)
	if err != nil {
		return ChoiceEvaluation{}, err
	}
	return ChoiceEvaluation{
		Available:    rules.ChoiceAvailable(ch, assets.Catalog, ctx),
		RequiresRoll: ch.RequiresRoll(),
	}, nil
}

// ResolveChoiceRules returns the merged requirement/effect set for ch:
// inline tokens first, then catalog-rule tokens in rule-id order.
//
// Precondition: ch and ctx must be non-nil.
func (e *Engine) ResolveChoiceRules(ch *book.Choice, ctx *rules.Context) (rules.Resolved, error) {
	if ch == nil || ctx == nil {
		return rules.Resolved{}, errors.New("engine: ResolveChoiceRules requires a choice and a context")
	}
	assets, err := e.assetsFor(ctx)
	if err != nil {
		return rules.Resolved{}, err
	}
	return rules.ResolveChoice(ch, assets.Catalog), nil
}

// ResolveCombatRound applies one round of combat against enemy using the
// series' combat table. The result is returned without mutating the
// character or enemy; the caller persists endurance between rounds.
//
// Precondition: ctx must be non-nil; roll must be in [0, 9].
func (e *Engine) ResolveCombatRound(ctx *rules.Context, enemy combat.Enemy, roll int) (combat.RoundResult, error) {
	if ctx == nil {
		return combat.RoundResult{}, errors.New("engine: ResolveCombatRound requires a context")
	}
	if roll < 0 || roll >= dice.Digits {
		return combat.RoundResult{}, errors.New("engine: combat roll outside the 0-9 die domain")
	}
	assets, err := e.assetsFor(ctx)
	if err != nil {
		return combat.RoundResult{}, err
	}

	result := combat.ResolveRound(assets.CombatTable, ctx.Character(), enemy, roll)
	e.log.Debug("combat round resolved",
		zap.String("enemy", enemy.Name),
		zap.Int("ratio", result.Ratio),
		zap.Int("roll", result.Roll),
		zap.Int("player_loss", result.PlayerLoss),
		zap.Int("enemy_loss", result.EnemyLoss),
	)
	return result, nil
}

// assetsFor fetches the series assets for the context's GameState.
func (e *Engine) assetsFor(ctx *rules.Context) (*series.Assets, error) {
	return e.series.Assets(ctx.State.SeriesID)
}
