package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hennsa/Aon-sub000/internal/game/character"
	"github.com/hennsa/Aon-sub000/internal/game/token"
)

func TestApplyEffects_EndToEndScenario(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext() // CombatSkill=10, Endurance=20

	effects := token.ParseEffects([]string{"combat:2", "counter:meals:1"})
	require.NoError(t, e.ApplyEffects(effects, ctx))

	ch := ctx.Character()
	bonus, ok := ch.Attribute(character.CombatSkillBonusAttribute)
	require.True(t, ok)
	assert.Equal(t, 2, bonus)
	assert.Equal(t, 1, ctx.Inventory().Counter("meals"))
	assert.Equal(t, 10, ch.CombatSkill) // base stats untouched
	assert.Equal(t, 20, ch.Endurance)
}

func TestApplyEffects_Unsupported_LeavesStateUnchanged(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()
	before := *ctx.Character()
	beforeItems := append([]character.Item(nil), ctx.Inventory().Items...)

	effects := token.ParseEffects([]string{"", "explode:now", "counter:Gold"})
	require.NoError(t, e.ApplyEffects(effects, ctx))

	after := ctx.Character()
	assert.Equal(t, before.CombatSkill, after.CombatSkill)
	assert.Equal(t, before.Endurance, after.Endurance)
	assert.Equal(t, before.Disciplines, after.Disciplines)
	assert.Empty(t, after.Attributes)
	assert.Equal(t, beforeItems, ctx.Inventory().Items)
	assert.Empty(t, ctx.Inventory().Counters)
}

func TestApplyEffects_CounterAbsoluteVsRelative(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()
	inv := ctx.Inventory()

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"counter:Gold:5"}), ctx))
	assert.Equal(t, 5, inv.Counter("Gold"))

	// Absolute set wins regardless of prior value.
	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"counter:Gold:5"}), ctx))
	assert.Equal(t, 5, inv.Counter("Gold"))

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"counter:Gold:+5"}), ctx))
	assert.Equal(t, 10, inv.Counter("Gold"))

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"counter:Gold:-5"}), ctx))
	assert.Equal(t, 5, inv.Counter("Gold"))
}

func TestApplyEffects_CounterUnderflowNotFloored(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"counter:Gold:-5"}), ctx))
	assert.Equal(t, -5, ctx.Inventory().Counter("Gold"))
}

func TestApplyEffects_EnduranceDamageAndHeal(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext() // Endurance=20

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"endurance:damage:6"}), ctx))
	assert.Equal(t, 14, ctx.Character().Endurance)

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"endurance:heal:2"}), ctx))
	assert.Equal(t, 16, ctx.Character().Endurance)

	// Endurance floors at zero, unlike counters.
	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"endurance:damage:99"}), ctx))
	assert.Equal(t, 0, ctx.Character().Endurance)
}

func TestApplyEffects_Items(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{
		"item:add:Sword:weapon",
		"item:Torch",
		"item:remove:Sword",
	}), ctx))

	inv := ctx.Inventory()
	assert.False(t, inv.HasItem("Sword"))
	assert.True(t, inv.HasItem("Torch"))

	// Removing an absent item is a silent no-op.
	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"item:remove:Shield"}), ctx))
}

func TestApplyEffects_StatRouting(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()
	ctx.Character().CoreSkills = map[string]int{"Willpower": 20}

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{
		"stat:CombatSkill:+2",
		"stat:endurance:-4",
		"stat:Willpower:-5",
		"stat:Honor:+1", // no such core skill: lands in attributes
	}), ctx))

	ch := ctx.Character()
	assert.Equal(t, 12, ch.CombatSkill)
	assert.Equal(t, 16, ch.Endurance)
	w, _ := ch.CoreSkill("Willpower")
	assert.Equal(t, 15, w)
	honor, ok := ch.Attribute("Honor")
	require.True(t, ok)
	assert.Equal(t, 1, honor)
}

func TestApplyEffects_FlagsAreScratchOnly(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{"flag:warned", "flag:route:north"}), ctx))
	assert.Equal(t, "true", ctx.Flags["warned"])
	assert.Equal(t, "north", ctx.Flags["route"])

	// A fresh context over the same state sees no flags.
	fresh := newTestContext()
	assert.Empty(t, fresh.Flags)
}

func TestApplyEffects_DisciplineAndSlots(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()

	require.NoError(t, e.ApplyEffects(token.ParseEffects([]string{
		"discipline:Sixth Sense",
		"discipline:sixth sense", // duplicate, ignored
		"slot:Backpack:4",
		"slot:Backpack:+1",
		"counter:Backpack:2", // ordinary counter, separate namespace
	}), ctx))

	ch := ctx.Character()
	assert.True(t, ch.HasDiscipline("Sixth Sense"))
	assert.Len(t, ch.Disciplines, 2) // Hunting + Sixth Sense

	inv := ctx.Inventory()
	assert.Equal(t, 5, inv.Slot("Backpack"))
	assert.Equal(t, 2, inv.Counter("Backpack"))
}

func TestApplyEffects_NilContext(t *testing.T) {
	e := newTestEngine(t)
	assert.Error(t, e.ApplyEffects(nil, nil))
}

// TestEffectKinds_AllHandled applies one token of every kind the grammar can
// produce and checks each one observably changed (or, for unsupported, did
// not change) the state. A kind added to the grammar without a dispatch arm
// shows up here as a missing mutation.
func TestEffectKinds_AllHandled(t *testing.T) {
	e := newTestEngine(t)
	ctx := newTestContext()
	ctx.Character().CoreSkills = map[string]int{"Stealth": 2}

	raws := []string{
		"stat:Stealth:+1",
		"combat:2",
		"endurance:damage:3",
		"endurance:heal:1",
		"item:add:Rope:tool",
		"item:remove:Rope",
		"flag:seen:yes",
		"discipline:Camouflage",
		"counter:Meals:+2",
		"slot:Belt:1",
		"???",
	}
	effects := token.ParseEffects(raws)

	seen := map[token.EffectKind]bool{}
	for _, eff := range effects {
		seen[eff.Kind] = true
	}
	for k := token.EffUnsupported; k <= token.EffSlot; k++ {
		assert.True(t, seen[k], "no token exercises kind %v", k)
	}

	require.NoError(t, e.ApplyEffects(effects, ctx))

	ch := ctx.Character()
	assert.Equal(t, 3, ch.CoreSkills["Stealth"])
	assert.Equal(t, 12, ch.EffectiveCombatSkill())
	assert.Equal(t, 18, ch.Endurance) // 20 - 3 + 1
	assert.False(t, ctx.Inventory().HasItem("Rope"))
	assert.Equal(t, "yes", ctx.Flags["seen"])
	assert.True(t, ch.HasDiscipline("Camouflage"))
	assert.Equal(t, 2, ctx.Inventory().Counter("Meals"))
	assert.Equal(t, 1, ctx.Inventory().Slot("Belt"))
}
