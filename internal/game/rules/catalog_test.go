package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
	"github.com/hennsa/Aon-sub000/internal/game/token"
)

func testCatalog() *rules.Catalog {
	return rules.NewCatalog([]rules.Definition{
		{ID: "R1", Requirements: []string{"skill:Tracking"}, Effects: []string{"counter:Meals:-1"}},
		{ID: "R2", Effects: []string{"flag:warned"}},
	})
}

func TestCatalog_Definition_CaseInsensitive(t *testing.T) {
	cat := testCatalog()

	d, ok := cat.Definition("r1")
	require.True(t, ok)
	assert.Equal(t, "R1", d.ID)

	_, ok = cat.Definition("R9")
	assert.False(t, ok)
}

func TestCatalog_Resolve_SkipsBlanksAndMisses(t *testing.T) {
	cat := testCatalog()

	defs := cat.Resolve([]string{"", "R2", "missing", "  ", "r1"})
	require.Len(t, defs, 2)
	assert.Equal(t, "R2", defs[0].ID)
	assert.Equal(t, "R1", defs[1].ID)
}

func TestLoadCatalogFromBytes(t *testing.T) {
	data := []byte(`
rules:
  - id: R1
    requirements:
      - "skill:Tracking"
    effects:
      - "counter:Meals:-1"
  - id: eat-meal
    effects:
      - "counter:Meals:-1"
      - "endurance:heal:3"
`)
	cat, err := rules.LoadCatalogFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	d, ok := cat.Definition("EAT-MEAL")
	require.True(t, ok)
	assert.Equal(t, []string{"counter:Meals:-1", "endurance:heal:3"}, d.Effects)
}

func TestLoadCatalogFromBytes_EmptyID(t *testing.T) {
	_, err := rules.LoadCatalogFromBytes([]byte("rules:\n  - effects: [\"flag:x\"]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty id")
}

func TestLoadCatalogFromBytes_BadYAML(t *testing.T) {
	_, err := rules.LoadCatalogFromBytes([]byte("rules: ["))
	assert.Error(t, err)
}

func TestResolveChoice_MergeOrder(t *testing.T) {
	cat := testCatalog()
	ch := &book.Choice{
		Requirements: []string{"stat:CombatSkill:10"},
		Effects:      []string{"combat:2"},
		RuleIDs:      []string{"R1", "R2"},
	}

	res := rules.ResolveChoice(ch, cat)

	// Inline tokens first, then catalog tokens in rule-id order.
	require.Len(t, res.Requirements, 2)
	assert.Equal(t, token.ReqStat, res.Requirements[0].Kind)
	assert.Equal(t, "CombatSkill", res.Requirements[0].Stat)
	assert.Equal(t, 10, res.Requirements[0].Minimum)
	assert.Equal(t, token.ReqSkill, res.Requirements[1].Kind)
	assert.Equal(t, "Tracking", res.Requirements[1].Name)

	require.Len(t, res.Effects, 3)
	assert.Equal(t, token.EffCombatModifier, res.Effects[0].Kind)
	assert.Equal(t, token.EffCounter, res.Effects[1].Kind)
	assert.Equal(t, token.EffSetFlag, res.Effects[2].Kind)
}

func TestChoiceAvailable(t *testing.T) {
	cat := testCatalog()
	ctx := testContext()

	available := &book.Choice{Requirements: []string{"item:Sword"}}
	assert.True(t, rules.ChoiceAvailable(available, cat, ctx))

	// R1 requires Tracking, which the test character lacks.
	gated := &book.Choice{RuleIDs: []string{"R1"}}
	assert.False(t, rules.ChoiceAvailable(gated, cat, ctx))

	empty := &book.Choice{}
	assert.True(t, rules.ChoiceAvailable(empty, cat, ctx))
}
