package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
)

func TestValidateBook_Clean(t *testing.T) {
	b := &book.Book{
		ID: "b",
		Sections: []book.Section{
			{ID: "1", Choices: []book.Choice{
				{Target: "2", Requirements: []string{"skill:Hunting"}, Effects: []string{"counter:Meals:-1"}, RuleIDs: []string{"R1"}},
			}},
			{ID: "2"},
		},
	}
	cat := rules.NewCatalog([]rules.Definition{{ID: "R1"}})

	assert.Empty(t, rules.ValidateBook(b, cat))
}

func TestValidateBook_MalformedRecognisedTokens(t *testing.T) {
	b := &book.Book{
		ID: "b",
		Sections: []book.Section{
			{ID: "1", Choices: []book.Choice{
				{
					Target:       "1",
					Requirements: []string{"stat:CombatSkill"}, // recognised key, no threshold
					Effects:      []string{"counter:Gold"},     // recognised key, no amount
				},
			}},
		},
	}
	warnings := rules.ValidateBook(b, rules.NewCatalog(nil))

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0].Message, "malformed value")
	assert.Equal(t, "stat:CombatSkill", warnings[0].Token)
	assert.Equal(t, "counter:Gold", warnings[1].Token)
}

func TestValidateBook_ForeignTokensNotReported(t *testing.T) {
	// Unknown keys degrade safely at runtime and are not authoring defects.
	b := &book.Book{
		ID: "b",
		Sections: []book.Section{
			{ID: "1", Choices: []book.Choice{
				{Target: "1", Requirements: []string{"note:see errata"}, Effects: []string{"music:battle-theme"}},
			}},
		},
	}
	assert.Empty(t, rules.ValidateBook(b, rules.NewCatalog(nil)))
}

func TestValidateBook_MissingRuleID(t *testing.T) {
	b := &book.Book{
		ID: "b",
		Sections: []book.Section{
			{ID: "1", Choices: []book.Choice{{Target: "1", RuleIDs: []string{"R1", "", "R404"}}}},
		},
	}
	cat := rules.NewCatalog([]rules.Definition{{ID: "R1"}})

	warnings := rules.ValidateBook(b, cat)
	require.Len(t, warnings, 1)
	assert.Equal(t, "R404", warnings[0].Token)
	assert.Contains(t, warnings[0].Message, "no matching rule catalog entry")
}

func TestValidateBook_RandomOutcomeEffects(t *testing.T) {
	b := &book.Book{
		ID: "b",
		Sections: []book.Section{
			{ID: "1", Choices: []book.Choice{
				{RandomOutcomes: []book.RandomOutcome{
					{Min: 0, Max: 4, Target: "1", Effects: []string{"endurance:drop:2"}},
				}},
			}},
		},
	}
	warnings := rules.ValidateBook(b, rules.NewCatalog(nil))

	require.Len(t, warnings, 1)
	assert.Equal(t, "endurance:drop:2", warnings[0].Token)
	assert.Contains(t, warnings[0].Location, "outcome 0")
}

func TestValidateBook_CatalogTokens(t *testing.T) {
	b := &book.Book{ID: "b", Sections: []book.Section{{ID: "1"}}}
	cat := rules.NewCatalog([]rules.Definition{
		{ID: "R1", Effects: []string{"combat:fast"}}, // recognised key, non-integer
	})

	warnings := rules.ValidateBook(b, cat)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Location, `catalog rule "R1"`)
}
