package rules

import (
	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/token"
)

// Resolved is the merged requirement/effect set for one choice: the choice's
// own parsed tokens followed by the tokens contributed by its catalog rules.
type Resolved struct {
	Requirements []token.Requirement
	Effects      []token.Effect
}

// ResolveChoice merges a choice's inline tokens with those of its resolved
// catalog rules.
//
// Postcondition: the choice's own tokens come first, then each catalog rule's
// tokens in rule-id list order.
func ResolveChoice(ch *book.Choice, cat *Catalog) Resolved {
	res := Resolved{
		Requirements: token.ParseRequirements(ch.Requirements),
		Effects:      token.ParseEffects(ch.Effects),
	}
	for _, def := range cat.Resolve(ch.RuleIDs) {
		res.Requirements = append(res.Requirements, token.ParseRequirements(def.Requirements)...)
		res.Effects = append(res.Effects, token.ParseEffects(def.Effects)...)
	}
	return res
}

// ChoiceAvailable reports whether every resolved requirement of ch holds
// under ctx. A choice with no requirements is vacuously available.
func ChoiceAvailable(ch *book.Choice, cat *Catalog, ctx *Context) bool {
	return AllApply(ResolveChoice(ch, cat).Requirements, ctx)
}
