// Package book provides the parsed gamebook document model: a Book of
// numbered Sections, each carrying narrative content blocks and outgoing
// Choices. Books are built once by the importer and are read-only to the
// rules engine.
package book

// ContentBlock is one unit of narrative display text.
type ContentBlock struct {
	// Kind tags the block for the presentation layer: "paragraph",
	// "illustration", "quote", etc. The core never interprets it.
	Kind string `json:"kind"`
	// Text is the display text or resource reference.
	Text string `json:"text"`
}

// RandomOutcome is an alternate target/effect set for a Choice, selected when
// a 0-9 random-number pick falls inside [Min, Max] (inclusive). Ranges on one
// choice may overlap and need not cover the whole domain.
type RandomOutcome struct {
	Min int `json:"min"`
	Max int `json:"max"`
	// Target optionally overrides the choice's declared target section.
	Target string `json:"target,omitempty"`
	// Effects are raw effect tokens applied when this outcome is selected.
	Effects []string `json:"effects,omitempty"`
}

// Contains reports whether roll falls inside the outcome's inclusive range.
func (o RandomOutcome) Contains(roll int) bool {
	return roll >= o.Min && roll <= o.Max
}

// Choice is a player-selectable transition to another section, optionally
// gated by requirement tokens and carrying effect tokens, random-outcome
// definitions, and rule-catalog references.
type Choice struct {
	// Text is the display text of the choice.
	Text string `json:"text"`
	// Target is the destination section id. When RandomOutcomes is non-empty
	// a matching outcome's Target overrides it.
	Target string `json:"target"`
	// Requirements are raw requirement tokens gating the choice.
	Requirements []string `json:"requirements,omitempty"`
	// Effects are raw effect tokens applied when the choice is taken.
	Effects []string `json:"effects,omitempty"`
	// RandomOutcomes are die-roll alternates for this choice.
	RandomOutcomes []RandomOutcome `json:"randomOutcomes,omitempty"`
	// RuleIDs reference rule-catalog definitions contributing further
	// requirement/effect tokens.
	RuleIDs []string `json:"ruleIds,omitempty"`
}

// RequiresRoll reports whether taking this choice needs an external
// random-number pick.
func (c *Choice) RequiresRoll() bool {
	return len(c.RandomOutcomes) > 0
}

// Section is one addressable unit of narrative content.
type Section struct {
	// ID is the section label, typically numeric ("1".."350"). Unique within
	// a book.
	ID string `json:"id"`
	// Title is the optional display heading.
	Title string `json:"title,omitempty"`
	// Blocks is the ordered narrative content.
	Blocks []ContentBlock `json:"blocks,omitempty"`
	// Choices is the ordered list of outgoing transitions.
	Choices []Choice `json:"choices,omitempty"`
}

// Book is one immutable gamebook document.
type Book struct {
	// ID uniquely identifies the book.
	ID string `json:"id"`
	// SeriesID is the short series code selecting rule catalog and combat
	// table assets (e.g. "lw").
	SeriesID string `json:"seriesId"`
	// Title is the display title.
	Title string `json:"title"`
	// FrontMatter holds unnumbered sections (title page, rules summary).
	FrontMatter []Section `json:"frontMatter,omitempty"`
	// Sections holds the numbered play sections in document order.
	Sections []Section `json:"sections"`

	// byID indexes Sections by ID; built lazily by Section lookups.
	byID map[string]*Section
}

// Section returns the numbered section with the given id.
//
// Postcondition: returns (section, true) if found, or (nil, false) otherwise.
func (b *Book) Section(id string) (*Section, bool) {
	if b.byID == nil {
		b.byID = make(map[string]*Section, len(b.Sections))
		for i := range b.Sections {
			b.byID[b.Sections[i].ID] = &b.Sections[i]
		}
	}
	s, ok := b.byID[id]
	return s, ok
}
