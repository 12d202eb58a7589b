package sheet

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// Sheet is the derived view model handed to the UI layer: every number on it
// is recomputed from the character's raw state, never stored.
type Sheet struct {
	CharacterID      string
	Name             string
	Level            int
	ProficiencyBonus int

	// Proficiencies is the canonical merged list across all sources.
	Proficiencies []string

	Skills       []*SkillEntry
	SavingThrows []*SaveEntry

	PassivePerception    int
	PassiveInvestigation int
	PassiveInsight       int

	Packs       []*PackSummary
	TotalWeight float32
	TotalValue  int // base unit, copper-equivalent

	Attunement *AttunementSummary
}

// SkillEntry is one derived skill line.
type SkillEntry struct {
	Key        string
	Name       string
	Attribute  shared.Attribute
	Modifier   int
	Display    string // signed, e.g. "+5"
	Proficient bool
	Expertise  bool
}

// SaveEntry is one derived saving-throw line.
type SaveEntry struct {
	Attribute  shared.Attribute
	Modifier   int
	Display    string
	Proficient bool
}

// PackSummary carries a pack's derived totals.
type PackSummary struct {
	Key    string
	Name   string
	Weight float32
	Value  int // base unit
}

// AttunementSummary lists resolved attuned items in ledger order.
type AttunementSummary struct {
	Items     []*AttunedItem
	Remaining int
}

type AttunedItem struct {
	Key  string
	Name string
}
