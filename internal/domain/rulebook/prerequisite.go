package rulebook

// PrerequisiteType tags an attunement prerequisite clause. The set is
// closed: evaluation dispatches explicitly on these four tags, and anything
// else is treated as automatically satisfied so newly authored clause kinds
// do not brick existing items.
type PrerequisiteType string

const (
	PrerequisiteClass       PrerequisiteType = "class"
	PrerequisiteSpellcaster PrerequisiteType = "spellcaster"
	PrerequisiteAlignment   PrerequisiteType = "alignment"
	PrerequisiteRace        PrerequisiteType = "race"
)

// Prerequisite is one clause of an item's attunement requirements. An item's
// clauses are evaluated as a conjunction: the character must satisfy all of
// them. Value is unused for spellcaster clauses.
type Prerequisite struct {
	Type  PrerequisiteType `json:"type"`
	Value string           `json:"value,omitempty"`
}
