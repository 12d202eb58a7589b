package character

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/equipment"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// Character is the raw state the engine derives from: identity, classes,
// race, ability scores, proficiency sources, equipment packs, and the
// attunement ledger. Derived numbers are never stored here; they are
// recomputed from this state on demand.
//
// One Character (and its ledger) belongs to one session. Callers serialize
// mutating calls; the aggregate performs no internal locking.
type Character struct {
	ID         string                             `json:"id"`
	OwnerID    string                             `json:"owner_id"`
	Name       string                             `json:"name"`
	Level      int                                `json:"level"`
	Alignment  shared.Alignment                   `json:"alignment"`
	Race       *rulebook.Race                     `json:"race"`
	Classes    []*rulebook.Class                  `json:"classes"`
	Background *rulebook.Background               `json:"background"`
	Attributes map[shared.Attribute]*AbilityScore `json:"attributes"`

	// FeatProficiencies holds proficiencies granted outside class, race, and
	// background, e.g. by feats. Merged with the other sources on recompute.
	FeatProficiencies []string `json:"feat_proficiencies"`

	// Expertise lists skill keys whose proficiency bonus is doubled.
	Expertise []string `json:"expertise"`

	Packs []*equipment.Pack `json:"packs"`

	// SavedAttunements holds the persisted attunement keys between load and
	// the validated ledger restore at the session boundary. The live ledger,
	// once restored, is authoritative.
	SavedAttunements []string `json:"saved_attunements,omitempty"`

	Attunements *AttunementLedger `json:"-"`
}

// HasClass reports whether the named class appears in the character's class
// list, matching either key or display name after normalization.
func (c *Character) HasClass(name string) bool {
	for _, class := range c.Classes {
		if class == nil {
			continue
		}
		if shared.KeysEqual(class.Key, name) || shared.KeysEqual(class.Name, name) {
			return true
		}
	}
	return false
}

// HasRace reports whether the character is of the named race.
func (c *Character) HasRace(name string) bool {
	if c.Race == nil {
		return false
	}
	return shared.KeysEqual(c.Race.Key, name) || shared.KeysEqual(c.Race.Name, name)
}

// IsSpellcaster reports whether any of the character's classes grants
// spellcasting.
func (c *Character) IsSpellcaster() bool {
	for _, class := range c.Classes {
		if class != nil && class.Spellcaster {
			return true
		}
	}
	return false
}

// ProficiencyBonus returns the level-derived proficiency bonus.
func (c *Character) ProficiencyBonus() int {
	if c.Level == 0 {
		return 2 // Default for level 1
	}
	return 2 + ((c.Level - 1) / 4)
}

// AbilityModifier returns the modifier for an attribute, 0 when the score
// is missing.
func (c *Character) AbilityModifier(attr shared.Attribute) int {
	if score, ok := c.Attributes[attr]; ok && score != nil {
		return score.Bonus
	}
	return 0
}

// AllProficiencies merges every proficiency source (classes in order, race,
// background, feats) into one canonical list.
func (c *Character) AllProficiencies() []string {
	lists := make([][]string, 0, len(c.Classes)+3)
	for _, class := range c.Classes {
		if class != nil {
			lists = append(lists, class.Proficiencies)
		}
	}
	if c.Race != nil {
		lists = append(lists, c.Race.Proficiencies)
	}
	if c.Background != nil {
		lists = append(lists, c.Background.Proficiencies)
	}
	lists = append(lists, c.FeatProficiencies)
	return MergeProficiencies(lists...)
}

// SavingThrowProficiencies merges the saving-throw lists of every class.
func (c *Character) SavingThrowProficiencies() []string {
	lists := make([][]string, 0, len(c.Classes))
	for _, class := range c.Classes {
		if class != nil {
			lists = append(lists, class.SavingThrows)
		}
	}
	return MergeProficiencies(lists...)
}

// HasExpertise reports whether the character has expertise in a skill.
func (c *Character) HasExpertise(skillKey string) bool {
	return HasProficiency(c.Expertise, skillKey)
}

// Ledger returns the attunement ledger, creating it on first use so loaded
// characters always have one.
func (c *Character) Ledger() *AttunementLedger {
	if c.Attunements == nil {
		c.Attunements = NewAttunementLedger()
	}
	return c.Attunements
}
