package compendium

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// MagicItems returns the bundled magic-item records. These carry the
// attunement metadata the live equipment API has no notion of; NewLayered
// puts them in front of it.
func MagicItems() []*rulebook.Item {
	return []*rulebook.Item{
		{
			Key:                "cloak-of-protection",
			Name:               "Cloak of Protection",
			Weight:             1,
			Cost:               &shared.Cost{Quantity: 3500, Unit: "gp"},
			RequiresAttunement: true,
		},
		{
			Key:                "staff-of-power",
			Name:               "Staff of Power",
			Weight:             4,
			Cost:               &shared.Cost{Quantity: 95500, Unit: "gp"},
			RequiresAttunement: true,
			Prerequisites: []*rulebook.Prerequisite{
				{Type: rulebook.PrerequisiteSpellcaster},
			},
		},
		{
			Key:                "robe-of-the-archmagi",
			Name:               "Robe of the Archmagi",
			Weight:             1,
			Cost:               &shared.Cost{Quantity: 34000, Unit: "gp"},
			RequiresAttunement: true,
			Prerequisites: []*rulebook.Prerequisite{
				{Type: rulebook.PrerequisiteClass, Value: "Wizard"},
			},
		},
		{
			Key:                "holy-avenger",
			Name:               "Holy Avenger",
			Weight:             3,
			Cost:               &shared.Cost{Quantity: 165000, Unit: "gp"},
			RequiresAttunement: true,
			Prerequisites: []*rulebook.Prerequisite{
				{Type: rulebook.PrerequisiteClass, Value: "Paladin"},
			},
		},
		{
			Key:                "moonblade",
			Name:               "Moonblade",
			Weight:             3,
			RequiresAttunement: true,
			Prerequisites: []*rulebook.Prerequisite{
				{Type: rulebook.PrerequisiteRace, Value: "Elf"},
			},
		},
		{
			Key:                "talisman-of-pure-good",
			Name:               "Talisman of Pure Good",
			Weight:             1,
			RequiresAttunement: true,
			Prerequisites: []*rulebook.Prerequisite{
				{Type: rulebook.PrerequisiteAlignment, Value: "Lawful Good"},
			},
		},
		{
			Key:    "bag-of-holding",
			Name:   "Bag of Holding",
			Weight: 15,
			Cost:   &shared.Cost{Quantity: 4000, Unit: "gp"},
		},
	}
}
