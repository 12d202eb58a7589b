package testutils

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/equipment"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// CreateTestClass creates a class fixture.
func CreateTestClass(key, name string, spellcaster bool) *rulebook.Class {
	return &rulebook.Class{
		Key:           key,
		Name:          name,
		HitDie:        8,
		Spellcaster:   spellcaster,
		Proficiencies: []string{"Perception"},
		SavingThrows:  []string{"Wis"},
	}
}

// CreateTestRace creates a race fixture.
func CreateTestRace(key, name string) *rulebook.Race {
	return &rulebook.Race{
		Key:   key,
		Name:  name,
		Speed: 30,
	}
}

// CreateTestCharacter creates a level-5 character with one class and the
// standard array of ability scores.
func CreateTestCharacter(id, ownerID, name string, class *rulebook.Class) *character.Character {
	return &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Level:   5,
		Race:    CreateTestRace("human", "Human"),
		Classes: []*rulebook.Class{class},
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength:     character.NewAbilityScore(15),
			shared.AttributeDexterity:    character.NewAbilityScore(14),
			shared.AttributeConstitution: character.NewAbilityScore(13),
			shared.AttributeIntelligence: character.NewAbilityScore(12),
			shared.AttributeWisdom:       character.NewAbilityScore(10),
			shared.AttributeCharisma:     character.NewAbilityScore(8),
		},
	}
}

// CreateTestItem creates an attunable item, optionally gated by clauses.
func CreateTestItem(key, name string, prereqs ...*rulebook.Prerequisite) *rulebook.Item {
	return &rulebook.Item{
		Key:                key,
		Name:               name,
		Weight:             1,
		Cost:               &shared.Cost{Quantity: 100, Unit: "gp"},
		RequiresAttunement: true,
		Prerequisites:      prereqs,
	}
}

// CreateTestPack creates a pack with a couple of priced entries.
func CreateTestPack(key, name string) *equipment.Pack {
	return &equipment.Pack{
		Key:  key,
		Name: name,
		Contents: []*equipment.PackEntry{
			{ItemKey: "rope-hempen", Quantity: 1, Weight: 10, Cost: &shared.Cost{Quantity: 1, Unit: "gp"}},
			{ItemKey: "torch", Quantity: 10, Weight: 1, Cost: &shared.Cost{Quantity: 1, Unit: "cp"}},
		},
	}
}
