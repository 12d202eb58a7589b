package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

func TestSkillModifier(t *testing.T) {
	tests := []struct {
		name       string
		abilityMod int
		profBonus  int
		proficient bool
		expertise  bool
		expected   int
	}{
		{name: "untrained", abilityMod: 3, profBonus: 2, expected: 3},
		{name: "proficient", abilityMod: 3, profBonus: 2, proficient: true, expected: 5},
		{name: "expertise doubles", abilityMod: 3, profBonus: 2, proficient: true, expertise: true, expected: 7},
		{name: "expertise wins without proficient flag", abilityMod: 3, profBonus: 2, expertise: true, expected: 7},
		{name: "negative ability mod", abilityMod: -1, profBonus: 3, proficient: true, expected: 2},
		{name: "all zero", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := character.SkillModifier(tt.abilityMod, tt.profBonus, tt.proficient, tt.expertise)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSavingThrowModifier(t *testing.T) {
	assert.Equal(t, 2, character.SavingThrowModifier(2, 3, false))
	assert.Equal(t, 5, character.SavingThrowModifier(2, 3, true))
	assert.Equal(t, -1, character.SavingThrowModifier(-1, 3, false))
}

func TestPassiveScore(t *testing.T) {
	// perception, ability mod 2, prof bonus 3, proficient
	assert.Equal(t, 15, character.PassiveScore(character.PassivePerception, 2, 3, true, false))
	assert.Equal(t, 12, character.PassiveScore(character.PassiveInsight, 2, 3, false, false))
	assert.Equal(t, 18, character.PassiveScore(character.PassiveInvestigation, 2, 3, true, true))
}

func TestPassiveKindAttribute(t *testing.T) {
	assert.Equal(t, shared.AttributeWisdom, character.PassivePerception.Attribute())
	assert.Equal(t, shared.AttributeWisdom, character.PassiveInsight.Attribute())
	assert.Equal(t, shared.AttributeIntelligence, character.PassiveInvestigation.Attribute())
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{n: 5, expected: "+5"},
		{n: 0, expected: "+0"},
		{n: -3, expected: "-3"},
		{n: 12, expected: "+12"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, character.FormatSigned(tt.n))
	}
}

func TestCharacterPassive(t *testing.T) {
	ch := &character.Character{
		Level: 5, // proficiency bonus 3
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeWisdom:       {Score: 14, Bonus: 2},
			shared.AttributeIntelligence: {Score: 12, Bonus: 1},
		},
	}

	assert.Equal(t, 15, ch.Passive(character.PassivePerception, true, false))
	assert.Equal(t, 11, ch.Passive(character.PassiveInvestigation, false, false))
}
