package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
)

func TestMergeProficiencies(t *testing.T) {
	tests := []struct {
		name     string
		lists    [][]string
		expected []string
	}{
		{
			name:     "dedupes case and whitespace variants, keeps first-seen casing",
			lists:    [][]string{{"Stealth", " stealth ", "Perception"}, {"PERCEPTION"}},
			expected: []string{"Perception", "Stealth"},
		},
		{
			name:     "sorted case-insensitive ascending",
			lists:    [][]string{{"thieves' tools", "Athletics", "arcana"}},
			expected: []string{"arcana", "Athletics", "thieves' tools"},
		},
		{
			name:     "blank entries dropped",
			lists:    [][]string{{"", "  ", "History"}},
			expected: []string{"History"},
		},
		{
			name:     "no input",
			lists:    nil,
			expected: []string{},
		},
		{
			name:     "first list wins the casing",
			lists:    [][]string{{"ARCANA"}, {"Arcana"}},
			expected: []string{"ARCANA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := character.MergeProficiencies(tt.lists...)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMergeProficiencies_Deterministic(t *testing.T) {
	lists := [][]string{
		{"Stealth", "Acrobatics", "Sleight of Hand"},
		{"stealth", "Perception", "ACROBATICS"},
	}

	first := character.MergeProficiencies(lists...)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, character.MergeProficiencies(lists...))
	}
}

func TestHasProficiency(t *testing.T) {
	list := []string{"Stealth", "Animal Handling"}

	assert.True(t, character.HasProficiency(list, "stealth"))
	assert.True(t, character.HasProficiency(list, " STEALTH "))
	assert.True(t, character.HasProficiency(list, "animal handling"))
	assert.False(t, character.HasProficiency(list, "Perception"))
	assert.False(t, character.HasProficiency(nil, "Perception"))
}

func TestCharacterAllProficiencies(t *testing.T) {
	ch := &character.Character{
		Classes: []*rulebook.Class{
			{Key: "rogue", Name: "Rogue", Proficiencies: []string{"Stealth", "Acrobatics"}},
		},
		Race:              &rulebook.Race{Key: "elf", Name: "Elf", Proficiencies: []string{"Perception"}},
		Background:        &rulebook.Background{Key: "urchin", Name: "Urchin", Proficiencies: []string{"stealth", "Sleight of Hand"}},
		FeatProficiencies: []string{"Thieves' Tools"},
	}

	assert.Equal(t,
		[]string{"Acrobatics", "Perception", "Sleight of Hand", "Stealth", "Thieves' Tools"},
		ch.AllProficiencies())
}

func TestCharacterProficiencyBonus(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{level: 0, expected: 2},
		{level: 1, expected: 2},
		{level: 4, expected: 2},
		{level: 5, expected: 3},
		{level: 8, expected: 3},
		{level: 9, expected: 4},
		{level: 13, expected: 5},
		{level: 17, expected: 6},
		{level: 20, expected: 6},
	}

	for _, tt := range tests {
		ch := &character.Character{Level: tt.level}
		assert.Equal(t, tt.expected, ch.ProficiencyBonus(), "level %d", tt.level)
	}
}
