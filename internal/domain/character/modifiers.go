package character

import (
	"strconv"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// SkillModifier computes a skill check modifier. Expertise doubles the
// proficiency bonus and wins regardless of the proficient flag; callers are
// expected to set both flags consistently.
func SkillModifier(abilityMod, profBonus int, proficient, expertise bool) int {
	switch {
	case expertise:
		return abilityMod + 2*profBonus
	case proficient:
		return abilityMod + profBonus
	default:
		return abilityMod
	}
}

// SavingThrowModifier computes a saving throw modifier.
func SavingThrowModifier(abilityMod, profBonus int, proficient bool) int {
	if proficient {
		return abilityMod + profBonus
	}
	return abilityMod
}

// PassiveKind selects which passive score to compute. The ability is fixed
// per kind: Wisdom for perception and insight, Intelligence for
// investigation.
type PassiveKind string

const (
	PassivePerception    PassiveKind = "perception"
	PassiveInvestigation PassiveKind = "investigation"
	PassiveInsight       PassiveKind = "insight"
)

// Attribute returns the ability a passive kind is computed from.
func (k PassiveKind) Attribute() shared.Attribute {
	if k == PassiveInvestigation {
		return shared.AttributeIntelligence
	}
	return shared.AttributeWisdom
}

// PassiveScore computes 10 + the corresponding skill modifier. The ability
// modifier must belong to kind.Attribute(); Passive on Character resolves
// that for you.
func PassiveScore(kind PassiveKind, abilityMod, profBonus int, proficient, expertise bool) int {
	return 10 + SkillModifier(abilityMod, profBonus, proficient, expertise)
}

// Passive computes a passive score from the character's own ability scores
// and level.
func (c *Character) Passive(kind PassiveKind, proficient, expertise bool) int {
	return PassiveScore(kind, c.AbilityModifier(kind.Attribute()), c.ProficiencyBonus(), proficient, expertise)
}

// FormatSigned renders an integer with an explicit sign, "+0" for zero.
func FormatSigned(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}
