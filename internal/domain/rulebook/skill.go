package rulebook

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// Skill binds a skill to the ability its checks use.
type Skill struct {
	Key       string           `json:"key"`
	Name      string           `json:"name"`
	Attribute shared.Attribute `json:"attribute"`
}

// Skills is the standard skill list in display order. Sheet derivation walks
// this table; lookups use SkillByKey.
var Skills = []*Skill{
	{Key: "acrobatics", Name: "Acrobatics", Attribute: shared.AttributeDexterity},
	{Key: "animal-handling", Name: "Animal Handling", Attribute: shared.AttributeWisdom},
	{Key: "arcana", Name: "Arcana", Attribute: shared.AttributeIntelligence},
	{Key: "athletics", Name: "Athletics", Attribute: shared.AttributeStrength},
	{Key: "deception", Name: "Deception", Attribute: shared.AttributeCharisma},
	{Key: "history", Name: "History", Attribute: shared.AttributeIntelligence},
	{Key: "insight", Name: "Insight", Attribute: shared.AttributeWisdom},
	{Key: "intimidation", Name: "Intimidation", Attribute: shared.AttributeCharisma},
	{Key: "investigation", Name: "Investigation", Attribute: shared.AttributeIntelligence},
	{Key: "medicine", Name: "Medicine", Attribute: shared.AttributeWisdom},
	{Key: "nature", Name: "Nature", Attribute: shared.AttributeIntelligence},
	{Key: "perception", Name: "Perception", Attribute: shared.AttributeWisdom},
	{Key: "performance", Name: "Performance", Attribute: shared.AttributeCharisma},
	{Key: "persuasion", Name: "Persuasion", Attribute: shared.AttributeCharisma},
	{Key: "religion", Name: "Religion", Attribute: shared.AttributeIntelligence},
	{Key: "sleight-of-hand", Name: "Sleight of Hand", Attribute: shared.AttributeDexterity},
	{Key: "stealth", Name: "Stealth", Attribute: shared.AttributeDexterity},
	{Key: "survival", Name: "Survival", Attribute: shared.AttributeWisdom},
}

// SkillByKey resolves a skill by canonical key, nil when unknown.
func SkillByKey(key string) *Skill {
	canonical := shared.Key(key)
	for _, s := range Skills {
		if s.Key == canonical {
			return s
		}
	}
	return nil
}
