package shared

type Attribute string

var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "Str"
	AttributeDexterity    Attribute = "Dex"
	AttributeConstitution Attribute = "Con"
	AttributeIntelligence Attribute = "Int"
	AttributeWisdom       Attribute = "Wis"
	AttributeCharisma     Attribute = "Cha"
)

var attributeNames = map[Attribute]string{
	AttributeStrength:     "Strength",
	AttributeDexterity:    "Dexterity",
	AttributeConstitution: "Constitution",
	AttributeIntelligence: "Intelligence",
	AttributeWisdom:       "Wisdom",
	AttributeCharisma:     "Charisma",
}

// FullName returns the long display name for the attribute, or the raw
// value when the attribute is not one of the six standard abilities.
func (a Attribute) FullName() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return string(a)
}
