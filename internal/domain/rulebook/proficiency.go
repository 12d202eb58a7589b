package rulebook

type ProficiencyType string

const (
	ProficiencyTypeSkill       ProficiencyType = "skill"
	ProficiencyTypeSavingThrow ProficiencyType = "saving-throw"
	ProficiencyTypeWeapon      ProficiencyType = "weapon"
	ProficiencyTypeArmor       ProficiencyType = "armor"
	ProficiencyTypeTool        ProficiencyType = "tool"
	ProficiencyTypeUnknown     ProficiencyType = ""
)

type Proficiency struct {
	Key  string          `json:"key"`
	Name string          `json:"name"`
	Type ProficiencyType `json:"type"`
}
