package shared

// Alignment is matched exactly (after key normalization) by attunement
// prerequisites, so the constants double as the canonical spelling.
type Alignment string

const (
	AlignmentNone           Alignment = ""
	AlignmentLawfulGood     Alignment = "Lawful Good"
	AlignmentNeutralGood    Alignment = "Neutral Good"
	AlignmentChaoticGood    Alignment = "Chaotic Good"
	AlignmentLawfulNeutral  Alignment = "Lawful Neutral"
	AlignmentTrueNeutral    Alignment = "True Neutral"
	AlignmentChaoticNeutral Alignment = "Chaotic Neutral"
	AlignmentLawfulEvil     Alignment = "Lawful Evil"
	AlignmentNeutralEvil    Alignment = "Neutral Evil"
	AlignmentChaoticEvil    Alignment = "Chaotic Evil"
)
