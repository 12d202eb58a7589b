package character

import (
	"fmt"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

type AbilityScore struct {
	Score int `json:"score"`
	Bonus int `json:"bonus"`
}

type AbilityBonus struct {
	Attribute shared.Attribute `json:"attribute"`
	Bonus     int              `json:"bonus"`
}

// NewAbilityScore derives the modifier from a raw score.
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{
		Score: score,
		Bonus: (score - 10) / 2,
	}
}

// AddBonus applies a racial or feature bonus and recalculates the modifier.
func (a *AbilityScore) AddBonus(bonus int) *AbilityScore {
	a.Score += bonus
	a.Bonus = (a.Score - 10) / 2
	return a
}

func (a *AbilityScore) String() string {
	return fmt.Sprintf("%d (%s)", a.Score, FormatSigned(a.Bonus))
}
