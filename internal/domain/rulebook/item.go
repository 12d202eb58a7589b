package rulebook

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// Item is the static definition of a piece of equipment as loaded from the
// compendium. Items are immutable once loaded; the engine references them by
// key and never takes ownership.
type Item struct {
	Key                string          `json:"key"`
	Name               string          `json:"name"`
	Weight             float32         `json:"weight"`
	Cost               *shared.Cost    `json:"cost"`
	RequiresAttunement bool            `json:"requires_attunement"`
	Prerequisites      []*Prerequisite `json:"prerequisites,omitempty"`
}
