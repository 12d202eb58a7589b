package equipment

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// PackEntry is one line of a pack's contents. Weight and Cost are denormalized
// from the item definition at authoring time so aggregation never needs a
// compendium round trip.
type PackEntry struct {
	ItemKey  string       `json:"item_key"`
	Quantity int          `json:"quantity"`
	Weight   float32      `json:"weight"`
	Cost     *shared.Cost `json:"cost"`
}

// Pack is a named equipment bundle. Totals are always derived from Contents;
// they are never stored as independent fields.
type Pack struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Contents    []*PackEntry `json:"contents"`
}

// entryQuantity treats an unset or nonsense quantity as 1.
func entryQuantity(e *PackEntry) int {
	if e.Quantity < 1 {
		return 1
	}
	return e.Quantity
}

// TotalWeight sums weight x quantity over all entries. Missing weight
// contributes 0.
func TotalWeight(contents []*PackEntry) float32 {
	var total float32
	for _, entry := range contents {
		if entry == nil {
			continue
		}
		total += entry.Weight * float32(entryQuantity(entry))
	}
	return total
}

// TotalValue sums the contents' monetary value in the base unit
// (copper-equivalent). Each entry's cost is converted through the table,
// multiplied by quantity, and summed. Unknown coin codes rate 1:1; the
// optional onUnknownCoin hook observes them. A missing table is a
// programmer error, not authored data, and panics.
func TotalValue(contents []*PackEntry, table shared.CurrencyTable, onUnknownCoin func(unit string)) int {
	if table == nil {
		panic("currency table is required")
	}

	total := 0
	for _, entry := range contents {
		if entry == nil {
			continue
		}
		total += table.BaseValue(entry.Cost, onUnknownCoin) * entryQuantity(entry)
	}
	return total
}

// ContainsItem reports whether the contents hold the item, by canonical key.
func ContainsItem(contents []*PackEntry, itemKey string) bool {
	for _, entry := range contents {
		if entry != nil && shared.KeysEqual(entry.ItemKey, itemKey) {
			return true
		}
	}
	return false
}

// ItemQuantity returns the stored quantity for an item, 0 when absent and 1
// when present with an unset quantity.
func ItemQuantity(contents []*PackEntry, itemKey string) int {
	for _, entry := range contents {
		if entry != nil && shared.KeysEqual(entry.ItemKey, itemKey) {
			return entryQuantity(entry)
		}
	}
	return 0
}

// TotalWeight returns the pack's aggregate weight.
func (p *Pack) TotalWeight() float32 {
	return TotalWeight(p.Contents)
}

// TotalValue returns the pack's aggregate value in the base unit.
func (p *Pack) TotalValue(table shared.CurrencyTable) int {
	return TotalValue(p.Contents, table, nil)
}
