package shared

// Cost is a monetary amount in a single denomination, matching the shape
// the compendium data source uses for equipment pricing.
type Cost struct {
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// CurrencyTable maps a coin code to its value in the base unit
// (copper-equivalent). Lookups go through Rate so unknown codes fall back
// to 1:1 rather than rejecting authored data.
type CurrencyTable map[string]int

// DefaultCurrencyTable returns the standard coinage rates.
func DefaultCurrencyTable() CurrencyTable {
	return CurrencyTable{
		"cp": 1,
		"sp": 10,
		"ep": 50,
		"gp": 100,
		"pp": 1000,
	}
}

// Rate returns the base-unit rate for a coin code. Unknown codes rate as 1;
// onUnknown, when non-nil, is invoked with the offending code so callers can
// count silent fallbacks without changing the outcome.
func (t CurrencyTable) Rate(unit string, onUnknown func(unit string)) int {
	if rate, ok := t[Key(unit)]; ok {
		return rate
	}
	if onUnknown != nil {
		onUnknown(unit)
	}
	return 1
}

// BaseValue converts a cost to the base unit using this table. A nil cost
// contributes nothing.
func (t CurrencyTable) BaseValue(c *Cost, onUnknown func(unit string)) int {
	if c == nil {
		return 0
	}
	return c.Quantity * t.Rate(c.Unit, onUnknown)
}
