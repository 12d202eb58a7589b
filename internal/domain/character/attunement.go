package character

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// MaxAttunedItems is the global attunement slot cap.
const MaxAttunedItems = 3

// ItemSource resolves an item key to its static definition. The compendium
// client satisfies this interface.
type ItemSource interface {
	GetItem(key string) (*rulebook.Item, error)
}

// AttunementLedger tracks which items a character is attuned to. State is an
// ordered key list so serialization and restore are deterministic. Rule
// violations (cap reached, duplicate, unmet prerequisite, unresolvable item)
// are reported as boolean rejections, never errors: they are legal-state
// answers, not exceptional conditions.
//
// The ledger is owned by exactly one character session and performs no
// locking; callers serialize mutating calls.
type AttunementLedger struct {
	attuned []string

	// OnUnknownPrerequisite, when set, observes prerequisite clauses whose
	// tag is outside the known set. Such clauses auto-satisfy either way;
	// the hook exists so data-authoring mistakes are countable.
	OnUnknownPrerequisite func(rulebook.PrerequisiteType)
}

// NewAttunementLedger creates an empty ledger.
func NewAttunementLedger() *AttunementLedger {
	return &AttunementLedger{}
}

// Attune validates and records an attunement. It returns false, without
// changing state, when the slot cap is reached, the item is already attuned,
// the key cannot be resolved, the item does not require attunement, or any
// prerequisite clause fails. The cap check and the mutation happen in one
// step, so the ledger invariant can never be observed broken.
func (l *AttunementLedger) Attune(itemKey string, items ItemSource, ch *Character) bool {
	if len(l.attuned) >= MaxAttunedItems {
		return false
	}
	if l.IsAttuned(itemKey) {
		return false
	}

	item, err := items.GetItem(itemKey)
	if err != nil || item == nil {
		return false
	}
	if !item.RequiresAttunement {
		return false
	}
	if !l.meetsPrerequisites(ch, item.Prerequisites) {
		return false
	}

	l.attuned = append(l.attuned, itemKey)
	return true
}

// Release removes an attunement. Returns false (no-op) when the item was not
// attuned.
func (l *AttunementLedger) Release(itemKey string) bool {
	for i, key := range l.attuned {
		if shared.KeysEqual(key, itemKey) {
			l.attuned = append(l.attuned[:i], l.attuned[i+1:]...)
			return true
		}
	}
	return false
}

// IsAttuned reports whether the item is currently attuned.
func (l *AttunementLedger) IsAttuned(itemKey string) bool {
	for _, key := range l.attuned {
		if shared.KeysEqual(key, itemKey) {
			return true
		}
	}
	return false
}

// ListAttuned resolves the attuned items in ledger order. Keys that no
// longer resolve are dropped silently; a stale reference is not an error.
func (l *AttunementLedger) ListAttuned(items ItemSource) []*rulebook.Item {
	resolved := make([]*rulebook.Item, 0, len(l.attuned))
	for _, key := range l.attuned {
		item, err := items.GetItem(key)
		if err != nil || item == nil {
			continue
		}
		resolved = append(resolved, item)
	}
	return resolved
}

// AttunedKeys returns a copy of the attuned keys in ledger order. This is
// the ledger's serialized form.
func (l *AttunementLedger) AttunedKeys() []string {
	keys := make([]string, len(l.attuned))
	copy(keys, l.attuned)
	return keys
}

// RemainingSlots returns how many attunement slots are free.
func (l *AttunementLedger) RemainingSlots() int {
	return MaxAttunedItems - len(l.attuned)
}

// Reset clears all attuned state, used when loading a different character.
func (l *AttunementLedger) Reset() {
	l.attuned = nil
}

// Restore clears the ledger and re-attunes each saved key in saved order.
// Individual failures and over-cap entries are skipped silently; each
// attempt independently enforces the cap, so only the first MaxAttunedItems
// entries that validate take effect. The order-dependence is deliberate:
// restoring the same saved list always yields the same ledger.
func (l *AttunementLedger) Restore(savedKeys []string, items ItemSource, ch *Character) {
	l.Reset()
	for _, key := range savedKeys {
		l.Attune(key, items, ch)
	}
}

// meetsPrerequisites evaluates an item's clauses as a conjunction,
// short-circuiting on the first failure. The dispatch is a closed switch
// over the four known tags; anything else auto-satisfies.
func (l *AttunementLedger) meetsPrerequisites(ch *Character, clauses []*rulebook.Prerequisite) bool {
	for _, clause := range clauses {
		switch clause.Type {
		case rulebook.PrerequisiteClass:
			if ch == nil || !ch.HasClass(clause.Value) {
				return false
			}
		case rulebook.PrerequisiteSpellcaster:
			if ch == nil || !ch.IsSpellcaster() {
				return false
			}
		case rulebook.PrerequisiteAlignment:
			if ch == nil || !shared.KeysEqual(string(ch.Alignment), clause.Value) {
				return false
			}
		case rulebook.PrerequisiteRace:
			if ch == nil || !ch.HasRace(clause.Value) {
				return false
			}
		default:
			// Auto-satisfied: unknown clause kinds must not brick items
			// authored against a newer rule set.
			if l.OnUnknownPrerequisite != nil {
				l.OnUnknownPrerequisite(clause.Type)
			}
		}
	}
	return true
}
