package character

import (
	"sort"
	"strings"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

// MergeProficiencies folds any number of raw proficiency lists into one
// canonical list. Lists are consumed in argument order; the first spelling
// seen for a canonical key wins, blank entries are dropped, and the result
// is sorted case-insensitively ascending. Output is deterministic for a
// given input sequence.
func MergeProficiencies(lists ...[]string) []string {
	firstSeen := make(map[string]string)
	for _, list := range lists {
		for _, raw := range list {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				continue
			}
			key := shared.Key(raw)
			if _, ok := firstSeen[key]; !ok {
				firstSeen[key] = trimmed
			}
		}
	}

	merged := make([]string, 0, len(firstSeen))
	for _, name := range firstSeen {
		merged = append(merged, name)
	}
	sort.Slice(merged, func(i, j int) bool {
		return shared.Key(merged[i]) < shared.Key(merged[j])
	})
	return merged
}

// HasProficiency answers membership by canonical-key equality, so casing and
// whitespace in either argument are irrelevant.
func HasProficiency(list []string, candidate string) bool {
	for _, entry := range list {
		if shared.KeysEqual(entry, candidate) {
			return true
		}
	}
	return false
}
