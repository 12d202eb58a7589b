package compendium

import (
	"sort"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
)

// StaticClient serves parsed item records from memory: the bundled
// magic-item registry, and fixtures in tests. Lookups are canonical-key
// based so stored and queried spellings never need to match exactly.
type StaticClient struct {
	items map[string]*rulebook.Item
}

// NewStatic builds a client over the given records. Nil entries are dropped;
// later duplicates of a key overwrite earlier ones.
func NewStatic(items []*rulebook.Item) *StaticClient {
	indexed := make(map[string]*rulebook.Item, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		indexed[shared.Key(item.Key)] = item
	}
	return &StaticClient{items: indexed}
}

func (c *StaticClient) GetItem(key string) (*rulebook.Item, error) {
	if key == "" {
		return nil, apperr.InvalidArgument("GetItem.key is required")
	}

	item, ok := c.items[shared.Key(key)]
	if !ok {
		return nil, apperr.NotFoundf("item '%s' not found", key)
	}
	return item, nil
}

// Items returns all records sorted by key, for seeding and display.
func (c *StaticClient) Items() []*rulebook.Item {
	all := make([]*rulebook.Item, 0, len(c.items))
	for _, item := range c.items {
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool {
		return shared.Key(all[i].Key) < shared.Key(all[j].Key)
	})
	return all
}
