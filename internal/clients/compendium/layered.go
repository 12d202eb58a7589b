package compendium

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
)

// LayeredClient resolves items through an ordered list of clients, falling
// through on not-found. The usual composition puts the magic-item registry
// (which carries attunement metadata) in front of the live equipment API.
type LayeredClient struct {
	clients []Client
}

func NewLayered(clients ...Client) *LayeredClient {
	return &LayeredClient{clients: clients}
}

func (c *LayeredClient) GetItem(key string) (*rulebook.Item, error) {
	for _, client := range c.clients {
		item, err := client.GetItem(key)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		return item, nil
	}
	return nil, apperr.NotFoundf("item '%s' not found in any source", key)
}
