package compendium

import (
	"net/http"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	apperr "github.com/kevinkickback/fizbanes-forge-sub014/internal/errors"
)

// client serves equipment records from the live 5e API. The API only knows
// mundane equipment, so items resolved here never require attunement; the
// magic-item registry is layered in front of this client for that.
type client struct {
	api dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}

	api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		api: api,
	}, nil
}

func (c *client) GetItem(key string) (*rulebook.Item, error) {
	if key == "" {
		return nil, apperr.InvalidArgument("GetItem.key is required")
	}

	response, err := c.api.GetEquipment(key)
	if err != nil {
		return nil, err
	}

	item := apiEquipmentToItem(response)
	if item == nil {
		return nil, apperr.NotFoundf("equipment '%s' has an unrecognized shape", key)
	}

	return item, nil
}
