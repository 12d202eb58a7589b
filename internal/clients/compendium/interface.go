// Package compendium is the engine's item-lookup collaborator: it maps item
// keys to their static definitions (weight, cost, attunement metadata). The
// engine only reads through this interface and never owns the records.
package compendium

//go:generate mockgen -destination=mock/mock_client.go -package=mockcompendium -source=interface.go

import (
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
)

type Client interface {
	GetItem(key string) (*rulebook.Item, error)
}
