package compendium

import (
	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
)

func apiEquipmentToItem(input dnd5e.EquipmentInterface) *rulebook.Item {
	if input == nil {
		return nil
	}

	switch eq := input.(type) {
	case *apiEntities.Equipment:
		return &rulebook.Item{
			Key:    eq.Key,
			Name:   eq.Name,
			Weight: eq.Weight,
			Cost:   apiCostToCost(eq.Cost),
		}
	case *apiEntities.Weapon:
		return &rulebook.Item{
			Key:    eq.Key,
			Name:   eq.Name,
			Weight: eq.Weight,
			Cost:   apiCostToCost(eq.Cost),
		}
	case *apiEntities.Armor:
		return &rulebook.Item{
			Key:    eq.Key,
			Name:   eq.Name,
			Weight: eq.Weight,
			Cost:   apiCostToCost(eq.Cost),
		}
	default:
		return nil
	}
}

func apiCostToCost(input *apiEntities.Cost) *shared.Cost {
	if input == nil {
		return nil
	}
	return &shared.Cost{
		Quantity: input.Quantity,
		Unit:     input.Unit,
	}
}
