package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/clients/compendium"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/character"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/equipment"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/rulebook"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/domain/shared"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/repositories/characters"
	"github.com/kevinkickback/fizbanes-forge-sub014/internal/services/sheet"
)

// demoCmd runs a full in-process walkthrough: seed a character, attune a few
// items from the bundled registry, and print the derived sheet. Everything
// stays in memory, so it needs neither Redis nor network.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed a sample character and print its derived sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		repo := characters.NewInMemoryRepository()
		items := compendium.NewStatic(compendium.MagicItems())
		svc := sheet.NewService(&sheet.ServiceConfig{
			Compendium: items,
			Repository: repo,
		})

		wizard := &character.Character{
			OwnerID:   "demo",
			Name:      "Savra of the Veiled Tower",
			Level:     9,
			Alignment: shared.AlignmentLawfulGood,
			Race:      &rulebook.Race{Key: "elf", Name: "Elf", Speed: 30},
			Classes: []*rulebook.Class{
				{
					Key:           "wizard",
					Name:          "Wizard",
					HitDie:        6,
					Spellcaster:   true,
					Proficiencies: []string{"Arcana", "History", "Investigation"},
					SavingThrows:  []string{"Int", "Wis"},
				},
			},
			Background: &rulebook.Background{
				Key:           "sage",
				Name:          "Sage",
				Proficiencies: []string{"arcana", "Insight"},
			},
			Expertise: []string{"Arcana"},
			Attributes: map[shared.Attribute]*character.AbilityScore{
				shared.AttributeStrength:     character.NewAbilityScore(8),
				shared.AttributeDexterity:    character.NewAbilityScore(14),
				shared.AttributeConstitution: character.NewAbilityScore(14),
				shared.AttributeIntelligence: character.NewAbilityScore(18),
				shared.AttributeWisdom:       character.NewAbilityScore(12),
				shared.AttributeCharisma:     character.NewAbilityScore(10),
			},
			Packs: []*equipment.Pack{
				{
					Key:  "scholars-pack",
					Name: "Scholar's Pack",
					Contents: []*equipment.PackEntry{
						{ItemKey: "book-of-lore", Quantity: 1, Weight: 5, Cost: &shared.Cost{Quantity: 25, Unit: "gp"}},
						{ItemKey: "ink-bottle", Quantity: 2, Weight: 0, Cost: &shared.Cost{Quantity: 10, Unit: "gp"}},
						{ItemKey: "parchment", Quantity: 10, Weight: 0, Cost: &shared.Cost{Quantity: 1, Unit: "sp"}},
					},
				},
			},
		}

		if err := repo.Create(ctx, wizard); err != nil {
			return err
		}

		for _, key := range []string{"staff-of-power", "robe-of-the-archmagi", "talisman-of-pure-good", "holy-avenger"} {
			out, err := svc.Attune(ctx, &sheet.AttuneInput{CharacterID: wizard.ID, ItemKey: key})
			if err != nil {
				return err
			}
			if !out.Attuned {
				log.Printf("attunement rejected: %s", key)
			}
		}

		derived, err := svc.GetSheet(ctx, wizard.ID)
		if err != nil {
			return err
		}

		printSheet(derived)
		fmt.Printf("\nCharacter ID: %s\n", wizard.ID)
		return nil
	},
}
