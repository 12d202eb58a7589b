package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/services/sheet"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet <character-id>",
	Short: "Derive and print a character's sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(loadConfig())
		if err != nil {
			return err
		}

		derived, err := svc.GetSheet(context.Background(), args[0])
		if err != nil {
			return err
		}

		printSheet(derived)
		return nil
	},
}

var sheetsCmd = &cobra.Command{
	Use:   "sheets [owner-id]",
	Short: "Derive and print the sheets of all of an owner's characters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		svc, err := newService(cfg)
		if err != nil {
			return err
		}

		owner := cfg.Owner
		if len(args) > 0 {
			owner = args[0]
		}

		derived, err := svc.GetSheets(context.Background(), owner)
		if err != nil {
			return err
		}
		if len(derived) == 0 {
			fmt.Printf("No characters for owner %q\n", owner)
			return nil
		}

		for i, s := range derived {
			if i > 0 {
				fmt.Println("\n---")
			}
			printSheet(s)
		}
		return nil
	},
}

func printSheet(s *sheet.Sheet) {
	fmt.Printf("%s (level %d), proficiency bonus +%d\n", s.Name, s.Level, s.ProficiencyBonus)

	fmt.Println("\nSaving throws:")
	for _, save := range s.SavingThrows {
		marker := " "
		if save.Proficient {
			marker = "*"
		}
		fmt.Printf("  %s %-3s %s\n", marker, save.Attribute, save.Display)
	}

	fmt.Println("\nSkills:")
	for _, skill := range s.Skills {
		marker := " "
		if skill.Expertise {
			marker = "E"
		} else if skill.Proficient {
			marker = "*"
		}
		fmt.Printf("  %s %-16s (%s) %s\n", marker, skill.Name, skill.Attribute, skill.Display)
	}

	fmt.Printf("\nPassive Perception %d, Investigation %d, Insight %d\n",
		s.PassivePerception, s.PassiveInvestigation, s.PassiveInsight)

	if len(s.Packs) > 0 {
		fmt.Println("\nPacks:")
		for _, pack := range s.Packs {
			fmt.Printf("  %-20s %.1f lb, %s\n", pack.Name, pack.Weight, formatCopper(pack.Value))
		}
		fmt.Printf("  total: %.1f lb, %s\n", s.TotalWeight, formatCopper(s.TotalValue))
	}

	fmt.Printf("\nAttuned (%d slot(s) free):\n", s.Attunement.Remaining)
	for _, item := range s.Attunement.Items {
		fmt.Printf("  %s\n", item.Name)
	}
}

// formatCopper renders a copper-equivalent value as gp/sp/cp.
func formatCopper(value int) string {
	gp := value / 100
	sp := (value % 100) / 10
	cp := value % 10
	return fmt.Sprintf("%d gp %d sp %d cp", gp, sp, cp)
}
