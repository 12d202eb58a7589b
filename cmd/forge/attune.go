package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevinkickback/fizbanes-forge-sub014/internal/services/sheet"
)

var attuneCmd = &cobra.Command{
	Use:   "attune <character-id> <item-key>",
	Short: "Attune a character to an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(loadConfig())
		if err != nil {
			return err
		}

		out, err := svc.Attune(context.Background(), &sheet.AttuneInput{
			CharacterID: args[0],
			ItemKey:     args[1],
		})
		if err != nil {
			return err
		}

		if out.Attuned {
			fmt.Printf("Attuned to %s (%d slot(s) free)\n", args[1], out.RemainingSlots)
		} else {
			fmt.Printf("Cannot attune to %s: slot cap, duplicate, or unmet prerequisites (%d slot(s) free)\n",
				args[1], out.RemainingSlots)
		}
		return nil
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release <character-id> <item-key>",
	Short: "Release an attunement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(loadConfig())
		if err != nil {
			return err
		}

		out, err := svc.Release(context.Background(), &sheet.ReleaseInput{
			CharacterID: args[0],
			ItemKey:     args[1],
		})
		if err != nil {
			return err
		}

		if out.Released {
			fmt.Printf("Released %s (%d slot(s) free)\n", args[1], out.RemainingSlots)
		} else {
			fmt.Printf("%s was not attuned\n", args[1])
		}
		return nil
	},
}
