// Package main is the entry point for the forge CLI, a character-sheet
// derivation tool over the rules engine.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Fizbane's Forge character sheet engine",
	Long:  `Derives combat and skill statistics from raw character state and enforces attunement rules.`,
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(attuneCmd)
	rootCmd.AddCommand(releaseCmd)
	rootCmd.AddCommand(demoCmd)
}
