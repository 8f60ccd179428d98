// Package main is the feelings CLI: play the game in the terminal or run
// headless simulations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "feelings",
	Short: "A deck-driven narrative simulation",
	Long: `Feelings World draws weighted situation cards one at a time; each
left or right decision shifts a set of bounded emotional stats until one
crosses a boundary or the turn limit is reached.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}
