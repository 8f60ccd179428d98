package main

import (
	"github.com/spf13/cobra"

	"github.com/lapitia/Feelings-World/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Start()
	},
}
