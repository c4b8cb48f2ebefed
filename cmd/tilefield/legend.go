package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefield/internal/platform/tui"
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Show tile colors and controls",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(tui.Legend())
	},
}
