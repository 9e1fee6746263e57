package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minagishl/command-builder/builder"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available builders and their presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range builder.All() {
			info := b.Info()
			status := ""
			if !info.Available {
				status = " (unavailable)"
			}
			fmt.Printf("%-8s %s%s\n", info.Key, info.Description, status)
			for _, p := range b.Presets() {
				fmt.Printf("         --preset %-15s %s\n", p.Key, p.Name)
			}
		}
	},
}
