package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a countdown",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		c, err := a.manager.Find(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		a.manager.Delete(c.ID)
		if err := a.save(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted countdown %s: %s\n", shortID(c.ID), c.Title)
	}),
}
