package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize <id>",
	Short: "Minimize a countdown to the dock",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		c, err := a.manager.Find(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		a.manager.Minimize(c.ID)
		if err := a.save(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("▪ Minimized countdown %s: %s\n", shortID(c.ID), c.Title)
	}),
}

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a minimized countdown to a full card",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		c, err := a.manager.Find(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		a.manager.Restore(c.ID)
		if err := a.save(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("↩️  Restored countdown %s: %s\n", shortID(c.ID), c.Title)
	}),
}
