package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/parser"
	"github.com/balkashynov/tminus/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing countdown",
	Long: `Edit an existing countdown.

With flags, the fields are changed directly. Without flags the dashboard
opens with the editor on that countdown.

Usage:
  tminus edit 1a2b3c4d --target "2 weeks"
  tminus edit 1a2b3c4d`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		c, err := a.manager.Find(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		changed := false
		for _, name := range []string{"title", "start", "target", "color"} {
			changed = changed || cmd.Flags().Changed(name)
		}
		if !changed {
			if err := tui.RunDashboard(a.dashboardOptions(c.ID)); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		now := time.Now()
		if err := applyClockFlags(cmd, &c, now); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		a.manager.SetTitle(c.ID, c.Title)
		a.manager.SetStartDate(c.ID, c.StartDate)
		a.manager.SetTargetDate(c.ID, c.TargetDate)
		a.manager.SetTitleColor(c.ID, c.TitleColor)
		if err := a.save(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		r, _ := a.manager.Result(c.ID)
		fmt.Printf("✏️  Updated countdown %s: %s\n", shortID(c.ID), c.Title)
		fmt.Printf("  Target: %s\n", parser.FormatTarget(c.TargetDate, now))
		fmt.Printf("  Remaining: %s (%s elapsed)\n", r.Parts.String(), r.Progress.String())
	}),
}

func init() {
	addClockFlags(editCmd)
}
