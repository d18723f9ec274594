package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/parser"
	"github.com/balkashynov/tminus/internal/theme"
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a new countdown",
	Long: `Add a new countdown. Omitted fields get the defaults: starts now, ends
after the configured span, placeholder title, white title.

Modes:
  Quick: tminus add "Exam day" --target "3 days"
  Smart parsing: tminus add "Exam day due:3days #FF8800"

Smart parsing syntax:
  due:3days   - Target date (YYYY-MM-DDTHH:MM, dd/mm/yyyy, X minutes/hours/days/weeks)
  from:now    - Start date, same formats
  #FF8800     - Title color
  !min        - Start minimized in the dock`,
	Args: cobra.ArbitraryArgs,
	Run:  withApp(runAdd),
}

func runAdd(cmd *cobra.Command, args []string, a *app) {
	now := time.Now()
	parsed := parser.ParseTitle(strings.Join(args, " "), now)
	if len(parsed.Errors) > 0 {
		fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, ", "))
		return
	}

	c := a.factory.New()
	if parsed.Title != "" {
		c.Title = parsed.Title
	}
	if parsed.StartDate != "" {
		c.StartDate = parsed.StartDate
	}
	if parsed.TargetDate != "" {
		c.TargetDate = parsed.TargetDate
	}
	if parsed.TitleColor != "" {
		c.TitleColor = parsed.TitleColor
	}
	c.IsMinimized = parsed.Minimized

	// Override with explicit flags (flags take precedence)
	if err := applyClockFlags(cmd, &c, now); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if minimized, _ := cmd.Flags().GetBool("minimized"); minimized {
		c.IsMinimized = true
	}

	c = a.manager.Insert(c)
	if err := a.save(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	r, _ := a.manager.Result(c.ID)
	fmt.Printf("✅ New countdown \"%s\" added - ID: %s\n", c.Title, shortID(c.ID))
	fmt.Printf("  Target: %s\n", parser.FormatTarget(c.TargetDate, now))
	fmt.Printf("  Remaining: %s (%s elapsed)\n", r.Parts.String(), r.Progress.String())
	if c.IsMinimized {
		fmt.Println("  Minimized to the dock")
	}
}

// applyClockFlags copies --title, --start, --target and --color onto c
func applyClockFlags(cmd *cobra.Command, c *models.Clock, now time.Time) error {
	if title, _ := cmd.Flags().GetString("title"); strings.TrimSpace(title) != "" {
		c.Title = title
	}
	if start, _ := cmd.Flags().GetString("start"); start != "" {
		value, err := parser.ParseDateInput(start, now)
		if err != nil {
			return fmt.Errorf("failed to parse start: %w", err)
		}
		c.StartDate = value
	}
	if target, _ := cmd.Flags().GetString("target"); target != "" {
		value, err := parser.ParseDateInput(target, now)
		if err != nil {
			return fmt.Errorf("failed to parse target: %w", err)
		}
		c.TargetDate = value
	}
	if color, _ := cmd.Flags().GetString("color"); color != "" {
		if !theme.ValidHex(color) {
			return fmt.Errorf("invalid color %q, use #RRGGBB", color)
		}
		c.TitleColor = theme.Normalize(color, models.DefaultTitleColor)
	}
	return nil
}

func addClockFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Title")
	cmd.Flags().StringP("start", "s", "", "Start date: YYYY-MM-DDTHH:MM, dd/mm/yyyy [HH:MM], now")
	cmd.Flags().StringP("target", "d", "", "Target date: YYYY-MM-DDTHH:MM, dd/mm/yyyy [HH:MM], X days, X hours, X weeks")
	cmd.Flags().StringP("color", "c", "", "Title color as #RRGGBB")
}

func init() {
	addClockFlags(addCmd)
	addCmd.Flags().BoolP("minimized", "m", false, "Start minimized in the dock")
}
