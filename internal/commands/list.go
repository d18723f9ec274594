package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/clock"
	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List countdowns",
	Long:    "List every countdown with its remaining time, progress and target date",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		now := time.Now()
		a.manager.Tick(now)
		clocks := a.manager.Clocks()

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderClocksJSON(a.manager, clocks, "")
			return
		}

		if len(clocks) == 0 {
			fmt.Println("No countdowns found. Use 'tminus add \"Exam day due:3days\"' to create your first one.")
			return
		}
		renderClockTable(a.manager, clocks, now)
	}),
}

// jsonClock is the machine-readable shape of one countdown
type jsonClock struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	StartDate        string           `json:"start_date"`
	TargetDate       string           `json:"target_date"`
	Minimized        bool             `json:"minimized"`
	Position         *models.Position `json:"position,omitempty"`
	TitleColor       string           `json:"title_color"`
	RemainingSeconds int64            `json:"remaining_seconds"`
	Completed        bool             `json:"completed"`
	Progress         *float64         `json:"progress"`
}

func toJSONClocks(manager *clock.Manager, clocks []models.Clock) []jsonClock {
	out := make([]jsonClock, 0, len(clocks))
	for _, c := range clocks {
		r, _ := manager.Result(c.ID)
		item := jsonClock{
			ID:               c.ID,
			Title:            c.Title,
			StartDate:        c.StartDate,
			TargetDate:       c.TargetDate,
			Minimized:        c.IsMinimized,
			Position:         c.Position,
			TitleColor:       c.TitleColor,
			RemainingSeconds: int64(r.Remaining / time.Second),
			Completed:        r.Completed,
		}
		if r.Progress.Known {
			p := r.Progress.Percent
			item.Progress = &p
		}
		out = append(out, item)
	}
	return out
}

// renderClocksJSON prints clocks as JSON; query is included when searching
func renderClocksJSON(manager *clock.Manager, clocks []models.Clock, query string) {
	type result struct {
		Query      string      `json:"query,omitempty"`
		Count      int         `json:"count"`
		Countdowns []jsonClock `json:"countdowns"`
	}

	jsonBytes, err := json.MarshalIndent(result{
		Query:      query,
		Count:      len(clocks),
		Countdowns: toJSONClocks(manager, clocks),
	}, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

// renderClockTable prints clocks as a fixed-width table
func renderClockTable(manager *clock.Manager, clocks []models.Clock, now time.Time) {
	fmt.Printf("%-8s %-30s %-16s %-8s %s\n", "ID", "TITLE", "REMAINING", "PROGRESS", "TARGET")
	fmt.Println(strings.Repeat("-", 90))

	for _, c := range clocks {
		r, _ := manager.Result(c.ID)

		title := c.Title
		if c.IsMinimized {
			title = "▪ " + title
		}
		title = ansi.Truncate(title, 30, "...")

		remaining := r.Parts.String()
		if r.Completed {
			remaining = "done"
		}

		fmt.Printf("%-8s %s %-16s %-8s %s\n",
			shortID(c.ID),
			title+strings.Repeat(" ", max(0, 30-ansi.StringWidth(title))),
			remaining,
			r.Progress.String(),
			parser.FormatTarget(c.TargetDate, now))
	}
}

func init() {
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
