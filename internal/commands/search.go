package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy-search countdowns by title",
	Long: `Search countdown titles with fuzzy matching. Characters of the query must
appear in order; closer and earlier matches rank higher.`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		query := strings.Join(args, " ")
		now := time.Now()
		a.manager.Tick(now)

		found := searchClocks(a.manager.Clocks(), query)
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(found) > limit {
			found = found[:limit]
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderClocksJSON(a.manager, found, query)
			return
		}

		fmt.Printf("Search results for '%s' (%d found):\n", query, len(found))
		if len(found) == 0 {
			fmt.Println("No countdowns found matching your search.")
			return
		}
		fmt.Println()
		renderClockTable(a.manager, found, now)
	}),
}

// searchClocks returns the clocks whose titles fuzzy-match query, best first
func searchClocks(clocks []models.Clock, query string) []models.Clock {
	titles := make([]string, len(clocks))
	for i, c := range clocks {
		titles[i] = c.Title
	}
	matches := fuzzy.Find(query, titles)
	out := make([]models.Clock, 0, len(matches))
	for _, m := range matches {
		out = append(out, clocks[m.Index])
	}
	return out
}

func init() {
	searchCmd.Flags().IntP("limit", "l", 0, "Limit number of results")
	searchCmd.Flags().Bool("json", false, "Output as JSON")
}
