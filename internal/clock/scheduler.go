package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the shared recompute period for every clock
const TickInterval = time.Second

// TickMsg is sent once per TickInterval
type TickMsg time.Time

// Schedule returns the command for the next tick. Callers handle the
// current TickMsg completely before scheduling the next one, so ticks never
// overlap.
func Schedule() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
