package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/balkashynov/tminus/internal/projection"
)

const (
	badgeTitleWidth = 18
	dockHeight      = 3
)

// renderBadge draws one minimized badge. Completed badges get the success
// border; attention runs the shimmer over the title.
func renderBadge(b *projection.Badge, selected bool, shimmer Shimmer, now time.Time) string {
	bg := lipgloss.Color(b.Colors.Background)
	text := lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color(b.Colors.Foreground))

	title := ansi.Truncate(b.Title, badgeTitleWidth, "…")
	if b.Attention {
		title = shimmer.Render(title, text, ColorCompleted, b.AttentionSince, now)
	} else {
		title = text.Bold(selected).Render(title)
	}

	prefix := " "
	if selected {
		prefix = "▸"
	}
	content := text.Render(prefix) + title + text.Render(" · "+b.Percent+" ")

	borderColor := bg
	switch {
	case b.Completed:
		borderColor = lipgloss.Color(ColorCompleted)
	case selected:
		borderColor = lipgloss.Color(ColorHighlight)
	case b.Colors.Border:
		borderColor = lipgloss.Color(ColorBorder)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(content)
}
