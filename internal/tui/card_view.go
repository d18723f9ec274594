package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/balkashynov/tminus/internal/projection"
)

const (
	cardWidth  = 36
	cardHeight = 8
	cardGap    = 2
	unitWidth  = 8
	// headerRows is how many rows from a card's top edge start a drag
	headerRows = 2
)

// renderCard draws one full-size countdown card
func renderCard(card *projection.Card, selected bool) string {
	inner := cardWidth - 4 // border + padding

	marker := ""
	if card.Completed {
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCompleted)).Bold(true).Render(" ✓")
	}
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(card.TitleColor)).
		Bold(true)
	title := titleStyle.Render(ansi.Truncate(card.Title, inner-lipgloss.Width(marker), "…")) + marker

	numberStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(card.TimeColor)).
		Bold(true).
		Width(unitWidth).
		Align(lipgloss.Center)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Width(unitWidth).
		Align(lipgloss.Center)

	numbers := lipgloss.JoinHorizontal(lipgloss.Top,
		numberStyle.Render(card.Days),
		numberStyle.Render(card.Hours),
		numberStyle.Render(card.Minutes),
		numberStyle.Render(card.Seconds),
	)
	labels := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("days"),
		labelStyle.Render("hours"),
		labelStyle.Render("mins"),
		labelStyle.Render("secs"),
	)

	percentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	if card.Percent == "N/A" {
		percentStyle = percentStyle.Foreground(lipgloss.Color(ColorDisabledText))
	}
	percent := percentStyle.Render(" " + card.Percent)
	bar := progress.New(
		progress.WithGradient(card.BarFrom, card.BarTo),
		progress.WithoutPercentage(),
		progress.WithWidth(inner-lipgloss.Width(percent)),
	)
	progressLine := bar.ViewAs(card.Fraction) + percent

	endsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true)
	ends := endsStyle.Render(ansi.Truncate(card.Ends, inner, "…"))

	borderColor := ColorBorder
	switch {
	case selected:
		borderColor = ColorSelected
	case card.Completed:
		borderColor = ColorCompleted
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardHeight - 2)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		numbers,
		labels,
		progressLine,
		ends,
	))
}
