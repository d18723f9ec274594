package projection

import (
	"time"

	"github.com/balkashynov/tminus/internal/theme"
)

// Badge is the minimized projection shown in the dock
type Badge struct {
	ID        string
	Visible   bool
	Title     string
	Percent   string
	Completed bool

	// Attention is set while the badge is visible and its clock is completed.
	// AttentionSince marks the update on which it was switched on.
	Attention      bool
	AttentionSince time.Time

	Colors theme.BadgeColors

	randomColor string
	newColor    func() string
}

// Apply redraws the badge from u. Completion and attention are recomputed
// from the result every time, never latched.
func (b *Badge) Apply(u Update) {
	b.Visible = u.Clock.IsMinimized
	b.Title = u.Clock.Title
	b.Percent = u.Result.Progress.String()
	b.Completed = u.Result.Completed

	attention := b.Completed && b.Visible
	if attention && !b.Attention {
		b.AttentionSince = u.Now
	}
	if !attention {
		b.AttentionSince = time.Time{}
	}
	b.Attention = attention

	b.Colors = theme.ResolveBadge(u.Theme.FabColorMode, u.Clock.TitleColor, b.RandomColor(), b.Completed)
}

// RandomColor returns the badge's own color for random mode, picking it on first use
func (b *Badge) RandomColor() string {
	if b.randomColor == "" {
		pick := b.newColor
		if pick == nil {
			pick = theme.RandomColor
		}
		b.randomColor = pick()
	}
	return b.randomColor
}
