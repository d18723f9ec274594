package projection

import (
	"github.com/dustin/go-humanize"

	"github.com/balkashynov/tminus/internal/countdown"
	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/theme"
)

// Card is the full-size projection, shown while the clock is not minimized
type Card struct {
	ID         string
	Visible    bool
	Title      string
	TitleColor string

	Days    string
	Hours   string
	Minutes string
	Seconds string

	Percent   string
	Fraction  float64
	Completed bool

	// Position is nil while the card flows with the layout
	Position *models.Position

	TimeColor string
	BarFrom   string
	BarTo     string
	Ends      string
}

// Apply redraws the card from u
func (c *Card) Apply(u Update) {
	c.Visible = !u.Clock.IsMinimized
	c.Title = u.Clock.Title
	c.TitleColor = theme.Normalize(u.Clock.TitleColor, models.DefaultTitleColor)

	c.Days, c.Hours, c.Minutes, c.Seconds = u.Result.Parts.Strings()
	c.Percent = u.Result.Progress.String()
	c.Fraction = u.Result.Progress.Fraction()
	c.Completed = u.Result.Completed

	c.Position = nil
	if u.Clock.Position != nil {
		pos := *u.Clock.Position
		c.Position = &pos
	}

	c.TimeColor = theme.Normalize(u.Theme.TimeNumberColor, models.DefaultThemeSettings().TimeNumberColor)
	c.BarFrom, c.BarTo = theme.ProgressGradient(u.Theme)
	c.Ends = endsText(u)
}

// Flowing reports whether the card follows the layout instead of a dragged position
func (c *Card) Flowing() bool {
	return c.Position == nil
}

func endsText(u Update) string {
	target, ok := countdown.ParseInput(u.Clock.TargetDate)
	if !ok {
		return "no target date"
	}
	rel := humanize.RelTime(target, u.Now, "ago", "from now")
	if u.Result.Completed {
		return "ended " + rel
	}
	return "ends " + rel
}
