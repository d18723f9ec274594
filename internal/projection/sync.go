package projection

import (
	"time"

	"github.com/balkashynov/tminus/internal/countdown"
	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/theme"
)

// Update is everything a projection needs to redraw itself
type Update struct {
	Clock  models.Clock
	Result countdown.Result
	Theme  models.ThemeSettings
	Now    time.Time
}

// View is one visual projection of a clock
type View interface {
	Apply(u Update)
}

// Pair holds the two projections of one clock. Exactly one is visible.
type Pair struct {
	Card  *Card
	Badge *Badge
}

func (p *Pair) views() []View {
	return []View{p.Card, p.Badge}
}

// Sync keeps a Pair per clock in step with the clock manager
type Sync struct {
	theme    *models.ThemeSettings
	pairs    map[string]*Pair
	newColor func() string
}

// NewSync returns a sync that reads the live theme through settings
func NewSync(settings *models.ThemeSettings) *Sync {
	return &Sync{
		theme:    settings,
		pairs:    make(map[string]*Pair),
		newColor: theme.RandomColor,
	}
}

// ClockChanged creates the pair on first sight and applies the update to both views
func (s *Sync) ClockChanged(c models.Clock, r countdown.Result, now time.Time) {
	pair, ok := s.pairs[c.ID]
	if !ok {
		pair = &Pair{
			Card:  &Card{ID: c.ID},
			Badge: &Badge{ID: c.ID, newColor: s.newColor},
		}
		s.pairs[c.ID] = pair
	}

	u := Update{Clock: c, Result: r, Now: now}
	if s.theme != nil {
		u.Theme = *s.theme
	} else {
		u.Theme = models.DefaultThemeSettings()
	}
	for _, v := range pair.views() {
		v.Apply(u)
	}
}

// ClockRemoved drops both projections
func (s *Sync) ClockRemoved(id string) {
	delete(s.pairs, id)
}

// Pair returns the projections of id, or nil
func (s *Sync) Pair(id string) *Pair {
	return s.pairs[id]
}

// Len returns the number of tracked pairs
func (s *Sync) Len() int {
	return len(s.pairs)
}

// RegenerateColors drops every badge's random color. New ones are picked on
// the next update, so callers refresh the manager afterwards.
func (s *Sync) RegenerateColors() {
	for _, p := range s.pairs {
		p.Badge.randomColor = ""
	}
}
