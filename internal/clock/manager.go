package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/tminus/internal/countdown"
	"github.com/balkashynov/tminus/internal/models"
)

var (
	ErrNotFound  = errors.New("countdown not found")
	ErrAmbiguous = errors.New("countdown id is ambiguous")
)

// Observer receives every change to a clock. Views register one to keep
// their projections in step with the data.
type Observer interface {
	ClockChanged(c models.Clock, r countdown.Result, now time.Time)
	ClockRemoved(id string)
}

// Manager owns the ordered clock collection. It is not safe for concurrent
// use; the dashboard only touches it from the update loop.
type Manager struct {
	factory   *Factory
	clocks    []*models.Clock
	results   map[string]countdown.Result
	observers []Observer
	now       func() time.Time
}

// NewManager returns an empty manager
func NewManager(factory *Factory, observers ...Observer) *Manager {
	return &Manager{
		factory:   factory,
		results:   make(map[string]countdown.Result),
		observers: observers,
		now:       factory.now,
	}
}

// Observe registers another observer
func (m *Manager) Observe(o Observer) {
	m.observers = append(m.observers, o)
}

// Load replaces the collection. Duplicate IDs get fresh ones so every ID
// maps to exactly one clock.
func (m *Manager) Load(clocks []models.Clock) {
	for _, c := range m.clocks {
		m.remove(c.ID)
	}
	m.clocks = nil
	for _, c := range clocks {
		m.Insert(c)
	}
}

// Len returns the number of clocks
func (m *Manager) Len() int {
	return len(m.clocks)
}

// Clocks returns a copy of the current collection, in order
func (m *Manager) Clocks() []models.Clock {
	out := make([]models.Clock, 0, len(m.clocks))
	for _, c := range m.clocks {
		out = append(out, c.Clone())
	}
	return out
}

// Get returns a copy of the clock with id
func (m *Manager) Get(id string) (models.Clock, bool) {
	c := m.find(id)
	if c == nil {
		return models.Clock{}, false
	}
	return c.Clone(), true
}

// Index returns the position of id in the collection, or -1
func (m *Manager) Index(id string) int {
	for i, c := range m.clocks {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Result returns the latest derived values for id
func (m *Manager) Result(id string) (countdown.Result, bool) {
	r, ok := m.results[id]
	return r, ok
}

// Find resolves a full ID, or a unique prefix or suffix of one. Listings
// show the random tail of the ID.
func (m *Manager) Find(ref string) (models.Clock, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Clock{}, ErrNotFound
	}
	if c := m.find(ref); c != nil {
		return c.Clone(), nil
	}
	var match *models.Clock
	for _, c := range m.clocks {
		if strings.HasPrefix(c.ID, ref) || strings.HasSuffix(c.ID, ref) {
			if match != nil {
				return models.Clock{}, fmt.Errorf("%w: %q", ErrAmbiguous, ref)
			}
			match = c
		}
	}
	if match == nil {
		return models.Clock{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return match.Clone(), nil
}

// Add creates a clock with default fields and appends it
func (m *Manager) Add() models.Clock {
	return m.Insert(m.factory.New())
}

// Insert appends c after backfilling missing fields. A clashing ID is replaced.
func (m *Manager) Insert(c models.Clock) models.Clock {
	c = m.factory.Backfill(c.Clone())
	for m.find(c.ID) != nil {
		c.ID = NewID()
	}
	m.clocks = append(m.clocks, &c)
	m.notify(&c)
	return c.Clone()
}

// Delete removes id and both of its projections
func (m *Manager) Delete(id string) bool {
	i := m.Index(id)
	if i < 0 {
		return false
	}
	m.clocks = append(m.clocks[:i], m.clocks[i+1:]...)
	m.remove(id)
	return true
}

// SetTitle stores the title as typed
func (m *Manager) SetTitle(id, title string) bool {
	return m.mutate(id, func(c *models.Clock) { c.Title = title })
}

// SetStartDate stores the raw start date; unparsable text makes progress N/A
func (m *Manager) SetStartDate(id, date string) bool {
	return m.mutate(id, func(c *models.Clock) { c.StartDate = date })
}

// SetTargetDate stores the raw target date. Moving it back into the future
// takes a completed clock back to running on the next recompute.
func (m *Manager) SetTargetDate(id, date string) bool {
	return m.mutate(id, func(c *models.Clock) { c.TargetDate = date })
}

// SetTitleColor sets the title color
func (m *Manager) SetTitleColor(id, color string) bool {
	return m.mutate(id, func(c *models.Clock) { c.TitleColor = color })
}

// ResetTitleColor puts the title color back to white
func (m *Manager) ResetTitleColor(id string) bool {
	return m.SetTitleColor(id, models.DefaultTitleColor)
}

// Minimize hides the card and shows the badge
func (m *Manager) Minimize(id string) bool {
	return m.mutate(id, func(c *models.Clock) { c.IsMinimized = true })
}

// Restore shows the card again. A card that was never dragged, or sits at
// the canvas origin, goes back into the flow.
func (m *Manager) Restore(id string) bool {
	return m.mutate(id, func(c *models.Clock) {
		c.IsMinimized = false
		if c.Position.IsAnchored() {
			c.Position = nil
		}
	})
}

// ToggleMinimized flips between card and badge
func (m *Manager) ToggleMinimized(id string) bool {
	c := m.find(id)
	if c == nil {
		return false
	}
	if c.IsMinimized {
		return m.Restore(id)
	}
	return m.Minimize(id)
}

// MoveTo pins the card at an absolute position. From then on the card no
// longer flows.
func (m *Manager) MoveTo(id string, pos models.Position) bool {
	if pos.Top < 0 {
		pos.Top = 0
	}
	if pos.Left < 0 {
		pos.Left = 0
	}
	return m.mutate(id, func(c *models.Clock) { c.Position = &pos })
}

// Refresh re-sends every clock to the observers, e.g. after a theme change
func (m *Manager) Refresh() {
	for _, c := range m.clocks {
		m.notify(c)
	}
}

// Tick recomputes every clock at now. It never persists anything.
func (m *Manager) Tick(now time.Time) {
	for _, c := range m.clocks {
		m.notifyAt(c, now)
	}
}

func (m *Manager) find(id string) *models.Clock {
	for _, c := range m.clocks {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *Manager) mutate(id string, fn func(c *models.Clock)) bool {
	c := m.find(id)
	if c == nil {
		return false
	}
	fn(c)
	m.notify(c)
	return true
}

func (m *Manager) notify(c *models.Clock) {
	m.notifyAt(c, m.now())
}

func (m *Manager) notifyAt(c *models.Clock, now time.Time) {
	r := countdown.Evaluate(*c, now)
	m.results[c.ID] = r
	for _, o := range m.observers {
		o.ClockChanged(c.Clone(), r, now)
	}
}

func (m *Manager) remove(id string) {
	delete(m.results, id)
	for _, o := range m.observers {
		o.ClockRemoved(id)
	}
}
