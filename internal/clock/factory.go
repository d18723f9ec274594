package clock

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/tminus/internal/config"
	"github.com/balkashynov/tminus/internal/countdown"
	"github.com/balkashynov/tminus/internal/models"
)

// Factory builds new clocks and fills in fields missing from stored ones
type Factory struct {
	Span        time.Duration
	Placeholder string
	Now         func() time.Time
}

// NewFactory returns a factory configured from cfg
func NewFactory(cfg config.Config) *Factory {
	return &Factory{
		Span:        cfg.DefaultSpan,
		Placeholder: cfg.PlaceholderTitle,
		Now:         time.Now,
	}
}

// NewID returns a time-ordered unique identifier
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// V7 only fails when the random source does; fall back to V4
		return uuid.NewString()
	}
	return id.String()
}

// New returns a clock with every field set to its default and a fresh ID
func (f *Factory) New() models.Clock {
	c := f.Defaults()
	c.ID = NewID()
	return c
}

// Defaults returns the default field values, without an ID
func (f *Factory) Defaults() models.Clock {
	now := f.now()
	span := f.Span
	if span <= 0 {
		span = config.DefaultSpan
	}
	return models.Clock{
		Title:      f.placeholder(),
		StartDate:  countdown.FormatInput(now),
		TargetDate: countdown.FormatInput(now.Add(span)),
		TitleColor: models.DefaultTitleColor,
	}
}

// Backfill replaces empty fields of c with defaults, one field at a time.
// Defaults are computed once per call.
func (f *Factory) Backfill(c models.Clock) models.Clock {
	def := f.Defaults()
	if strings.TrimSpace(c.ID) == "" {
		c.ID = NewID()
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = def.Title
	}
	if strings.TrimSpace(c.StartDate) == "" {
		c.StartDate = def.StartDate
	}
	if strings.TrimSpace(c.TargetDate) == "" {
		c.TargetDate = def.TargetDate
	}
	if strings.TrimSpace(c.TitleColor) == "" {
		c.TitleColor = def.TitleColor
	}
	return c
}

func (f *Factory) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Factory) placeholder() string {
	if strings.TrimSpace(f.Placeholder) == "" {
		return config.DefaultPlaceholderTitle
	}
	return f.Placeholder
}
