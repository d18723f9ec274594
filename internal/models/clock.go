package models

// Clock represents one countdown on the dashboard
type Clock struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	StartDate   string    `json:"startDate" yaml:"start"`  // YYYY-MM-DDTHH:MM, local time
	TargetDate  string    `json:"targetDate" yaml:"target"` // YYYY-MM-DDTHH:MM, local time
	IsMinimized bool      `json:"isMinimized" yaml:"minimized"`
	Position    *Position `json:"-" yaml:"position,omitempty"` // nil = card flows with the layout
	TitleColor  string    `json:"titleColor" yaml:"title_color"`
}

// Position is the top-left corner of a dragged card, in terminal cells
type Position struct {
	Top  int `json:"top" yaml:"top"`
	Left int `json:"left" yaml:"left"`
}

// DefaultTitleColor is used for new clocks and when a stored color is missing
const DefaultTitleColor = "#FFFFFF"

// IsAnchored reports whether the card sits at the canvas origin, where a
// restored card is put back into the flow
func (p *Position) IsAnchored() bool {
	return p == nil || (p.Top == 0 && p.Left == 0)
}

// Clone returns a deep copy so callers can't mutate the manager's state
func (c Clock) Clone() Clock {
	if c.Position != nil {
		pos := *c.Position
		c.Position = &pos
	}
	return c
}
