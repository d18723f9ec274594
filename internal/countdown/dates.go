package countdown

import (
	"strings"
	"time"

	"github.com/balkashynov/tminus/internal/models"
)

// InputLayout is the local wall-clock encoding used for start and target dates
const InputLayout = "2006-01-02T15:04"

// Layouts accepted when reading dates back, most specific first
var inputLayouts = []string{
	InputLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInput parses a stored or typed date in local time. Empty or
// unparsable input reports false so callers can degrade to N/A.
func ParseInput(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatInput formats a time with minute precision in local time
func FormatInput(t time.Time) string {
	return t.In(time.Local).Format(InputLayout)
}

// Evaluate runs Calculate against a clock's stored dates
func Evaluate(c models.Clock, now time.Time) Result {
	var start, target *time.Time
	if t, ok := ParseInput(c.StartDate); ok {
		start = &t
	}
	if t, ok := ParseInput(c.TargetDate); ok {
		target = &t
	}
	return Calculate(now, start, target)
}
