package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/tminus/internal/theme"
)

// ParsedClock is a countdown described in one line
type ParsedClock struct {
	Title      string
	StartDate  string
	TargetDate string
	TitleColor string
	Minimized  bool
	Errors     []string
}

var (
	targetRegex    = regexp.MustCompile(`(?:due|target|in):(\S+)`)
	startRegex     = regexp.MustCompile(`(?:from|start):(\S+)`)
	colorRegex     = regexp.MustCompile(`(^|\s)(#[0-9A-Fa-f]{6}|#[0-9A-Fa-f]{3})\b`)
	minimizedRegex = regexp.MustCompile(`(^|\s)!min\b`)
)

// ParseTitle extracts metadata from a one-line countdown description.
// Syntax: "Exam day due:3days from:now #FF8800 !min"
// Dates inside a token use no spaces: "3days", "2weeks" or "24/12/2025".
func ParseTitle(input string, now time.Time) ParsedClock {
	result := ParsedClock{Errors: []string{}}

	if m := targetRegex.FindStringSubmatch(input); m != nil {
		if target, err := ParseDateInput(m[1], now); err != nil {
			result.Errors = append(result.Errors, "Invalid target '"+m[1]+"': "+err.Error())
		} else {
			result.TargetDate = target
		}
		input = targetRegex.ReplaceAllString(input, "")
	}

	if m := startRegex.FindStringSubmatch(input); m != nil {
		if start, err := ParseDateInput(m[1], now); err != nil {
			result.Errors = append(result.Errors, "Invalid start '"+m[1]+"': "+err.Error())
		} else {
			result.StartDate = start
		}
		input = startRegex.ReplaceAllString(input, "")
	}

	if m := colorRegex.FindStringSubmatch(input); m != nil {
		result.TitleColor = theme.Normalize(m[2], "")
		input = colorRegex.ReplaceAllString(input, "$1")
	}

	if minimizedRegex.MatchString(input) {
		result.Minimized = true
		input = minimizedRegex.ReplaceAllString(input, "$1")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")
	return result
}
