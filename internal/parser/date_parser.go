package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/tminus/internal/countdown"
)

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:\s+(\d{1,2}):(\d{2}))?$`)
	relativeRegex = regexp.MustCompile(`^(?:in\s+)?(\d+)\s*(m|min|mins|minute|minutes|h|hour|hours|d|day|days|w|week|weeks)$`)
)

// ParseDate parses the date forms accepted on the command line, relative to now.
// Supported formats:
// - YYYY-MM-DDTHH:MM (e.g., "2025-12-24T18:00"), also with a space or seconds
// - dd/mm/yyyy with optional HH:MM (e.g., "24/12/2025", "24/12/2025 18:00")
// - X minutes, hours, days or weeks (e.g., "90 minutes", "3 days", "in 2 weeks")
// - "now"
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if strings.EqualFold(input, "now") {
		return now.Truncate(time.Minute), nil
	}
	if t, ok := countdown.ParseInput(input); ok {
		return t, nil
	}
	if t, err := parseDateFormat(input); err == nil {
		return t, nil
	}
	if t, err := parseRelativeTime(input, now); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q. Use: YYYY-MM-DDTHH:MM, dd/mm/yyyy [HH:MM], X minutes, X hours, X days or X weeks", input)
}

// ParseDateInput is ParseDate formatted for storage
func ParseDateInput(input string, now time.Time) (string, error) {
	t, err := ParseDate(input, now)
	if err != nil {
		return "", err
	}
	return countdown.FormatInput(t), nil
}

// parseDateFormat parses dd/mm/yyyy [HH:MM]; a bare date means midnight
func parseDateFormat(input string) (time.Time, error) {
	matches := dateRegex.FindStringSubmatch(input)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])
	hour, minute := 0, 0
	if matches[4] != "" {
		hour, _ = strconv.Atoi(matches[4])
		minute, _ = strconv.Atoi(matches[5])
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time of day")
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)

	// time.Date normalizes 31/02 into March; reject instead
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return t, nil
}

// parseRelativeTime parses "3 days", "12h", "in 2 weeks" and the like
func parseRelativeTime(input string, now time.Time) (time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 {
		return time.Time{}, fmt.Errorf("amount must be a positive number")
	}

	base := now.Truncate(time.Minute)
	switch matches[2] {
	case "m", "min", "mins", "minute", "minutes":
		return base.Add(time.Duration(amount) * time.Minute), nil
	case "h", "hour", "hours":
		return base.Add(time.Duration(amount) * time.Hour), nil
	case "d", "day", "days":
		return base.AddDate(0, 0, amount), nil
	default:
		return base.AddDate(0, 0, amount*7), nil
	}
}

// FormatTarget describes a target date for list output
func FormatTarget(target string, now time.Time) string {
	t, ok := countdown.ParseInput(target)
	if !ok {
		return "❔ no valid target"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	daysDiff := int(day.Sub(today).Hours() / 24)

	dateStr := t.Format("02/01/2006 15:04")

	switch {
	case !t.After(now):
		return fmt.Sprintf("✅ Ended (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("🔥 Today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("📅 Tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("📅 %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("📅 %s", dateStr)
	}
}
