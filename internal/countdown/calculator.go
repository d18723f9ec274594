package countdown

import (
	"fmt"
	"time"
)

// Progress is the elapsed share of a countdown. Known is false when the
// start or target is missing, which renders as "N/A" rather than 0.
type Progress struct {
	Known   bool
	Percent float64
}

// NotAvailable is the progress of a clock without usable dates
var NotAvailable = Progress{}

// String formats the progress the way both projections show it
func (p Progress) String() string {
	if !p.Known {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", p.Percent)
}

// Fraction returns the progress in 0..1 for progress bars
func (p Progress) Fraction() float64 {
	if !p.Known {
		return 0
	}
	return p.Percent / 100
}

// Parts is a remaining duration split into display units
type Parts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Strings returns days unpadded and the other units zero-padded to two digits
func (p Parts) Strings() (days, hours, minutes, seconds string) {
	return fmt.Sprintf("%d", p.Days),
		fmt.Sprintf("%02d", p.Hours),
		fmt.Sprintf("%02d", p.Minutes),
		fmt.Sprintf("%02d", p.Seconds)
}

// String renders the parts as "3d 12h 00m 00s"
func (p Parts) String() string {
	d, h, m, s := p.Strings()
	return fmt.Sprintf("%sd %sh %sm %ss", d, h, m, s)
}

// Result is everything derived from a clock's dates at one instant
type Result struct {
	Remaining time.Duration
	Parts     Parts
	Completed bool
	Progress  Progress
}

// Calculate derives remaining time, completion and progress. A nil target
// yields zero remaining, not completed and N/A progress. A nil start only
// makes the progress N/A.
func Calculate(now time.Time, start, target *time.Time) Result {
	var result Result
	result.Progress = NotAvailable

	if target == nil {
		return result
	}

	remaining := target.Sub(now)
	if remaining <= 0 {
		result.Completed = true
		remaining = 0
	}
	result.Remaining = remaining.Truncate(time.Second)
	result.Parts = Split(result.Remaining)

	if start != nil {
		result.Progress = progress(now, *start, *target)
	}

	return result
}

// Split breaks a duration into days, hours, minutes and seconds using
// integer division of whole seconds
func Split(d time.Duration) Parts {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	days := total / 86400
	total %= 86400
	hours := total / 3600
	total %= 3600
	minutes := total / 60
	seconds := total % 60
	return Parts{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

func progress(now, start, target time.Time) Progress {
	total := target.Sub(start)
	elapsed := now.Sub(start)

	switch {
	case total <= 0:
		return Progress{Known: true, Percent: 0}
	case elapsed >= total:
		return Progress{Known: true, Percent: 100}
	}

	percent := elapsed.Seconds() / total.Seconds() * 100
	if percent < 0 {
		percent = 0
	}
	return Progress{Known: true, Percent: percent}
}
