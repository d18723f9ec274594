package countdown

import (
	"testing"
	"time"

	"github.com/balkashynov/tminus/internal/models"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2025-12-31T23:59", true},
		{"2025-12-31T23:59:30", true},
		{"2025-12-31 08:00", true},
		{"2025-12-31", true},
		{"", false},
		{"   ", false},
		{"tomorrow", false},
		{"2025-13-01T00:00", false},
	}
	for _, tt := range tests {
		_, ok := ParseInput(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseInput(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestFormatInputRoundTrip(t *testing.T) {
	want := time.Date(2026, 4, 5, 6, 7, 0, 0, time.Local)
	s := FormatInput(want)
	if s != "2026-04-05T06:07" {
		t.Fatalf("FormatInput = %q", s)
	}
	got, ok := ParseInput(s)
	if !ok || !got.Equal(want) {
		t.Errorf("ParseInput(FormatInput) = %v, %v", got, ok)
	}
}

func TestEvaluateDegradesOnBadDates(t *testing.T) {
	now := time.Now()
	c := models.Clock{StartDate: "garbage", TargetDate: FormatInput(now.Add(48 * time.Hour))}
	r := Evaluate(c, now)
	if r.Progress.Known {
		t.Error("expected N/A progress with an invalid start")
	}
	if r.Completed || r.Parts.Days != 1 {
		t.Errorf("unexpected result %+v", r)
	}

	c.TargetDate = ""
	r = Evaluate(c, now)
	if r.Completed || r.Remaining != 0 {
		t.Errorf("missing target should be indeterminate, got %+v", r)
	}
}
