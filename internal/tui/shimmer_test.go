package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestShimmerBurst(t *testing.T) {
	s := NewShimmer(DefaultShimmerConfig())
	since := testNow

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start", since, true},
		{"mid burst", since.Add(1500 * time.Millisecond), true},
		{"after burst", since.Add(3 * time.Second), false},
		{"before start", since.Add(-time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Animating(since, tt.at); got != tt.want {
				t.Errorf("Animating = %v, want %v", got, tt.want)
			}
		})
	}

	if s.Animating(time.Time{}, since) {
		t.Error("zero start should never animate")
	}
}

func TestShimmerReduceMotion(t *testing.T) {
	cfg := DefaultShimmerConfig()
	cfg.ReduceMotion = true
	s := NewShimmer(cfg)
	if s.Animating(testNow, testNow) {
		t.Error("reduce motion still animates")
	}
}

func TestShimmerKeepsText(t *testing.T) {
	s := NewShimmer(DefaultShimmerConfig())
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#B1B8C7"))

	for _, at := range []time.Time{testNow.Add(200 * time.Millisecond), testNow.Add(10 * time.Second)} {
		got := ansi.Strip(s.Render("Exam day", style, ColorCompleted, testNow, at))
		if got != "Exam day" {
			t.Errorf("Render at %v = %q", at.Sub(testNow), got)
		}
	}
	if s.Render("", style, ColorCompleted, testNow, testNow) != "" {
		t.Error("empty text rendered something")
	}
}

func TestShimmerSweepsAcross(t *testing.T) {
	s := NewShimmer(DefaultShimmerConfig())
	early := s.center(10, 0)
	late := s.center(10, 900*time.Millisecond)
	if !(early < 0 && late > 9) {
		t.Errorf("center moves %v -> %v", early, late)
	}
}
