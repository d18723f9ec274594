package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ShimmerConfig holds configuration for the attention shimmer
type ShimmerConfig struct {
	ReduceMotion bool          // if true → static highlight
	Burst        time.Duration // how long the sweep runs after attention starts
	Cycle        time.Duration // one sweep across the text
	Frame        time.Duration // animation tick interval
	WidthRatio   float64       // highlight width relative to text length
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Burst:      3 * time.Second,
		Cycle:      time.Second,
		Frame:      100 * time.Millisecond,
		WidthRatio: 0.25,
	}
}

// Shimmer renders a Gaussian highlight sweeping over a badge title. It is
// stateless: the frame is derived from how long attention has been on.
type Shimmer struct {
	Config ShimmerConfig
}

// NewShimmer creates a shimmer from config
func NewShimmer(config ShimmerConfig) Shimmer {
	return Shimmer{Config: config}
}

// Animating reports whether a badge whose attention began at since is still
// inside its burst at now
func (s Shimmer) Animating(since, now time.Time) bool {
	if s.Config.ReduceMotion || since.IsZero() {
		return false
	}
	elapsed := now.Sub(since)
	return elapsed >= 0 && elapsed < s.Config.Burst
}

// Render draws text in style, with the highlight color swept across it while
// animating and held statically afterwards
func (s Shimmer) Render(text string, style lipgloss.Style, highlight string, since, now time.Time) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if !s.Animating(since, now) {
		return style.Foreground(lipgloss.Color(highlight)).Bold(true).Render(text)
	}

	base, err := colorful.Hex(colorOf(style))
	if err != nil {
		base, _ = colorful.Hex(ColorSecondaryText)
	}
	hi, err := colorful.Hex(highlight)
	if err != nil {
		hi, _ = colorful.Hex(ColorHighlight)
	}

	center := s.center(len(runes), now.Sub(since))
	sigma := math.Max(1, s.Config.WidthRatio*float64(len(runes))/2)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		c := base.BlendRgb(hi, math.Min(1, math.Max(0, weight))).Clamped()
		b.WriteString(style.Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// center places the highlight for elapsed, starting before the text and
// ending past it on every cycle
func (s Shimmer) center(length int, elapsed time.Duration) float64 {
	cycle := s.Config.Cycle
	if cycle <= 0 {
		cycle = time.Second
	}
	phase := float64(elapsed%cycle) / float64(cycle)
	margin := float64(length) * s.Config.WidthRatio
	return -margin + phase*(float64(length)+2*margin)
}

func colorOf(style lipgloss.Style) string {
	if c, ok := style.GetForeground().(lipgloss.Color); ok && strings.HasPrefix(string(c), "#") {
		return string(c)
	}
	return ColorSecondaryText
}
