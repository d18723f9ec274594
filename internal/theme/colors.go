package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/balkashynov/tminus/internal/models"
)

const (
	DarkText  = "#000000"
	LightText = "#FFFFFF"

	// DefaultBadgeBackground stands in for the translucent dark chip of the
	// default badge mode
	DefaultBadgeBackground = "#2B2B2B"

	// luminanceThreshold splits light from dark backgrounds on the 0-255 scale
	luminanceThreshold = 150
)

// ParseHex parses #rgb or #rrggbb, with or without the leading #
func ParseHex(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return colorful.Hex(hex)
}

// ValidHex reports whether hex is a color we can render
func ValidHex(hex string) bool {
	_, err := ParseHex(hex)
	return err == nil
}

// Normalize returns hex as upper-case #RRGGBB, or fallback if it doesn't parse
func Normalize(hex, fallback string) string {
	c, err := ParseHex(hex)
	if err != nil {
		return fallback
	}
	return strings.ToUpper(c.Clamped().Hex())
}

// rgb255 returns 0-255 channels; unparsable colors count as white
func rgb255(hex string) (r, g, b uint8) {
	c, err := ParseHex(hex)
	if err != nil {
		return 255, 255, 255
	}
	return c.Clamped().RGB255()
}

// Luminance is the broadcast (BT.709) weighting on 0-255 channel values
func Luminance(hex string) float64 {
	r, g, b := rgb255(hex)
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// AdaptiveText picks dark text for light backgrounds and light text otherwise
func AdaptiveText(background string) string {
	if Luminance(background) > luminanceThreshold {
		return DarkText
	}
	return LightText
}

// RandomColor returns a pleasant random color as #RRGGBB
func RandomColor() string {
	return strings.ToUpper(colorful.FastHappyColor().Hex())
}

// Lighten adds amount to every channel, capped at 255
func Lighten(hex string, amount int) string {
	r, g, b := rgb255(hex)
	add := func(v uint8) int {
		return min(255, int(v)+amount)
	}
	return fmt.Sprintf("#%02X%02X%02X", add(r), add(g), add(b))
}

// ProgressGradient returns the two stops of the progress bar gradient
func ProgressGradient(settings models.ThemeSettings) (string, string) {
	base := Normalize(settings.ProgressBarColor, models.DefaultThemeSettings().ProgressBarColor)
	return base, Lighten(base, 50)
}

// BadgeColors is the resolved look of one minimized badge
type BadgeColors struct {
	Background string
	Foreground string
	Border     bool
}

// ResolveBadge applies the fab color mode. randomColor is the badge's own
// stable color for random mode. Completed badges carry their own marker, so
// they never get the mode's border.
func ResolveBadge(mode models.FabColorMode, titleColor, randomColor string, completed bool) BadgeColors {
	switch mode {
	case models.FabColorRandom:
		return BadgeColors{
			Background: randomColor,
			Foreground: AdaptiveText(randomColor),
			Border:     false,
		}
	case models.FabColorTitle:
		bg := Normalize(titleColor, models.DefaultTitleColor)
		return BadgeColors{
			Background: bg,
			Foreground: AdaptiveText(bg),
			Border:     !completed,
		}
	default:
		return BadgeColors{
			Background: DefaultBadgeBackground,
			Foreground: LightText,
			Border:     !completed,
		}
	}
}
