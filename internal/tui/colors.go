package tui

// Dashboard palette. The header accent is random per session and lives on
// the model, not here.
const (
	ColorPanel  = "#1B1530" // editor and settings panels
	ColorBorder = "#3A3F55" // card and flowing badge borders

	ColorPrimaryText   = "#E6EAF2" // titles, input text
	ColorSecondaryText = "#B1B8C7" // unit labels, "ends ..." line
	ColorDisabledText  = "#6D7383" // N/A progress
	ColorPlaceholder   = ColorSecondaryText
	ColorHelpText      = "240"

	ColorSelected  = "#7C3AED" // selected card or badge border
	ColorHighlight = "#A78BFA" // cursor, shimmer peak

	ColorError     = "#EF4444" // failed saves, invalid hex
	ColorCompleted = "#22C55E" // completed marker on cards and badges
)
