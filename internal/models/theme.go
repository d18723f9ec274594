package models

// FabColorMode controls how minimized badges are colored
type FabColorMode string

const (
	FabColorDefault FabColorMode = "default"
	FabColorRandom  FabColorMode = "random"
	FabColorTitle   FabColorMode = "title"
)

// FabColorModes lists the modes in the order the settings panel cycles them
var FabColorModes = []FabColorMode{FabColorDefault, FabColorRandom, FabColorTitle}

// Valid reports whether the mode is one we know how to render
func (m FabColorMode) Valid() bool {
	switch m {
	case FabColorDefault, FabColorRandom, FabColorTitle:
		return true
	}
	return false
}

// ThemeSettings is the process-wide appearance policy
type ThemeSettings struct {
	FabColorMode     FabColorMode `json:"fabColorMode" yaml:"fab_color_mode"`
	TimeNumberColor  string       `json:"timeNumberColor" yaml:"time_number_color"`
	ProgressBarColor string       `json:"progressBarColor" yaml:"progress_bar_color"`
}

// DefaultThemeSettings returns the settings used before anything is stored
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		FabColorMode:     FabColorDefault,
		TimeNumberColor:  "#FFFFFF",
		ProgressBarColor: "#4CAF50",
	}
}
