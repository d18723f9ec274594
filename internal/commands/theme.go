package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the dashboard theme",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		printTheme(*a.theme)
	}),
}

var themeSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change theme settings",
	Long: `Change theme settings.

  --mode        Badge color mode: default, random or title
  --time-color  Color of the countdown numbers (#RRGGBB)
  --bar-color   Base color of the progress bar gradient (#RRGGBB)`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		settings, err := applyThemeFlags(cmd, *a.theme)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := a.themes.Save(settings); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🎨 Theme updated")
		printTheme(settings)
	}),
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default theme",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		settings := models.DefaultThemeSettings()
		if err := a.themes.Save(settings); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🎨 Theme reset to defaults")
		printTheme(settings)
	}),
}

func applyThemeFlags(cmd *cobra.Command, settings models.ThemeSettings) (models.ThemeSettings, error) {
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		m := models.FabColorMode(mode)
		if !m.Valid() {
			return settings, fmt.Errorf("invalid mode %q, use default, random or title", mode)
		}
		settings.FabColorMode = m
	}
	if color, _ := cmd.Flags().GetString("time-color"); color != "" {
		if !theme.ValidHex(color) {
			return settings, fmt.Errorf("invalid time color %q", color)
		}
		settings.TimeNumberColor = theme.Normalize(color, settings.TimeNumberColor)
	}
	if color, _ := cmd.Flags().GetString("bar-color"); color != "" {
		if !theme.ValidHex(color) {
			return settings, fmt.Errorf("invalid bar color %q", color)
		}
		settings.ProgressBarColor = theme.Normalize(color, settings.ProgressBarColor)
	}
	return settings, nil
}

func printTheme(settings models.ThemeSettings) {
	from, to := theme.ProgressGradient(settings)
	fmt.Printf("  Badge mode:    %s\n", settings.FabColorMode)
	fmt.Printf("  Number color:  %s\n", settings.TimeNumberColor)
	fmt.Printf("  Progress bar:  %s → %s\n", from, to)
}

func init() {
	themeSetCmd.Flags().String("mode", "", "Badge color mode: default|random|title")
	themeSetCmd.Flags().String("time-color", "", "Countdown number color (#RRGGBB)")
	themeSetCmd.Flags().String("bar-color", "", "Progress bar color (#RRGGBB)")

	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeResetCmd)
}
