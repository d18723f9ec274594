package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/theme"
)

// exportVersion is bumped when the document shape changes
const exportVersion = 1

// exportDoc is the YAML document written by export and read by import
type exportDoc struct {
	Version    int                   `yaml:"version"`
	Theme      *models.ThemeSettings `yaml:"theme,omitempty"`
	Countdowns []models.Clock        `yaml:"countdowns"`
}

var errNoCountdowns = errors.New("file contains no countdowns")

func encodeExport(clocks []models.Clock, settings models.ThemeSettings) ([]byte, error) {
	doc := exportDoc{Version: exportVersion, Theme: &settings, Countdowns: clocks}
	if doc.Countdowns == nil {
		doc.Countdowns = []models.Clock{}
	}
	return yaml.Marshal(doc)
}

// decodeImport parses an export document. Theme values that don't
// validate are replaced with the defaults.
func decodeImport(data []byte) (exportDoc, error) {
	var doc exportDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse export: %w", err)
	}
	if doc.Version > exportVersion {
		return doc, fmt.Errorf("unsupported export version %d", doc.Version)
	}
	if len(doc.Countdowns) == 0 && doc.Theme == nil {
		return doc, errNoCountdowns
	}
	if doc.Theme != nil {
		defaults := models.DefaultThemeSettings()
		if !doc.Theme.FabColorMode.Valid() {
			doc.Theme.FabColorMode = defaults.FabColorMode
		}
		doc.Theme.TimeNumberColor = theme.Normalize(doc.Theme.TimeNumberColor, defaults.TimeNumberColor)
		doc.Theme.ProgressBarColor = theme.Normalize(doc.Theme.ProgressBarColor, defaults.ProgressBarColor)
	}
	return doc, nil
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export countdowns and theme as YAML",
	Long:  "Write every countdown and the theme as YAML to a file, or to stdout when no file is given",
	Args:  cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		data, err := encodeExport(a.manager.Clocks(), *a.theme)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(args) == 0 {
			fmt.Print(string(data))
			return
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📦 Exported %d countdowns to %s\n", a.manager.Len(), args[0])
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import countdowns from a YAML export",
	Long: `Import countdowns from a YAML export. Imported countdowns are appended;
clashing IDs get new ones. Missing fields get the usual defaults.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		doc, err := decodeImport(data)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if replace, _ := cmd.Flags().GetBool("replace"); replace {
			a.manager.Load(nil)
		}
		for _, c := range doc.Countdowns {
			a.manager.Insert(c)
		}
		if err := a.save(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if withTheme, _ := cmd.Flags().GetBool("theme"); withTheme && doc.Theme != nil {
			if err := a.themes.Save(*doc.Theme); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println("🎨 Theme imported")
		}
		fmt.Printf("📥 Imported %d countdowns (%d total)\n", len(doc.Countdowns), a.manager.Len())
	}),
}

func init() {
	importCmd.Flags().Bool("replace", false, "Replace existing countdowns instead of appending")
	importCmd.Flags().Bool("theme", false, "Also import the theme settings")
}
