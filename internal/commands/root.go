package commands

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/config"
	"github.com/balkashynov/tminus/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile string
	dbPath  string
	cfg     config.Config
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "tminus",
	Short: "Countdown clocks in your terminal",
	Long: `tminus keeps a dashboard of countdown clocks to the dates that matter.
Run it without a command to open the dashboard, or manage countdowns from the shell.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()
		return tui.RunDashboard(a.dashboardOptions(""))
	},
}

// loadConfig resolves the config and sends the standard logger to the log
// file. Lines logged before the file is open are kept and written first.
func loadConfig(cmd *cobra.Command, args []string) error {
	var early bytes.Buffer
	log.SetOutput(&early)

	loaded, err := config.Load(cfgFile)
	if err != nil {
		log.SetOutput(os.Stderr)
		return err
	}
	if dbPath != "" {
		loaded.DBPath = dbPath
	}
	cfg = loaded

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Logging is best effort; commands still work without it
		log.SetOutput(io.Discard)
		return nil
	}
	logFile = f
	log.SetOutput(f)
	if early.Len() > 0 {
		_, _ = f.Write(early.Bytes())
	}
	return nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logFile != nil {
			logFile.Close()
		}
	}()
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tminus %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/tminus/tminus.yml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides db_path)")

	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(minimizeCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(bingoCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
