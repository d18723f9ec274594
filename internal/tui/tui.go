package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// RunDashboard starts the interactive countdown dashboard. The standard
// logger goes to the configured log file while the alt screen is up.
func RunDashboard(opts Options) error {
	if opts.Config.LogFile != "" {
		restore, err := logToFile(opts.Config.LogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer restore()
	}

	model := New(opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after TUI closes
	if m, ok := finalModel.(Model); ok {
		if err := m.writer.FlushPending(); err != nil {
			return fmt.Errorf("failed to save countdowns: %w", err)
		}
		fmt.Printf("👋 %d countdowns saved.\n", m.manager.Len())
	}
	return nil
}

// logToFile points the standard logger at path for the life of the program.
// restore puts the previous writer back before closing the file, so callers
// that keep logging after the dashboard exits don't write to a closed file.
func logToFile(path string) (restore func(), err error) {
	prev := log.Writer()
	f, err := tea.LogToFile(path, "tminus")
	if err != nil {
		log.SetOutput(prev)
		return nil, err
	}
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}
