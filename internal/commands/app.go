package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/clock"
	"github.com/balkashynov/tminus/internal/db"
	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/projection"
	"github.com/balkashynov/tminus/internal/tui"
)

// app is everything a command needs: the stores and a loaded manager
type app struct {
	factory *clock.Factory
	manager *clock.Manager
	sync    *projection.Sync
	theme   *models.ThemeSettings

	clocks *db.ClockStore
	themes *db.ThemeStore
	boards *db.BingoStore
}

// openApp initializes the database and loads clocks and theme
func openApp() (*app, error) {
	if err := db.Initialize(cfg.DBPath); err != nil {
		return nil, err
	}
	kv := db.NewKV(db.DB)

	a := &app{
		factory: clock.NewFactory(cfg),
		themes:  db.NewThemeStore(kv),
		boards:  db.NewBingoStore(kv),
	}
	a.clocks = db.NewClockStore(kv, a.factory)

	settings, err := a.themes.Load()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	a.theme = &settings
	a.sync = projection.NewSync(a.theme)
	a.manager = clock.NewManager(a.factory, a.sync)

	loaded, err := a.clocks.Load()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to load countdowns: %w", err)
	}
	a.manager.Load(loaded)
	return a, nil
}

func (a *app) close() {
	if err := db.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}

// save writes the whole clock collection
func (a *app) save() error {
	if err := a.clocks.Save(a.manager.Clocks()); err != nil {
		return fmt.Errorf("failed to save countdowns: %w", err)
	}
	return nil
}

func (a *app) dashboardOptions(edit string) tui.Options {
	return tui.Options{
		Manager: a.manager,
		Sync:    a.sync,
		Theme:   a.theme,
		Clocks:  a.clocks,
		Themes:  a.themes,
		Config:  cfg,
		Edit:    edit,
	}
}

// withApp wraps a command function to open the app first. Failures are
// printed the way every command prints them.
func withApp(fn func(cmd *cobra.Command, args []string, a *app)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.close()
		fn(cmd, args, a)
	}
}

// shortID is the tail shown in listings; Find resolves it back
func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
