package db

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/balkashynov/tminus/internal/models"
)

// ThemeStore persists the global theme settings
type ThemeStore struct {
	kv *KV
}

// NewThemeStore wraps kv
func NewThemeStore(kv *KV) *ThemeStore {
	return &ThemeStore{kv: kv}
}

// Load overlays stored settings on the defaults. Corrupt or unknown
// values fall back to defaults.
func (s *ThemeStore) Load() (models.ThemeSettings, error) {
	settings := models.DefaultThemeSettings()

	raw, ok, err := s.kv.Get(models.KeySettings)
	if err != nil {
		return settings, err
	}
	if !ok {
		return settings, nil
	}

	stored := settings
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Printf("theme store: discarding corrupt settings: %v", err)
		return settings, nil
	}

	if stored.FabColorMode.Valid() {
		settings.FabColorMode = stored.FabColorMode
	}
	if stored.TimeNumberColor != "" {
		settings.TimeNumberColor = stored.TimeNumberColor
	}
	if stored.ProgressBarColor != "" {
		settings.ProgressBarColor = stored.ProgressBarColor
	}
	return settings, nil
}

// Save writes the settings
func (s *ThemeStore) Save(settings models.ThemeSettings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.kv.Put(models.KeySettings, string(b))
}
