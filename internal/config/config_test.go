package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SaveDelay != DefaultSaveDelay {
		t.Errorf("SaveDelay = %v", cfg.SaveDelay)
	}
	if cfg.DefaultSpan != DefaultSpan {
		t.Errorf("DefaultSpan = %v", cfg.DefaultSpan)
	}
	if cfg.PlaceholderTitle != DefaultPlaceholderTitle {
		t.Errorf("PlaceholderTitle = %q", cfg.PlaceholderTitle)
	}
	if filepath.Dir(cfg.DBPath) != cfg.DataDir {
		t.Errorf("DBPath %q not under %q", cfg.DBPath, cfg.DataDir)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tminus.yml")
	content := []byte("data_dir: " + dir + "\nsave_delay: 2s\nplaceholder_title: Deadline\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TMINUS_REDUCE_MOTION", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SaveDelay != 2*time.Second {
		t.Errorf("SaveDelay = %v", cfg.SaveDelay)
	}
	if cfg.PlaceholderTitle != "Deadline" {
		t.Errorf("PlaceholderTitle = %q", cfg.PlaceholderTitle)
	}
	if !cfg.ReduceMotion {
		t.Error("env override for reduce_motion ignored")
	}
	if cfg.DBPath != filepath.Join(dir, "tminus.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}
