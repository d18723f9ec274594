package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the resolved settings for one run
type Config struct {
	DataDir          string        `mapstructure:"data_dir"`
	DBPath           string        `mapstructure:"db_path"`
	LogFile          string        `mapstructure:"log_file"`
	SaveDelay        time.Duration `mapstructure:"save_delay"`
	DefaultSpan      time.Duration `mapstructure:"default_span"`
	PlaceholderTitle string        `mapstructure:"placeholder_title"`
	ReduceMotion     bool          `mapstructure:"reduce_motion"`
}

const (
	DefaultSaveDelay        = 500 * time.Millisecond
	DefaultSpan             = 7 * 24 * time.Hour
	DefaultPlaceholderTitle = "New countdown (edit me)"
)

// Default returns a config rooted at dataDir without reading any file
func Default(dataDir string) Config {
	return Config{
		DataDir:          dataDir,
		DBPath:           filepath.Join(dataDir, "tminus.db"),
		LogFile:          filepath.Join(dataDir, "tminus.log"),
		SaveDelay:        DefaultSaveDelay,
		DefaultSpan:      DefaultSpan,
		PlaceholderTitle: DefaultPlaceholderTitle,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/tminus/tminus.yml
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		if runtime.GOOS == "windows" {
			configHome = filepath.Join(homeDir, "AppData", "Roaming")
		} else {
			configHome = filepath.Join(homeDir, ".config")
		}
	}
	return filepath.Join(configHome, "tminus", "tminus.yml"), nil
}

func defaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tminus"), nil
}

// Load reads the config file (if any) and TMINUS_* environment overrides.
// An empty path means the default location. A missing file is fine.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("tminus")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dataDir, err := defaultDataDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get data directory: %w", err)
	}
	def := Default(dataDir)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("db_path", "")
	v.SetDefault("log_file", "")
	v.SetDefault("save_delay", def.SaveDelay)
	v.SetDefault("default_span", def.DefaultSpan)
	v.SetDefault("placeholder_title", def.PlaceholderTitle)
	v.SetDefault("reduce_motion", false)

	if path == "" {
		path, err = DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			log.Printf("config: %s not found, using defaults", path)
		} else {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	// Paths left empty follow data_dir
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "tminus.db")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "tminus.log")
	}
	if cfg.SaveDelay <= 0 {
		cfg.SaveDelay = DefaultSaveDelay
	}
	if cfg.DefaultSpan <= 0 {
		cfg.DefaultSpan = DefaultSpan
	}
	if strings.TrimSpace(cfg.PlaceholderTitle) == "" {
		cfg.PlaceholderTitle = DefaultPlaceholderTitle
	}

	return cfg, nil
}
