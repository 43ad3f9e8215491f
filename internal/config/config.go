package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andy/tomatick/internal/domain"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

type Config struct {
	// Where the settings record is stored
	Storage StorageConfig `yaml:"storage"`

	// Countdown lengths, fixed for the lifetime of the process
	Timer TimerConfig `yaml:"timer"`

	Log LogConfig `yaml:"log"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite or file
	Path    string `yaml:"path"`    // database file, or directory for the file backend
	Encrypt bool   `yaml:"encrypt"` // encrypt the sqlite database with a keyring key
}

type TimerConfig struct {
	Pomodoro     time.Duration `yaml:"pomodoro"`
	ShortBreak   time.Duration `yaml:"short_break"`
	LongBreak    time.Duration `yaml:"long_break"`
	TickInterval time.Duration `yaml:"tick_interval"` // headless run only
	Bell         bool          `yaml:"bell"`          // ring the terminal bell on completion
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error; empty disables logging
	File  string `yaml:"file"`
}

// Dir returns ~/.config/tomatick
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "tomatick")
	}
	return filepath.Join(homeDir, ".config", "tomatick")
}

// DefaultConfigPath returns ~/.config/tomatick/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultDatabasePath returns ~/.config/tomatick/tomatick.db
func DefaultDatabasePath() string {
	return filepath.Join(Dir(), "tomatick.db")
}

// DefaultFileStorePath returns ~/.config/tomatick/store, the directory the
// file backend uses when no path is configured
func DefaultFileStorePath() string {
	return filepath.Join(Dir(), "store")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	durations := domain.DefaultDurations()

	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    DefaultDatabasePath(),
		},
		Timer: TimerConfig{
			Pomodoro:     durations.Pomodoro,
			ShortBreak:   durations.ShortBreak,
			LongBreak:    durations.LongBreak,
			TickInterval: time.Second,
			Bell:         true,
		},
		Log: LogConfig{
			File: filepath.Join(Dir(), "tomatick.log"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML over the defaults so omitted keys keep their values
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// The default path names the sqlite file; the file backend needs a directory
	if cfg.Storage.Backend == BackendFile && cfg.Storage.Path == DefaultDatabasePath() {
		cfg.Storage.Path = DefaultFileStorePath()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Validate checks values that have no sensible fallback
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", c.Storage.Backend, BackendSQLite, BackendFile)
	}
	if c.Storage.Encrypt && c.Storage.Backend != BackendSQLite {
		return fmt.Errorf("encryption requires the %s backend", BackendSQLite)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}
	if c.Timer.TickInterval < time.Second {
		return fmt.Errorf("timer.tick_interval must be at least 1s, got %s", c.Timer.TickInterval)
	}
	return nil
}

// Durations returns the per-mode countdown lengths; non-positive values use the defaults
func (c *Config) Durations() domain.Durations {
	return domain.Durations{
		Pomodoro:   c.Timer.Pomodoro,
		ShortBreak: c.Timer.ShortBreak,
		LongBreak:  c.Timer.LongBreak,
	}.WithDefaults()
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the storage directory
func (c *Config) EnsureDirectories() error {
	dir := c.Storage.Path
	if c.Storage.Backend == BackendSQLite {
		dir = filepath.Dir(c.Storage.Path)
	}
	return os.MkdirAll(dir, 0755)
}
