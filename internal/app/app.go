package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/andy/tomatick/internal/config"
	"github.com/andy/tomatick/internal/crypto"
	"github.com/andy/tomatick/internal/db"
	"github.com/andy/tomatick/internal/domain"
	"github.com/andy/tomatick/internal/repository"
	"github.com/andy/tomatick/internal/service"
	"github.com/andy/tomatick/internal/timer"
)

// App is the dependency injection container for all application components
type App struct {
	Config     *config.Config
	ConfigPath string
	DB         *db.DB // nil with the file backend
	Keyring    crypto.Keyring

	Storage   repository.KeyValueRepository
	Settings  service.SettingsStore
	Durations domain.Durations
}

// New loads the config at path (the default path when empty) and builds the App
func New(ctx context.Context, path string) (*App, error) {
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.ConfigPath = path
	return a, nil
}

// NewWithConfig creates an App with a provided config (useful for testing).
// It opens storage and restores the saved theme settings.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	a := &App{
		Config:     cfg,
		ConfigPath: config.DefaultConfigPath(),
		Keyring:    crypto.NewKeyring(),
		Durations:  cfg.Durations(),
	}

	switch cfg.Storage.Backend {
	case config.BackendFile:
		a.Storage = repository.NewFileKVRepo(cfg.Storage.Path)
	default:
		database, err := openDatabase(ctx, cfg, a.Keyring)
		if err != nil {
			return nil, err
		}
		a.DB = database
		a.Storage = repository.NewKVRepo(database)
	}

	a.Settings = service.NewSettingsStore(a.Storage, nil)
	settings := a.Settings.Load(ctx)
	slog.Debug("Loaded theme settings",
		"color", settings.ColorTheme, "mode", settings.Mode,
		"background", settings.Background, "font", settings.Font)

	return a, nil
}

func openDatabase(ctx context.Context, cfg *config.Config, kr crypto.Keyring) (*db.DB, error) {
	key := ""
	if cfg.Storage.Encrypt {
		var err error
		if key, err = encryptionKey(kr); err != nil {
			return nil, err
		}
	}

	database, err := db.Open(cfg.Storage.Path, key)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// encryptionKey returns the stored key, prompting for a new one on first run
func encryptionKey(kr crypto.Keyring) (string, error) {
	key, err := kr.GetKey()
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, crypto.ErrKeyNotFound) {
		return "", err
	}
	// A key typed now would be lost on exit
	if !kr.IsAvailable() {
		return "", fmt.Errorf("no keychain to store an encryption key: set %s", crypto.EnvKey)
	}

	fmt.Println("Setting up settings encryption for the first time...")
	key, err = promptForKey()
	if err != nil {
		return "", fmt.Errorf("failed to set key: %w", err)
	}

	if err := kr.SetKey(key); err != nil {
		return "", fmt.Errorf("failed to store encryption key: %w", err)
	}

	return key, nil
}

// promptForKey reads a new key twice from the terminal without echo
func promptForKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal to prompt on: set %s", crypto.EnvKey)
	}

	fmt.Print("Enter a key for settings encryption: ")
	key, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	if len(key) == 0 {
		return "", fmt.Errorf("key cannot be empty")
	}

	fmt.Print("Confirm key: ")
	confirm, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(key) != string(confirm) {
		return "", fmt.Errorf("keys do not match")
	}

	return string(key), nil
}

// NewEngine creates a countdown engine with the configured durations
func (a *App) NewEngine(opts ...timer.Option) *timer.Engine {
	return timer.NewEngine(a.Durations, opts...)
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Wipe deletes the stored settings record. With an encrypted database it
// also closes and removes the database files and deletes the key, so the
// next start sets up encryption from scratch. The App must not be used for
// storage afterwards in that case.
func (a *App) Wipe(ctx context.Context) error {
	if err := a.Storage.Delete(ctx, service.StorageKey); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	a.Settings.Load(ctx)

	if !a.Config.Storage.Encrypt {
		return nil
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.DB = nil
	}
	for _, suffix := range []string{"", "-wal", "-shm"} {
		err := os.Remove(a.Config.Storage.Path + suffix)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove database: %w", err)
		}
	}
	if err := a.Keyring.DeleteKey(); err != nil {
		return err
	}

	slog.Info("Wiped encrypted database", "path", a.Config.Storage.Path)
	return nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(a.ConfigPath)
}
