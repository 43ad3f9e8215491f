package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/andy/tomatick/internal/domain"
	"github.com/andy/tomatick/internal/repository"
	"github.com/andy/tomatick/internal/theme"
)

// StorageKey is the key the settings record lives under
const StorageKey = "pomodoro-theme-settings"

var ErrUnknownField = errors.New("unknown settings field")

// Field names one member of the settings record
type Field string

const (
	FieldColorTheme Field = "colorTheme"
	FieldMode       Field = "mode"
	FieldBackground Field = "background"
	FieldFont       Field = "font"
)

// Fields lists the settings fields in display order
var Fields = []Field{FieldColorTheme, FieldMode, FieldBackground, FieldFont}

// ParseField resolves a field by its record name or a short alias
func ParseField(s string) (Field, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "colortheme", "color", "color-theme":
		return FieldColorTheme, true
	case "mode", "theme-mode":
		return FieldMode, true
	case "background", "bg":
		return FieldBackground, true
	case "font":
		return FieldFont, true
	}
	return "", false
}

// ValidValue reports whether value is allowed for field
func ValidValue(field Field, value string) bool {
	var ok bool
	switch field {
	case FieldColorTheme:
		_, ok = domain.ParseColorTheme(value)
	case FieldMode:
		_, ok = domain.ParseThemeMode(value)
	case FieldBackground:
		_, ok = domain.ParseBackground(value)
	case FieldFont:
		_, ok = domain.ParseFont(value)
	}
	return ok
}

// Values lists the allowed values for field
func Values(field Field) []string {
	switch field {
	case FieldColorTheme:
		return toStrings(domain.ColorThemes)
	case FieldMode:
		return toStrings(domain.ThemeModes)
	case FieldBackground:
		return toStrings(domain.Backgrounds)
	case FieldFont:
		return toStrings(domain.Fonts)
	}
	return nil
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// SettingsStore owns the theme preferences.
// Every change is applied to the sink and persisted before it returns.
type SettingsStore interface {
	// Load restores the persisted record merged over defaults. Missing or
	// corrupt records fall back to defaults; nothing here is an error.
	Load(ctx context.Context) domain.ThemeSettings

	// Settings returns the current settings
	Settings() domain.ThemeSettings

	// Palette returns the rendering parameters for the current settings
	Palette() theme.Palette

	// Update sets one field, applies the palette and persists the record.
	// An invalid value is replaced by the field's default.
	Update(ctx context.Context, field Field, value string) error

	SetColorTheme(ctx context.Context, c domain.ColorTheme) error
	SetMode(ctx context.Context, m domain.ThemeMode) error
	SetBackground(ctx context.Context, bg domain.Background) error
	SetFont(ctx context.Context, f domain.Font) error

	// Save writes the full record to storage
	Save(ctx context.Context) error

	// ResetToDefaults restores the default settings and persists them
	ResetToDefaults(ctx context.Context) error

	// SetSink replaces the presentation sink and applies the current palette to it
	SetSink(sink theme.Sink)
}

type settingsStore struct {
	mu       sync.Mutex
	repo     repository.KeyValueRepository
	sink     theme.Sink
	settings domain.ThemeSettings
}

// NewSettingsStore creates a store holding the default settings.
// A nil sink discards palettes.
func NewSettingsStore(repo repository.KeyValueRepository, sink theme.Sink) SettingsStore {
	if sink == nil {
		sink = theme.NopSink{}
	}
	return &settingsStore{
		repo:     repo,
		sink:     sink,
		settings: domain.DefaultThemeSettings(),
	}
}

func (s *settingsStore) Load(ctx context.Context) domain.ThemeSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = s.readLocked(ctx)
	s.sink.Apply(theme.Derive(s.settings))
	return s.settings
}

func (s *settingsStore) readLocked(ctx context.Context) domain.ThemeSettings {
	settings := domain.DefaultThemeSettings()

	raw, ok, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		slog.Warn("Failed to read saved theme settings", "error", err)
		return settings
	}
	if !ok {
		return settings
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		slog.Warn("Failed to parse saved theme settings", "error", err)
		return settings
	}

	for _, field := range Fields {
		data, present := fields[string(field)]
		if !present {
			continue
		}
		var value string
		if err := json.Unmarshal(data, &value); err != nil || !ValidValue(field, value) {
			slog.Warn("Ignoring invalid saved setting", "field", field, "value", string(data))
			continue
		}
		settings = withField(settings, field, value)
	}

	return settings
}

func (s *settingsStore) Settings() domain.ThemeSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *settingsStore) Palette() theme.Palette {
	return theme.Derive(s.Settings())
}

func (s *settingsStore) Update(ctx context.Context, field Field, value string) error {
	if !fieldKnown(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if !ValidValue(field, value) {
		slog.Warn("Rejected invalid setting, using default", "field", field, "value", value)
		value = defaultValue(field)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = withField(s.settings, field, value)
	s.sink.Apply(theme.Derive(s.settings))
	return s.saveLocked(ctx)
}

func (s *settingsStore) SetColorTheme(ctx context.Context, c domain.ColorTheme) error {
	return s.Update(ctx, FieldColorTheme, string(c))
}

func (s *settingsStore) SetMode(ctx context.Context, m domain.ThemeMode) error {
	return s.Update(ctx, FieldMode, string(m))
}

func (s *settingsStore) SetBackground(ctx context.Context, bg domain.Background) error {
	return s.Update(ctx, FieldBackground, string(bg))
}

func (s *settingsStore) SetFont(ctx context.Context, f domain.Font) error {
	return s.Update(ctx, FieldFont, string(f))
}

func (s *settingsStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *settingsStore) saveLocked(ctx context.Context) error {
	data, err := json.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("failed to encode theme settings: %w", err)
	}
	if err := s.repo.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save theme settings: %w", err)
	}
	return nil
}

func (s *settingsStore) ResetToDefaults(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = domain.DefaultThemeSettings()
	s.sink.Apply(theme.Derive(s.settings))
	return s.saveLocked(ctx)
}

func (s *settingsStore) SetSink(sink theme.Sink) {
	if sink == nil {
		sink = theme.NopSink{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sink = sink
	s.sink.Apply(theme.Derive(s.settings))
}

func fieldKnown(field Field) bool {
	for _, f := range Fields {
		if f == field {
			return true
		}
	}
	return false
}

func defaultValue(field Field) string {
	defaults := domain.DefaultThemeSettings()
	switch field {
	case FieldColorTheme:
		return string(defaults.ColorTheme)
	case FieldMode:
		return string(defaults.Mode)
	case FieldBackground:
		return string(defaults.Background)
	case FieldFont:
		return string(defaults.Font)
	}
	return ""
}

// withField returns settings with one field replaced; value must be valid
func withField(settings domain.ThemeSettings, field Field, value string) domain.ThemeSettings {
	switch field {
	case FieldColorTheme:
		settings.ColorTheme = domain.ColorTheme(value)
	case FieldMode:
		settings.Mode = domain.ThemeMode(value)
	case FieldBackground:
		settings.Background = domain.Background(value)
	case FieldFont:
		settings.Font = domain.Font(value)
	}
	return settings
}

// FieldValue returns the current value of field in settings
func FieldValue(settings domain.ThemeSettings, field Field) string {
	switch field {
	case FieldColorTheme:
		return string(settings.ColorTheme)
	case FieldMode:
		return string(settings.Mode)
	case FieldBackground:
		return string(settings.Background)
	case FieldFont:
		return string(settings.Font)
	}
	return ""
}
