package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/tomatick/internal/domain"
	"github.com/andy/tomatick/internal/theme"
)

// mock implementations
type mockKVRepo struct {
	values map[string]string
	sets   int
	getErr error
	setErr error
}

func newMockKVRepo() *mockKVRepo {
	return &mockKVRepo{values: map[string]string{}}
}

func (m *mockKVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockKVRepo) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.values[key] = value
	return nil
}

func (m *mockKVRepo) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type recordingSink struct {
	applied []theme.Palette
}

func (r *recordingSink) Apply(p theme.Palette) {
	r.applied = append(r.applied, p)
}

func (r *recordingSink) last() theme.Palette {
	return r.applied[len(r.applied)-1]
}

func persisted(t *testing.T, repo *mockKVRepo) map[string]string {
	t.Helper()
	raw, ok := repo.values[StorageKey]
	require.True(t, ok, "settings record not persisted")
	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestLoad_MissingRecordUsesDefaults(t *testing.T) {
	repo := newMockKVRepo()
	sink := &recordingSink{}
	store := NewSettingsStore(repo, sink)

	got := store.Load(context.Background())

	assert.Equal(t, domain.DefaultThemeSettings(), got)
	require.Len(t, sink.applied, 1)
	assert.False(t, sink.last().Dark)
	assert.Zero(t, repo.sets, "loading must not write")
}

func TestLoad_MergesPartialRecord(t *testing.T) {
	repo := newMockKVRepo()
	repo.values[StorageKey] = `{"colorTheme":"green","mode":"dark","background":"nature-4"}`
	store := NewSettingsStore(repo, nil)

	got := store.Load(context.Background())

	assert.Equal(t, domain.ThemeSettings{
		ColorTheme: domain.ColorGreen,
		Mode:       domain.ThemeDark,
		Background: "nature-4",
		Font:       domain.FontMono,
	}, got)
}

func TestLoad_InvalidFieldsFallBack(t *testing.T) {
	repo := newMockKVRepo()
	repo.values[StorageKey] = `{"colorTheme":"teal","mode":42,"background":"galaxy-11","font":"poppins","extra":"x"}`
	store := NewSettingsStore(repo, nil)

	got := store.Load(context.Background())

	assert.Equal(t, domain.ColorBlack, got.ColorTheme)
	assert.Equal(t, domain.ThemeLight, got.Mode)
	assert.Equal(t, domain.Background("galaxy-11"), got.Background)
	assert.Equal(t, domain.FontPoppins, got.Font)
}

func TestLoad_CorruptRecordUsesDefaults(t *testing.T) {
	repo := newMockKVRepo()
	repo.values[StorageKey] = `{not json`
	store := NewSettingsStore(repo, nil)

	assert.Equal(t, domain.DefaultThemeSettings(), store.Load(context.Background()))
}

func TestLoad_StorageErrorUsesDefaults(t *testing.T) {
	repo := newMockKVRepo()
	repo.getErr = errors.New("disk on fire")
	store := NewSettingsStore(repo, nil)

	assert.Equal(t, domain.DefaultThemeSettings(), store.Load(context.Background()))
}

func TestUpdate_PersistsOneField(t *testing.T) {
	ctx := context.Background()
	repo := newMockKVRepo()
	repo.values[StorageKey] = `{"colorTheme":"red","mode":"dark","background":"modern-2","font":"inter"}`
	sink := &recordingSink{}
	store := NewSettingsStore(repo, sink)
	store.Load(ctx)

	require.NoError(t, store.Update(ctx, FieldColorTheme, "blue"))

	assert.Equal(t, map[string]string{
		"colorTheme": "blue",
		"mode":       "dark",
		"background": "modern-2",
		"font":       "inter",
	}, persisted(t, repo))
	assert.Equal(t, theme.HSL("217 91% 60%"), sink.last().Primary)
	assert.Equal(t, theme.HSL("217 91% 55%"), sink.last().Hover)
	assert.True(t, sink.last().Dark)
	assert.Equal(t, domain.ColorBlue, store.Settings().ColorTheme)
}

func TestUpdate_InvalidValueUsesDefault(t *testing.T) {
	ctx := context.Background()
	repo := newMockKVRepo()
	store := NewSettingsStore(repo, nil)
	require.NoError(t, store.SetFont(ctx, domain.FontRoboto))

	require.NoError(t, store.Update(ctx, FieldFont, "comic-sans"))

	assert.Equal(t, domain.FontMono, store.Settings().Font)
	assert.Equal(t, "mono", persisted(t, repo)["font"])
}

func TestUpdate_UnknownField(t *testing.T) {
	repo := newMockKVRepo()
	store := NewSettingsStore(repo, nil)

	err := store.Update(context.Background(), Field("sound"), "on")

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Zero(t, repo.sets)
}

func TestUpdate_SaveErrorStillApplies(t *testing.T) {
	repo := newMockKVRepo()
	repo.setErr = errors.New("read-only")
	sink := &recordingSink{}
	store := NewSettingsStore(repo, sink)

	err := store.SetMode(context.Background(), domain.ThemeDark)

	require.Error(t, err)
	assert.True(t, sink.last().Dark)
	assert.Equal(t, domain.ThemeDark, store.Settings().Mode)
}

func TestTypedSetters(t *testing.T) {
	ctx := context.Background()
	repo := newMockKVRepo()
	store := NewSettingsStore(repo, nil)

	require.NoError(t, store.SetColorTheme(ctx, domain.ColorPink))
	require.NoError(t, store.SetMode(ctx, domain.ThemeDark))
	require.NoError(t, store.SetBackground(ctx, "galaxy-7"))
	require.NoError(t, store.SetFont(ctx, domain.FontPlayfair))

	assert.Equal(t, domain.ThemeSettings{
		ColorTheme: domain.ColorPink,
		Mode:       domain.ThemeDark,
		Background: "galaxy-7",
		Font:       domain.FontPlayfair,
	}, store.Settings())
	assert.Equal(t, 4, repo.sets)
	assert.Equal(t, "backgrounds/galaxy-7.jpg", store.Palette().BackgroundAsset)
}

func TestResetToDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newMockKVRepo()
	store := NewSettingsStore(repo, nil)
	require.NoError(t, store.SetColorTheme(ctx, domain.ColorYellow))

	require.NoError(t, store.ResetToDefaults(ctx))

	assert.Equal(t, domain.DefaultThemeSettings(), store.Settings())
	assert.Equal(t, "black", persisted(t, repo)["colorTheme"])
}

func TestSetSink_AppliesImmediately(t *testing.T) {
	store := NewSettingsStore(newMockKVRepo(), nil)
	sink := &recordingSink{}

	store.SetSink(sink)

	require.Len(t, sink.applied, 1)
	assert.Equal(t, domain.FontMono, sink.last().Font)
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"colorTheme": FieldColorTheme,
		"color":      FieldColorTheme,
		"mode":       FieldMode,
		"bg":         FieldBackground,
		"font":       FieldFont,
	} {
		got, ok := ParseField(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseField("volume")
	assert.False(t, ok)
}

func TestValues(t *testing.T) {
	assert.Len(t, Values(FieldColorTheme), 8)
	assert.Len(t, Values(FieldMode), 2)
	assert.Len(t, Values(FieldBackground), 31)
	assert.Len(t, Values(FieldFont), 5)
}
