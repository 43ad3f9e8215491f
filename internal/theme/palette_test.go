package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andy/tomatick/internal/domain"
)

func TestDerive_Defaults(t *testing.T) {
	p := Derive(domain.DefaultThemeSettings())

	assert.Equal(t, HSL("220 9% 15%"), p.Primary)
	assert.Equal(t, HSL("220 9% 25%"), p.Hover)
	assert.False(t, p.Dark)
	assert.False(t, p.HasBackground())
	assert.Empty(t, p.BackgroundAsset)
	assert.Empty(t, p.BackdropHex)
	assert.Equal(t, domain.FontMono, p.Font)
}

func TestDerive_EveryColorThemeHasSwatch(t *testing.T) {
	for _, c := range domain.ColorThemes {
		s := domain.DefaultThemeSettings()
		s.ColorTheme = c
		p := Derive(s)
		assert.NotEmpty(t, p.Primary, c)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, p.PrimaryHex, c)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, p.HoverHex, c)
	}
}

func TestDerive_BlueDark(t *testing.T) {
	p := Derive(domain.ThemeSettings{
		ColorTheme: domain.ColorBlue,
		Mode:       domain.ThemeDark,
		Background: "galaxy-3",
		Font:       domain.FontInter,
	})

	assert.Equal(t, HSL("217 91% 60%"), p.Primary)
	assert.Equal(t, HSL("217 91% 55%"), p.Hover)
	assert.True(t, p.Dark)
	assert.Equal(t, "backgrounds/galaxy-3.jpg", p.BackgroundAsset)
	assert.NotEmpty(t, p.BackdropHex)
	assert.Equal(t, domain.FontInter, p.Font)
}

func TestDerive_InvalidFieldsUseDefaults(t *testing.T) {
	p := Derive(domain.ThemeSettings{ColorTheme: "teal", Mode: "dim"})

	assert.Equal(t, HSL("220 9% 15%"), p.Primary)
	assert.False(t, p.Dark)
	assert.Equal(t, domain.BackgroundNone, p.Background)
}

func TestHSLHex(t *testing.T) {
	assert.Equal(t, "#ffffff", HSL("0 0% 100%").Hex())
	assert.Equal(t, "#ff0000", HSL("0 100% 50%").Hex())
	assert.Equal(t, "#000000", HSL("garbage").Hex())
}

func TestFamily(t *testing.T) {
	assert.Equal(t, "nature", Family("nature-12"))
	assert.Equal(t, "galaxy", Family("galaxy-1"))
	assert.Empty(t, Family(domain.BackgroundNone))
}

func TestSinkFunc(t *testing.T) {
	var got Palette
	var sink Sink = SinkFunc(func(p Palette) { got = p })

	sink.Apply(Palette{Font: domain.FontPoppins})
	assert.Equal(t, domain.FontPoppins, got.Font)
}
