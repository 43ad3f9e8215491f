package domain

import "fmt"

type ColorTheme string

const (
	ColorBlack  ColorTheme = "black"
	ColorRed    ColorTheme = "red"
	ColorOrange ColorTheme = "orange"
	ColorYellow ColorTheme = "yellow"
	ColorGreen  ColorTheme = "green"
	ColorBlue   ColorTheme = "blue"
	ColorPurple ColorTheme = "purple"
	ColorPink   ColorTheme = "pink"
)

// ColorThemes lists every color theme in picker order
var ColorThemes = []ColorTheme{
	ColorBlack, ColorRed, ColorOrange, ColorYellow,
	ColorGreen, ColorBlue, ColorPurple, ColorPink,
}

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

var ThemeModes = []ThemeMode{ThemeLight, ThemeDark}

type Background string

const BackgroundNone Background = "none"

// Backgrounds lists none followed by the nature, modern and galaxy sets
var Backgrounds = buildBackgrounds()

func buildBackgrounds() []Background {
	sets := []struct {
		family string
		count  int
	}{
		{"nature", 12},
		{"modern", 7},
		{"galaxy", 11},
	}

	out := []Background{BackgroundNone}
	for _, set := range sets {
		for i := 1; i <= set.count; i++ {
			out = append(out, Background(fmt.Sprintf("%s-%d", set.family, i)))
		}
	}
	return out
}

type Font string

const (
	FontMono     Font = "mono"
	FontRoboto   Font = "roboto"
	FontPlayfair Font = "playfair"
	FontInter    Font = "inter"
	FontPoppins  Font = "poppins"
)

var Fonts = []Font{FontMono, FontRoboto, FontPlayfair, FontInter, FontPoppins}

// ThemeSettings is the persisted theme/background/font preference bundle
type ThemeSettings struct {
	ColorTheme ColorTheme `json:"colorTheme"`
	Mode       ThemeMode  `json:"mode"`
	Background Background `json:"background"`
	Font       Font       `json:"font"`
}

// DefaultThemeSettings returns black/light/none/mono
func DefaultThemeSettings() ThemeSettings {
	return ThemeSettings{
		ColorTheme: ColorBlack,
		Mode:       ThemeLight,
		Background: BackgroundNone,
		Font:       FontMono,
	}
}

// Normalize replaces every invalid field with its default
func (s ThemeSettings) Normalize() ThemeSettings {
	defaults := DefaultThemeSettings()
	if _, ok := ParseColorTheme(string(s.ColorTheme)); !ok {
		s.ColorTheme = defaults.ColorTheme
	}
	if _, ok := ParseThemeMode(string(s.Mode)); !ok {
		s.Mode = defaults.Mode
	}
	if _, ok := ParseBackground(string(s.Background)); !ok {
		s.Background = defaults.Background
	}
	if _, ok := ParseFont(string(s.Font)); !ok {
		s.Font = defaults.Font
	}
	return s
}

func ParseColorTheme(s string) (ColorTheme, bool) {
	return parseEnum(s, ColorThemes)
}

func ParseThemeMode(s string) (ThemeMode, bool) {
	return parseEnum(s, ThemeModes)
}

func ParseBackground(s string) (Background, bool) {
	return parseEnum(s, Backgrounds)
}

func ParseFont(s string) (Font, bool) {
	return parseEnum(s, Fonts)
}

func parseEnum[T ~string](s string, values []T) (T, bool) {
	for _, v := range values {
		if string(v) == s {
			return v, true
		}
	}
	var zero T
	return zero, false
}
