// Package theme turns persisted theme settings into concrete rendering
// parameters. Derive is pure; a Sink applies the result.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/andy/tomatick/internal/domain"
)

// HSL is a color in "H S% L%" form, the same triplet CSS variables take
type HSL string

// Hex converts the triplet to #rrggbb. Malformed values render black.
func (c HSL) Hex() string {
	h, s, l, err := c.parse()
	if err != nil {
		return "#000000"
	}
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

func (c HSL) parse() (h, s, l float64, err error) {
	parts := strings.Fields(string(c))
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed hsl %q", string(c))
	}
	if h, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("malformed hue %q: %w", parts[0], err)
	}
	if s, err = parsePercent(parts[1]); err != nil {
		return 0, 0, 0, err
	}
	if l, err = parsePercent(parts[2]); err != nil {
		return 0, 0, 0, err
	}
	return h, s, l, nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed percentage %q: %w", s, err)
	}
	return v / 100, nil
}

type swatch struct {
	primary HSL
	hover   HSL
}

var colorThemes = map[domain.ColorTheme]swatch{
	domain.ColorBlack:  {primary: "220 9% 15%", hover: "220 9% 25%"},
	domain.ColorRed:    {primary: "9 87% 67%", hover: "9 87% 60%"},
	domain.ColorOrange: {primary: "25 95% 53%", hover: "25 95% 48%"},
	domain.ColorYellow: {primary: "45 93% 58%", hover: "45 93% 53%"},
	domain.ColorGreen:  {primary: "160 84% 39%", hover: "160 84% 34%"},
	domain.ColorBlue:   {primary: "217 91% 60%", hover: "217 91% 55%"},
	domain.ColorPurple: {primary: "262 83% 58%", hover: "262 83% 53%"},
	domain.ColorPink:   {primary: "322 71% 52%", hover: "322 71% 47%"},
}

// Terminal backdrops per background family, since a terminal cannot show the photo.
var backdrops = map[string]HSL{
	"nature": "140 30% 18%",
	"modern": "220 10% 22%",
	"galaxy": "255 45% 14%",
}

// Palette is everything the presentation layer needs from the settings
type Palette struct {
	Primary    HSL
	Hover      HSL
	PrimaryHex string
	HoverHex   string
	Dark       bool

	Background      domain.Background
	BackgroundAsset string // empty for none
	BackdropHex     string // empty for none

	Font domain.Font
}

// HasBackground reports whether a background image is selected
func (p Palette) HasBackground() bool {
	return p.Background != domain.BackgroundNone && p.Background != ""
}

// Derive computes the palette for s. Invalid fields use their defaults.
func Derive(s domain.ThemeSettings) Palette {
	s = s.Normalize()
	sw := colorThemes[s.ColorTheme]

	p := Palette{
		Primary:    sw.primary,
		Hover:      sw.hover,
		PrimaryHex: sw.primary.Hex(),
		HoverHex:   sw.hover.Hex(),
		Dark:       s.Mode == domain.ThemeDark,
		Background: s.Background,
		Font:       s.Font,
	}
	if p.HasBackground() {
		p.BackgroundAsset = BackgroundAsset(s.Background)
		if c, ok := backdrops[Family(s.Background)]; ok {
			p.BackdropHex = c.Hex()
		}
	}
	return p
}

// BackgroundAsset returns the asset path for a background key
func BackgroundAsset(bg domain.Background) string {
	if bg == domain.BackgroundNone || bg == "" {
		return ""
	}
	return "backgrounds/" + string(bg) + ".jpg"
}

// Family returns nature, modern or galaxy for a background key
func Family(bg domain.Background) string {
	family, _, found := strings.Cut(string(bg), "-")
	if !found {
		return ""
	}
	return family
}

// Sink receives derived palettes. It is the only place theme side effects happen.
type Sink interface {
	Apply(p Palette)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(p Palette)

func (f SinkFunc) Apply(p Palette) { f(p) }

// NopSink discards palettes
type NopSink struct{}

func (NopSink) Apply(Palette) {}
