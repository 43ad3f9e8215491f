package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/andy/tomatick/internal/domain"
	"github.com/andy/tomatick/internal/theme"
)

var (
	// Colors that do not follow the theme
	mutedColor   = lipgloss.Color("241") // Gray
	successColor = lipgloss.Color("76")  // Green
	warningColor = lipgloss.Color("214") // Orange
	errorColor   = lipgloss.Color("196") // Red

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // Bright cyan
)

// styles are rebuilt from the palette every time the settings change
type styles struct {
	primary lipgloss.Color
	hover   lipgloss.Color
	text    lipgloss.Color
	dark    bool
	bgHex   string

	title     lipgloss.Style
	subtitle  lipgloss.Style
	selected  lipgloss.Style
	value     lipgloss.Style
	clock     lipgloss.Style
	running   lipgloss.Style
	paused    lipgloss.Style
	tabActive lipgloss.Style
	tab       lipgloss.Style
	toast     lipgloss.Style
	header    lipgloss.Style
	footer    lipgloss.Style
	border    lipgloss.Style
	divider   lipgloss.Style
	backdrop  lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	primary := lipgloss.Color(p.PrimaryHex)
	hover := lipgloss.Color(p.HoverHex)
	text := lipgloss.Color("235")
	if p.Dark {
		text = lipgloss.Color("252")
		// The primary shade is too dim on dark terminals for the black theme
		primary, hover = hover, primary
	}

	font := fontStyle(p.Font)
	s := styles{
		primary: primary,
		hover:   hover,
		text:    text,
		dark:    p.Dark,
		bgHex:   p.BackdropHex,
	}

	s.title = font.Bold(true).Foreground(primary)
	s.subtitle = lipgloss.NewStyle().Foreground(mutedColor)
	s.selected = font.Bold(true).Background(primary).Foreground(lipgloss.Color("255"))
	s.value = font.Foreground(primary)
	s.clock = font.Bold(true).Foreground(primary).Padding(1, 4).
		Border(lipgloss.RoundedBorder()).BorderForeground(hover)
	s.running = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	s.paused = lipgloss.NewStyle().Bold(true).Foreground(warningColor)
	s.tabActive = font.Bold(true).Foreground(lipgloss.Color("255")).Background(primary).Padding(0, 1)
	s.tab = font.Foreground(text).Padding(0, 1)
	s.toast = font.Bold(true).Foreground(lipgloss.Color("255")).Background(hover).Padding(0, 2)
	s.header = font.Bold(true).Foreground(primary).Padding(0, 1)
	s.footer = lipgloss.NewStyle().Foreground(hover).Bold(true)
	s.border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(1, 2)
	s.divider = lipgloss.NewStyle().Foreground(hover)

	s.backdrop = lipgloss.NewStyle()
	if p.BackdropHex != "" {
		bg := lipgloss.Color(p.BackdropHex)
		s.backdrop = s.backdrop.Background(bg)
		s.border = s.border.BorderBackground(bg).Background(bg)
	}
	return s
}

// backdropColor stands in for the background image
func (s styles) backdropColor() lipgloss.TerminalColor {
	if s.bgHex == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s.bgHex)
}

// fontStyle approximates each font family with the text attributes a terminal
// has. The sans fonts all render as the terminal's own font.
func fontStyle(f domain.Font) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch f {
	case domain.FontPlayfair:
		st = st.Italic(true)
	case domain.FontPoppins:
		st = st.Bold(true)
	}
	return st
}

// styleSet is the theme sink for the TUI. The settings store applies palettes
// to it from command goroutines while View reads it.
type styleSet struct {
	mu      sync.RWMutex
	current styles
	palette theme.Palette
}

func newStyleSet(p theme.Palette) *styleSet {
	return &styleSet{current: newStyles(p), palette: p}
}

// Apply implements theme.Sink
func (s *styleSet) Apply(p theme.Palette) {
	st := newStyles(p)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = st
	s.palette = p
}

func (s *styleSet) get() styles {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *styleSet) Palette() theme.Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.palette
}
