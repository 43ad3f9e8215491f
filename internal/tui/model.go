package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/tomatick/internal/app"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenTimer Screen = iota
	ScreenSettings
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenTimer:
		return "Timer"
	case ScreenSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	styles        *styleSet
	currentScreen Screen
	width         int
	height        int

	// The timer screen lives for the whole program so the countdown keeps
	// going while settings are open
	timer    *TimerModel
	settings *SettingsModel

	quitMsg     string // shown when quit is blocked
	confirmQuit bool
}

// New creates a new root model. st receives palettes from the settings store.
func New(a *app.App, st *styleSet) Model {
	return Model{
		app:           a,
		styles:        st,
		currentScreen: ScreenTimer,
		timer:         NewTimerModel(a, st),
		settings:      NewSettingsModel(a.Settings, st),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.timer.Init(), m.settings.Init())
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

func (m *Model) activeScreen() tea.Model {
	if m.currentScreen == ScreenSettings {
		return m.settings
	}
	return m.timer
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	if ic, ok := m.activeScreen().(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, c1 := m.timer.Update(msg)
		_, c2 := m.settings.Update(msg)
		return m, tea.Batch(c1, c2)

	// Countdown messages belong to the timer whichever screen is showing
	case timerTickMsg, toastExpiredMsg:
		_, cmd := m.timer.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Clear quit warning on any other keypress
		m.quitMsg = ""
		confirmQuit := m.confirmQuit
		m.confirmQuit = false

		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				if m.timer.State().Running && !confirmQuit {
					m.quitMsg = "Timer is running. Press q again to quit."
					m.confirmQuit = true
					return m, nil
				}
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Timer):
				m.currentScreen = ScreenTimer
				return m, nil

			case key.Matches(msg, DefaultKeyMap.Settings):
				m.currentScreen = ScreenSettings
				return m, nil
			}
		}

	case SwitchScreenMsg:
		m.currentScreen = msg.Screen
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenTimer:
		_, cmd = m.timer.Update(msg)
	case ScreenSettings:
		_, cmd = m.settings.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	st := m.styles.get()

	if m.currentScreen == ScreenTimer && m.timer.Fullscreen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			st.backdrop.Render(m.timer.View()), lipgloss.WithWhitespaceBackground(st.backdropColor()))
	}

	header := st.header.Render(fmt.Sprintf("tomatick - %s", m.currentScreen.String()))
	footer := st.footer.Render("[T]imer  [,] Settings  [?] Help  [Q]uit")

	content := m.activeScreen().View()

	warning := ""
	if m.quitMsg != "" {
		warning = lipgloss.NewStyle().
			Foreground(warningColor).
			Render(fmt.Sprintf("\n%s", m.quitMsg))
	}

	innerWidth := max(m.width-6, 20) // account for border (2) + padding (4)
	dividerWidth := max(innerWidth-12, 10)
	divider := st.divider.Render(strings.Repeat("─", dividerWidth))

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, warning, divider, footer)

	frame := st.border.
		Width(innerWidth).
		Height(max(m.height-4, 1))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body),
		lipgloss.WithWhitespaceBackground(st.backdropColor()))
}

// Run starts the TUI
func Run(a *app.App) error {
	st := newStyleSet(a.Settings.Palette())
	a.Settings.SetSink(st)
	defer a.Settings.SetSink(nil)

	p := tea.NewProgram(New(a, st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
