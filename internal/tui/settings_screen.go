package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/tomatick/internal/service"
)

var fieldLabels = map[service.Field]string{
	service.FieldColorTheme: "Color Theme",
	service.FieldMode:       "Mode",
	service.FieldBackground: "Background",
	service.FieldFont:       "Font",
}

// SettingsModel manages the settings screen
type SettingsModel struct {
	store  service.SettingsStore
	styles *styleSet
	keys   KeyMap
	help   help.Model

	cursor    int
	err       error
	statusMsg string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(store service.SettingsStore, st *styleSet) *SettingsModel {
	return &SettingsModel{
		store:  store,
		styles: st,
		keys:   DefaultKeyMap,
		help:   help.New(),
	}
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// updateField cycles one field and persists it before returning, so the
// next keypress cycles from the stored value
func (m *SettingsModel) updateField(field service.Field, delta int) tea.Cmd {
	current := service.FieldValue(m.store.Settings(), field)
	value := cycle(service.Values(field), current, delta)
	err := m.store.Update(context.Background(), field, value)
	return savedCmd(string(field), err)
}

func (m *SettingsModel) resetSettings() tea.Cmd {
	return savedCmd("", m.store.ResetToDefaults(context.Background()))
}

func savedCmd(field string, err error) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{field: field, err: err}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.field == "" {
			m.statusMsg = "Settings restored to defaults"
		} else {
			m.statusMsg = "Settings saved"
		}
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		field := service.Fields[m.cursor]

		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + len(service.Fields)) % len(service.Fields)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(service.Fields)
		case key.Matches(msg, m.keys.Left):
			return m, m.updateField(field, -1)
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Select):
			return m, m.updateField(field, 1)
		case key.Matches(msg, m.keys.Reset):
			return m, m.resetSettings()
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenTimer} }
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *SettingsModel) View() string {
	st := m.styles.get()
	settings := m.store.Settings()
	palette := m.styles.Palette()

	var b strings.Builder
	b.WriteString(st.title.Render("Theme Settings") + "\n\n")

	if m.statusMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(successColor).Render("  "+m.statusMsg) + "\n\n")
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Width(14)
	for i, field := range service.Fields {
		value := titleCase(service.FieldValue(settings, field))
		indicator := "  "
		rendered := st.value.Render(fmt.Sprintf("‹ %s ›", value))
		if i == m.cursor {
			indicator = "> "
			rendered = st.selected.Render(fmt.Sprintf("‹ %s ›", value))
		}
		fmt.Fprintf(&b, "%s%s %s\n", indicator, labelStyle.Render(fieldLabels[field]+":"), rendered)
	}

	b.WriteString("\n")
	swatch := lipgloss.NewStyle().Background(st.primary).Render("    ") + " " +
		lipgloss.NewStyle().Background(st.hover).Render("    ")
	fmt.Fprintf(&b, "  %s %s\n", st.subtitle.Render("Preview:"), swatch)
	if palette.HasBackground() {
		fmt.Fprintf(&b, "  %s %s\n", st.subtitle.Render("Image:"), palette.BackgroundAsset)
	}

	if m.err != nil {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("  Error: %v", m.err)) + "\n")
	}

	b.WriteString("\n" + m.help.View(settingsHelp{m.keys}))
	return b.String()
}
