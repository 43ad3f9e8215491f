package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	// Navigation
	Timer    key.Binding
	Settings key.Binding

	// Timer
	Pomodoro   key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	NextMode   key.Binding
	Toggle     key.Binding
	Reset      key.Binding
	Edit       key.Binding
	Fullscreen key.Binding

	Select key.Binding

	// Movement
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Timer:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
	Settings:   key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Pomodoro:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "pomodoro")),
	ShortBreak: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "short break")),
	LongBreak:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "long break")),
	NextMode:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next mode")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
	Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit time")),
	Fullscreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
	Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
}

// timerHelp lists the timer screen bindings for the help view
type timerHelp struct{ KeyMap }

func (k timerHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.NextMode, k.Edit, k.Help, k.Quit}
}

func (k timerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pomodoro, k.ShortBreak, k.LongBreak, k.NextMode},
		{k.Toggle, k.Reset, k.Edit, k.Fullscreen},
		{k.Settings, k.Help, k.Quit},
	}
}

// settingsHelp lists the settings screen bindings for the help view
type settingsHelp struct{ KeyMap }

func (k settingsHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Timer, k.Quit}
}

func (k settingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reset, k.Timer, k.Back},
		{k.Help, k.Quit},
	}
}
