package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/tomatick/internal/app"
	"github.com/andy/tomatick/internal/domain"
	"github.com/andy/tomatick/internal/timer"
)

const (
	tickInterval  = time.Second
	toastDuration = 5 * time.Second
)

// tickTimer schedules one countdown tick for generation gen
func tickTimer(gen uint64) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func expireToast(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// TimerModel is the countdown screen
type TimerModel struct {
	engine *timer.Engine
	styles *styleSet
	keys   KeyMap
	help   help.Model

	// gen is bumped by every operation that stops or restarts the countdown;
	// ticks carrying an older value are dropped
	gen uint64

	editing bool
	input   textinput.Model

	progress   progress.Model
	fullscreen bool

	toast   *domain.CompletionMessage
	toastID int

	err error
}

// NewTimerModel creates the timer screen around a fresh engine
func NewTimerModel(a *app.App, st *styleSet) *TimerModel {
	m := &TimerModel{
		styles: st,
		keys:   DefaultKeyMap,
		help:   help.New(),
	}
	m.engine = a.NewEngine(timer.WithCompletion(m.completed))

	m.input = textinput.New()
	m.input.Placeholder = "MM:SS"
	m.input.CharLimit = 6
	m.input.Width = 8

	m.progress = progress.New(
		progress.WithSolidFill(st.Palette().PrimaryHex),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
	return m
}

// IsCapturingInput returns true while the time is being edited
func (m *TimerModel) IsCapturingInput() bool {
	return m.editing
}

// Fullscreen reports whether only the clock should be drawn
func (m *TimerModel) Fullscreen() bool {
	return m.fullscreen
}

// State returns the engine snapshot
func (m *TimerModel) State() domain.TimerState {
	return m.engine.State()
}

func (m *TimerModel) Init() tea.Cmd {
	return nil
}

func (m *TimerModel) completed(mode domain.TimerMode) {
	msg := domain.MessageFor(mode)
	m.toast = &msg
	m.toastID++
	slog.Info("Countdown completed", "mode", mode)
}

func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-20, 10), 60)
		m.help.Width = msg.Width
		return m, nil

	case timerTickMsg:
		return m, m.handleTick(msg)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m, m.updateEdit(msg)
		}
		m.err = nil
		return m, m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the countdown unless the tick is stale
func (m *TimerModel) handleTick(msg timerTickMsg) tea.Cmd {
	if msg.gen != m.gen || !m.engine.Running() {
		return nil
	}
	if m.engine.Tick() {
		m.gen++
		return expireToast(m.toastID)
	}
	return tickTimer(m.gen)
}

func (m *TimerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Pomodoro):
		m.setMode(domain.ModePomodoro)
	case key.Matches(msg, m.keys.ShortBreak):
		m.setMode(domain.ModeShortBreak)
	case key.Matches(msg, m.keys.LongBreak):
		m.setMode(domain.ModeLongBreak)
	case key.Matches(msg, m.keys.NextMode):
		m.setMode(nextMode(m.engine.Mode()))

	case key.Matches(msg, m.keys.Toggle):
		if m.engine.Running() {
			m.engine.Pause()
			m.gen++
			return nil
		}
		m.engine.Start()
		if !m.engine.Running() {
			return nil
		}
		m.toast = nil
		m.gen++
		return tickTimer(m.gen)

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.gen++

	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.input.SetValue(m.engine.State().String())
		m.input.CursorEnd()
		return m.input.Focus()

	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = !m.fullscreen

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Back):
		m.toast = nil
		m.fullscreen = false
	}
	return nil
}

func (m *TimerModel) setMode(mode domain.TimerMode) {
	m.engine.SetMode(mode)
	m.gen++
}

// updateEdit handles keys while the MM:SS input is open
func (m *TimerModel) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.editing = false
		m.err = nil
		m.input.Blur()
		return nil

	case key.Matches(msg, m.keys.Select):
		minutes, seconds, err := parseClock(m.input.Value())
		if err != nil {
			m.err = err
			return nil
		}
		m.engine.SetTime(minutes, seconds)
		m.editing = false
		m.err = nil
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// nextMode cycles pomodoro -> short break -> long break
func nextMode(mode domain.TimerMode) domain.TimerMode {
	for i, md := range domain.Modes {
		if md == mode {
			return domain.Modes[(i+1)%len(domain.Modes)]
		}
	}
	return domain.ModePomodoro
}

func (m *TimerModel) View() string {
	st := m.styles.get()
	state := m.engine.State()

	if m.fullscreen {
		return lipgloss.JoinVertical(lipgloss.Center,
			st.title.Render(state.Mode.Label()),
			st.clock.Render(state.String()),
			m.toastView(st),
		)
	}

	var b strings.Builder

	// Mode tabs
	tabs := make([]string, 0, len(domain.Modes))
	for i, mode := range domain.Modes {
		label := fmt.Sprintf("%d %s", i+1, mode.Label())
		if mode == state.Mode {
			tabs = append(tabs, st.tabActive.Render(label))
		} else {
			tabs = append(tabs, st.tab.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	b.WriteString(st.clock.Render(state.String()))
	b.WriteString("\n\n")

	m.progress.FullColor = string(st.primary)
	b.WriteString(m.progress.ViewAs(state.Progress()))
	b.WriteString("\n\n")

	status := st.paused.Render("PAUSED")
	switch {
	case state.Running:
		status = st.running.Render("RUNNING")
	case state.Remaining == 0:
		status = st.subtitle.Render("DONE")
	case state.Remaining == state.Total:
		status = st.subtitle.Render("READY")
	}
	fmt.Fprintf(&b, "State: %s\n", status)

	if m.editing {
		fmt.Fprintf(&b, "\nSet time: %s\n", m.input.View())
		b.WriteString(helpStyle.Render("enter: apply  esc: cancel"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("Error: %s", m.err)))
		b.WriteString("\n")
	}

	if t := m.toastView(st); t != "" {
		b.WriteString("\n" + t + "\n")
	}

	b.WriteString("\n" + m.help.View(timerHelp{m.keys}))
	return b.String()
}

func (m *TimerModel) toastView(st styles) string {
	if m.toast == nil {
		return ""
	}
	return st.toast.Render(m.toast.Title) + "\n" + st.subtitle.Render(m.toast.Description)
}
