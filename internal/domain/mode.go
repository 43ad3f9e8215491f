package domain

import (
	"strings"
	"time"
)

// TimerMode is one of the three Pomodoro phases
type TimerMode string

const (
	ModePomodoro   TimerMode = "pomodoro"
	ModeShortBreak TimerMode = "shortBreak"
	ModeLongBreak  TimerMode = "longBreak"
)

// Modes lists every mode in selector order
var Modes = []TimerMode{ModePomodoro, ModeShortBreak, ModeLongBreak}

// String returns the persisted mode name
func (m TimerMode) String() string {
	return string(m)
}

// Label returns the display name
func (m TimerMode) Label() string {
	switch m {
	case ModePomodoro:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is a known mode
func (m TimerMode) Valid() bool {
	switch m {
	case ModePomodoro, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// ParseMode resolves a mode by its persisted name or a CLI alias
func ParseMode(s string) (TimerMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pomodoro", "work":
		return ModePomodoro, true
	case "shortbreak", "short", "short-break", "short_break":
		return ModeShortBreak, true
	case "longbreak", "long", "long-break", "long_break":
		return ModeLongBreak, true
	}
	return "", false
}

// Durations holds the countdown length for each mode
type Durations struct {
	Pomodoro   time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns 25/5/15 minutes
func DefaultDurations() Durations {
	return Durations{
		Pomodoro:   25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// For returns the duration configured for mode.
// Unknown modes get the pomodoro duration.
func (d Durations) For(mode TimerMode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return d.ShortBreak
	case ModeLongBreak:
		return d.LongBreak
	default:
		return d.Pomodoro
	}
}

// WithDefaults replaces non-positive durations with the defaults
func (d Durations) WithDefaults() Durations {
	defaults := DefaultDurations()
	if d.Pomodoro <= 0 {
		d.Pomodoro = defaults.Pomodoro
	}
	if d.ShortBreak <= 0 {
		d.ShortBreak = defaults.ShortBreak
	}
	if d.LongBreak <= 0 {
		d.LongBreak = defaults.LongBreak
	}
	return d
}

// CompletionMessage is the title/description pair shown when a countdown finishes
type CompletionMessage struct {
	Title       string
	Description string
}

var completionMessages = map[TimerMode]CompletionMessage{
	ModePomodoro: {
		Title:       "Pomodoro Complete! 🍅",
		Description: "Great work! Time for a break.",
	},
	ModeShortBreak: {
		Title:       "Break Complete! ☕",
		Description: "Ready to get back to work?",
	},
	ModeLongBreak: {
		Title:       "Long Break Complete! 🌟",
		Description: "Refreshed and ready to go!",
	},
}

// MessageFor returns the completion message for mode
func MessageFor(mode TimerMode) CompletionMessage {
	if msg, ok := completionMessages[mode]; ok {
		return msg
	}
	return completionMessages[ModePomodoro]
}
