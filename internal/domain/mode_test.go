package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDurations(t *testing.T) {
	d := DefaultDurations()
	assert.Equal(t, 1500*time.Second, d.For(ModePomodoro))
	assert.Equal(t, 300*time.Second, d.For(ModeShortBreak))
	assert.Equal(t, 900*time.Second, d.For(ModeLongBreak))
	assert.Equal(t, d.Pomodoro, d.For("bogus"))
}

func TestDurationsWithDefaults(t *testing.T) {
	d := Durations{Pomodoro: 50 * time.Minute, ShortBreak: -time.Minute}.WithDefaults()
	assert.Equal(t, 50*time.Minute, d.Pomodoro)
	assert.Equal(t, 5*time.Minute, d.ShortBreak)
	assert.Equal(t, 15*time.Minute, d.LongBreak)
}

func TestParseMode(t *testing.T) {
	cases := map[string]TimerMode{
		"pomodoro":   ModePomodoro,
		"work":       ModePomodoro,
		"shortBreak": ModeShortBreak,
		"short":      ModeShortBreak,
		"long-break": ModeLongBreak,
		" LONG ":     ModeLongBreak,
	}
	for in, want := range cases {
		got, ok := ParseMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseMode("nap")
	assert.False(t, ok)
}

func TestMessageFor(t *testing.T) {
	assert.Equal(t, "Pomodoro Complete! 🍅", MessageFor(ModePomodoro).Title)
	assert.Equal(t, "Ready to get back to work?", MessageFor(ModeShortBreak).Description)
	assert.Equal(t, "Long Break Complete! 🌟", MessageFor(ModeLongBreak).Title)
}

func TestTimerStateFormatting(t *testing.T) {
	s := TimerState{Mode: ModeShortBreak, Remaining: 4*time.Minute + 7*time.Second, Total: 5 * time.Minute}
	assert.Equal(t, 4, s.Minutes())
	assert.Equal(t, 7, s.Seconds())
	assert.Equal(t, "04:07", s.String())
	assert.InDelta(t, 53.0/300.0, s.Progress(), 1e-9)

	assert.Equal(t, "90:00", FormatClock(90*time.Minute))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
}
