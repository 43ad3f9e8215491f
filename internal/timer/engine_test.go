package timer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/tomatick/internal/domain"
)

type completionRecorder struct {
	modes []domain.TimerMode
}

func (r *completionRecorder) record(mode domain.TimerMode) {
	r.modes = append(r.modes, mode)
}

func newTestEngine(t *testing.T) (*Engine, *completionRecorder) {
	t.Helper()
	rec := &completionRecorder{}
	return NewEngine(domain.DefaultDurations(), WithCompletion(rec.record)), rec
}

func TestNewEngine_StartsInPomodoro(t *testing.T) {
	e, _ := newTestEngine(t)

	state := e.State()
	assert.Equal(t, domain.ModePomodoro, state.Mode)
	assert.Equal(t, 25*time.Minute, state.Remaining)
	assert.False(t, state.Running)
	assert.Equal(t, "25:00", state.String())
}

func TestSetModeThenReset_RestoresModeDefault(t *testing.T) {
	durations := domain.DefaultDurations()
	for _, mode := range domain.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			e, _ := newTestEngine(t)
			e.Start()
			e.Tick()

			e.SetMode(mode)
			e.Reset()

			state := e.State()
			assert.Equal(t, durations.For(mode), state.Remaining)
			assert.False(t, state.Running)
		})
	}
}

func TestSetMode_DiscardsRunningCountdown(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Start()
	for range 10 {
		e.Tick()
	}

	e.SetMode(domain.ModeShortBreak)

	state := e.State()
	assert.Equal(t, domain.ModeShortBreak, state.Mode)
	assert.Equal(t, 300*time.Second, state.Remaining)
	assert.False(t, state.Running)
}

func TestTick_NoopWhilePaused(t *testing.T) {
	e, rec := newTestEngine(t)

	for range 5 {
		assert.False(t, e.Tick())
	}
	assert.Equal(t, 25*time.Minute, e.State().Remaining)

	e.Start()
	e.Tick()
	e.Pause()
	e.Tick()
	assert.Equal(t, 25*time.Minute-time.Second, e.State().Remaining)
	assert.Empty(t, rec.modes)
}

func TestStartAndPause_Idempotent(t *testing.T) {
	e, _ := newTestEngine(t)

	e.Start()
	e.Start()
	assert.True(t, e.Running())

	e.Pause()
	e.Pause()
	assert.False(t, e.Running())
}

func TestTick_CompletesExactlyOnce(t *testing.T) {
	e, rec := newTestEngine(t)
	e.SetMode(domain.ModeLongBreak)
	e.SetTime(0, 1)
	e.Start()

	require.True(t, e.Tick())
	state := e.State()
	assert.Zero(t, state.Remaining)
	assert.False(t, state.Running)
	assert.Equal(t, []domain.TimerMode{domain.ModeLongBreak}, rec.modes)

	assert.False(t, e.Tick())
	assert.Len(t, rec.modes, 1)
}

func TestFullPomodoro(t *testing.T) {
	e, rec := newTestEngine(t)
	e.Start()

	completions := 0
	for range 1500 {
		if e.Tick() {
			completions++
		}
	}

	state := e.State()
	assert.Zero(t, state.Remaining)
	assert.False(t, state.Running)
	assert.Equal(t, 1, completions)
	assert.Equal(t, []domain.TimerMode{domain.ModePomodoro}, rec.modes)
	assert.InDelta(t, 1.0, state.Progress(), 1e-9)
}

func TestStart_AtZeroStaysStopped(t *testing.T) {
	e, rec := newTestEngine(t)
	e.SetTime(0, 0)

	e.Start()
	assert.False(t, e.Running())
	assert.False(t, e.Tick())
	assert.Empty(t, rec.modes)
}

func TestSetTime(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Start()

	e.SetTime(3, 75)
	state := e.State()
	assert.Equal(t, 4*time.Minute+15*time.Second, state.Remaining)
	assert.True(t, state.Running, "SetTime keeps the running flag")

	e.SetTime(-2, -5)
	assert.Zero(t, e.State().Remaining)
	assert.False(t, e.Running(), "a zero countdown cannot keep running")
}

func TestSetTime_HugeValuesAreCapped(t *testing.T) {
	e, rec := newTestEngine(t)
	e.Start()

	e.SetTime(200000000, 0)
	state := e.State()
	assert.Equal(t, domain.MaxRemaining, state.Remaining)
	assert.True(t, state.Running)

	require.False(t, e.Tick())
	assert.Equal(t, domain.MaxRemaining-time.Second, e.State().Remaining, "the countdown keeps moving")

	e.SetTime(0, math.MaxInt)
	assert.Equal(t, domain.MaxRemaining, e.State().Remaining)

	e.SetTime(math.MaxInt, math.MaxInt)
	assert.Equal(t, domain.MaxRemaining, e.State().Remaining)

	e.SetTime(domain.MaxClockMinutes, 59)
	assert.Equal(t, domain.MaxRemaining, e.State().Remaining)
	assert.Empty(t, rec.modes)
}

func TestReset_AfterPartialRun(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetMode(domain.ModeShortBreak)
	e.Start()
	for range 42 {
		e.Tick()
	}

	e.Reset()
	assert.Equal(t, 5*time.Minute, e.State().Remaining)
	assert.False(t, e.Running())
}

func TestCustomDurations(t *testing.T) {
	e := NewEngine(domain.Durations{Pomodoro: 50 * time.Minute}, WithMode(domain.ModeLongBreak))

	assert.Equal(t, domain.ModeLongBreak, e.Mode())
	assert.Equal(t, 15*time.Minute, e.State().Remaining, "unset durations fall back to defaults")

	e.SetMode(domain.ModePomodoro)
	assert.Equal(t, 50*time.Minute, e.State().Remaining)
}
