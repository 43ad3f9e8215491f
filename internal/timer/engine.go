// Package timer holds the Pomodoro countdown state machine and the tick
// schedulers that drive it.
package timer

import (
	"time"

	"github.com/andy/tomatick/internal/domain"
)

// tickUnit is how much a single tick removes from the countdown
const tickUnit = time.Second

// CompletionFunc is called when a countdown reaches zero
type CompletionFunc func(mode domain.TimerMode)

// Option configures an Engine
type Option func(*Engine)

// WithCompletion registers the completion listener
func WithCompletion(fn CompletionFunc) Option {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// WithMode sets the initial mode
func WithMode(mode domain.TimerMode) Option {
	return func(e *Engine) {
		if mode.Valid() {
			e.mode = mode
		}
	}
}

// Engine is a pure countdown reducer. It owns no clock: something else
// calls Tick once per second while the timer runs.
// Engine is not safe for concurrent use; see Controller.
type Engine struct {
	durations  domain.Durations
	mode       domain.TimerMode
	remaining  time.Duration
	running    bool
	onComplete CompletionFunc
}

// NewEngine creates an engine in pomodoro mode with its full duration
func NewEngine(durations domain.Durations, opts ...Option) *Engine {
	e := &Engine{
		durations: durations.WithDefaults(),
		mode:      domain.ModePomodoro,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.remaining = e.durations.For(e.mode)
	return e
}

// State returns a snapshot of the countdown
func (e *Engine) State() domain.TimerState {
	return domain.TimerState{
		Mode:      e.mode,
		Remaining: e.remaining,
		Total:     e.durations.For(e.mode),
		Running:   e.running,
	}
}

// Mode returns the active mode
func (e *Engine) Mode() domain.TimerMode {
	return e.mode
}

// Running reports whether the countdown is running
func (e *Engine) Running() bool {
	return e.running
}

// Durations returns the per-mode durations the engine was built with
func (e *Engine) Durations() domain.Durations {
	return e.durations
}

// SetMode switches mode, restores that mode's duration and stops the countdown
func (e *Engine) SetMode(mode domain.TimerMode) {
	if !mode.Valid() {
		mode = domain.ModePomodoro
	}
	e.mode = mode
	e.remaining = e.durations.For(mode)
	e.running = false
}

// Start runs the countdown. A countdown already at zero stays stopped.
func (e *Engine) Start() {
	if e.remaining <= 0 {
		return
	}
	e.running = true
}

// Pause stops the countdown without touching the remaining time
func (e *Engine) Pause() {
	e.running = false
}

// Reset restores the active mode's duration and stops the countdown
func (e *Engine) Reset() {
	e.remaining = e.durations.For(e.mode)
	e.running = false
}

// Tick removes one second while running. It returns true on the tick that
// reaches zero; that tick also stops the countdown and fires the completion
// listener. Ticks while stopped or at zero do nothing.
func (e *Engine) Tick() bool {
	if !e.running || e.remaining <= 0 {
		return false
	}

	e.remaining -= tickUnit
	if e.remaining > 0 {
		return false
	}

	e.remaining = 0
	e.running = false
	if e.onComplete != nil {
		e.onComplete(e.mode)
	}
	return true
}

// SetTime overrides the remaining time. Negative values clamp to zero and
// seconds past 59 roll into minutes, and the total is capped at
// domain.MaxRemaining. The running flag is left alone unless
// the new time is zero, which stops the countdown without a completion.
func (e *Engine) SetTime(minutes, seconds int) {
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	e.remaining = clockDuration(minutes, seconds)
	if e.remaining == 0 {
		e.running = false
	}
}

// clockDuration converts non-negative minutes and seconds without overflowing
func clockDuration(minutes, seconds int) time.Duration {
	limit := int64(domain.MaxRemaining / time.Second)
	if int64(minutes) > limit/60 {
		return domain.MaxRemaining
	}
	total := int64(minutes)*60 + min(int64(seconds), limit)
	if total > limit {
		return domain.MaxRemaining
	}
	return time.Duration(total) * time.Second
}
