package timer

import (
	"log/slog"
	"sync"

	"github.com/andy/tomatick/internal/domain"
)

// StateFunc observes the countdown after every applied tick
type StateFunc func(state domain.TimerState)

// Controller binds an Engine to a Scheduler. Start arms the scheduler;
// Pause, Reset and SetMode stop the engine and disarm the scheduler before
// returning, so no tick mutates state until the next Start.
type Controller struct {
	// opMu serializes public operations, including scheduler arming.
	// mu guards the engine and is shared with the tick callback.
	opMu sync.Mutex
	mu   sync.Mutex

	engine      *Engine
	scheduler   Scheduler
	gen         uint64
	observer    StateFunc
	completions chan domain.TimerMode
}

// NewController wires engine and scheduler together. observer may be nil.
func NewController(engine *Engine, scheduler Scheduler, observer StateFunc) *Controller {
	return &Controller{
		engine:      engine,
		scheduler:   scheduler,
		observer:    observer,
		completions: make(chan domain.TimerMode, 1),
	}
}

// Completions delivers the mode of each countdown that reached zero
func (c *Controller) Completions() <-chan domain.TimerMode {
	return c.completions
}

// State returns a snapshot of the countdown
func (c *Controller) State() domain.TimerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.State()
}

// Start runs the countdown and arms the scheduler. Starting a running
// timer does nothing.
func (c *Controller) Start() {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	if c.engine.Running() {
		c.mu.Unlock()
		return
	}
	c.engine.Start()
	if !c.engine.Running() {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	c.scheduler.OnTick(func() { c.tick(gen) })
	slog.Debug("Timer started", "mode", c.engine.Mode())
}

// Pause stops the countdown
func (c *Controller) Pause() {
	c.stop(func(e *Engine) { e.Pause() })
}

// Reset restores the active mode's duration and stops the countdown
func (c *Controller) Reset() {
	c.stop(func(e *Engine) { e.Reset() })
}

// SetMode switches mode and stops the countdown
func (c *Controller) SetMode(mode domain.TimerMode) {
	c.stop(func(e *Engine) { e.SetMode(mode) })
}

// SetTime overrides the remaining time without changing the running flag
func (c *Controller) SetTime(minutes, seconds int) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	c.engine.SetTime(minutes, seconds)
	running := c.engine.Running()
	if !running {
		c.gen++
	}
	c.mu.Unlock()

	if !running {
		c.scheduler.Cancel()
	}
}

// Close disarms the scheduler. The engine keeps its state.
func (c *Controller) Close() {
	c.stop(func(e *Engine) { e.Pause() })
}

func (c *Controller) stop(mutate func(e *Engine)) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.mu.Lock()
	mutate(c.engine)
	c.gen++ // invalidates a tick that is already waiting on mu
	c.mu.Unlock()

	c.scheduler.Cancel()
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	// After completion the scheduler stays armed until Close; those ticks are ignored
	if gen != c.gen || !c.engine.Running() {
		c.mu.Unlock()
		return
	}
	completed := c.engine.Tick()
	state := c.engine.State()
	c.mu.Unlock()

	if c.observer != nil {
		c.observer(state)
	}
	if completed {
		slog.Debug("Timer completed", "mode", state.Mode)
		select {
		case c.completions <- state.Mode:
		default:
		}
	}
}
