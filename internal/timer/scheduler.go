package timer

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler drives periodic ticks. OnTick arms the scheduler with a
// callback; Cancel disarms it. After Cancel returns the callback is not
// invoked again until the next OnTick.
type Scheduler interface {
	OnTick(fn func())
	Cancel()
}

// TickerScheduler fires the callback from a clock ticker. Callbacks run on a
// single goroutine, so they never overlap. A trigger that arrives late after
// the process was suspended still counts as one tick: the ticker drops the
// ticks it could not deliver.
type TickerScheduler struct {
	clock    clockwork.Clock
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewTickerScheduler creates a scheduler on the given clock.
// A nil clock means the real clock; a non-positive interval means one second.
func NewTickerScheduler(clock clockwork.Clock, interval time.Duration) *TickerScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &TickerScheduler{clock: clock, interval: interval}
}

// OnTick arms the scheduler, replacing any previous callback
func (s *TickerScheduler) OnTick(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	stop := make(chan struct{})
	done := make(chan struct{})
	ticker := s.clock.NewTicker(s.interval)
	s.stop = stop
	s.done = done

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				// stop may have been closed while the tick was pending
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()
}

// Cancel disarms the scheduler and waits for an in-flight callback to finish.
// It must not be called from inside the callback.
func (s *TickerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// Armed reports whether a callback is registered
func (s *TickerScheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *TickerScheduler) cancelLocked() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
}

// ManualScheduler fires only when Fire is called. It is used by tests and by
// callers that already own a clock (the TUI drives ticks from its event loop).
type ManualScheduler struct {
	mu sync.Mutex
	fn func()
}

// NewManualScheduler creates a disarmed manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) OnTick(fn func()) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

func (s *ManualScheduler) Cancel() {
	s.mu.Lock()
	s.fn = nil
	s.mu.Unlock()
}

// Armed reports whether a callback is registered
func (s *ManualScheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}

// Fire invokes the armed callback once. It returns false when disarmed.
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}
