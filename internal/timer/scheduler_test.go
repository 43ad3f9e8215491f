package timer

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/tomatick/internal/domain"
)

func waitForTick(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
	}
}

func TestTickerScheduler_FiresPerInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sched := NewTickerScheduler(clock, time.Second)
	t.Cleanup(sched.Cancel)

	ticks := make(chan struct{}, 10)
	sched.OnTick(func() { ticks <- struct{}{} })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(time.Second)
	waitForTick(t, ticks)
	clock.Advance(time.Second)
	waitForTick(t, ticks)

	assert.True(t, sched.Armed())
}

func TestTickerScheduler_CancelStopsCallbacks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sched := NewTickerScheduler(clock, time.Second)

	ticks := make(chan struct{}, 10)
	sched.OnTick(func() { ticks <- struct{}{} })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	sched.Cancel()
	assert.False(t, sched.Armed())

	clock.Advance(5 * time.Second)
	select {
	case <-ticks:
		t.Fatal("tick after Cancel")
	case <-time.After(50 * time.Millisecond):
	}

	// Cancelling twice is harmless.
	sched.Cancel()
}

func TestTickerScheduler_DrivesController(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sched := NewTickerScheduler(clock, time.Second)

	ticked := make(chan struct{}, 10)
	ctrl := NewController(NewEngine(domain.DefaultDurations()), sched, func(domain.TimerState) {
		ticked <- struct{}{}
	})
	t.Cleanup(ctrl.Close)

	ctrl.SetTime(0, 2)
	ctrl.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(time.Second)
	waitForTick(t, ticked)
	clock.Advance(time.Second)
	waitForTick(t, ticked)

	select {
	case mode := <-ctrl.Completions():
		assert.Equal(t, domain.ModePomodoro, mode)
	case <-time.After(2 * time.Second):
		t.Fatal("expected completion")
	}
	assert.Zero(t, ctrl.State().Remaining)
}

func TestNewTickerScheduler_Defaults(t *testing.T) {
	sched := NewTickerScheduler(nil, 0)
	assert.Equal(t, time.Second, sched.interval)
	assert.NotNil(t, sched.clock)
}
