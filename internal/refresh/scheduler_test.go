package refresh_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/hivewatch/internal/refresh"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestScheduler_FiresOnceAfterOnePeriod(t *testing.T) {
	clock := newClock()
	requests := make(chan struct{}, 1)
	s := refresh.NewScheduler(60*time.Second, requests, clock.Now)

	assert.Zero(t, s.Progress())

	fires := 0
	for elapsed := time.Duration(0); elapsed < 61*time.Second; elapsed += 250 * time.Millisecond {
		clock.Advance(250 * time.Millisecond)
		fired, err := s.Advance()
		require.NoError(t, err)
		if fired {
			fires++
			assert.Zero(t, s.LastProgress(), "progress resets within the firing tick")
			assert.Equal(t, 60*time.Second, s.Remaining())
		}
	}

	assert.Equal(t, 1, fires)
	assert.Len(t, requests, 1)
	assert.Equal(t, 1, s.Fired())
}

func TestScheduler_ProgressRisesThenResets(t *testing.T) {
	clock := newClock()
	s := refresh.NewScheduler(10*time.Second, make(chan struct{}, 1), clock.Now)

	prev := -1.0
	var fireTimes []time.Time
	for range 200 {
		clock.Advance(300 * time.Millisecond)
		fired, err := s.Advance()
		require.NoError(t, err)
		if fired {
			fireTimes = append(fireTimes, clock.Now())
			prev = 0
			continue
		}
		p := s.LastProgress()
		assert.Greater(t, p, prev, "progress strictly increases between fires")
		assert.GreaterOrEqual(t, p, 0.0)
		assert.Less(t, p, 1.0)
		prev = p
	}

	require.Greater(t, len(fireTimes), 2)
	for i := 1; i < len(fireTimes); i++ {
		assert.GreaterOrEqual(t, fireTimes[i].Sub(fireTimes[i-1]), 10*time.Second)
	}
}

func TestScheduler_CoalescesPendingRequests(t *testing.T) {
	clock := newClock()
	requests := make(chan struct{}, 1)
	s := refresh.NewScheduler(time.Second, requests, clock.Now)

	require.NoError(t, s.Trigger())
	require.NoError(t, s.Trigger())
	clock.Advance(2 * time.Second)
	fired, err := s.Advance()
	require.NoError(t, err)

	assert.True(t, fired)
	assert.Len(t, requests, 1)
	assert.Equal(t, 3, s.Fired())
}

func TestScheduler_TriggerRestartsInterval(t *testing.T) {
	clock := newClock()
	s := refresh.NewScheduler(60*time.Second, make(chan struct{}, 1), clock.Now)

	clock.Advance(45 * time.Second)
	assert.InDelta(t, 0.75, s.Progress(), 1e-9)

	require.NoError(t, s.Trigger())
	assert.Zero(t, s.Progress())
	assert.Equal(t, 60*time.Second, s.Remaining())
	assert.Equal(t, clock.Now(), s.LastFired())
}

func TestScheduler_StoppedWorkerIsFatal(t *testing.T) {
	clock := newClock()
	s := refresh.NewScheduler(time.Second, make(chan struct{}, 1), clock.Now)
	s.Stop()

	clock.Advance(500 * time.Millisecond)
	fired, err := s.Advance()
	assert.False(t, fired)
	assert.NoError(t, err, "no side effects before the threshold")

	clock.Advance(time.Second)
	_, err = s.Advance()
	assert.ErrorIs(t, err, refresh.ErrWorkerGone)
	assert.ErrorIs(t, s.Trigger(), refresh.ErrWorkerGone)
}

func TestScheduler_RemainingNeverNegative(t *testing.T) {
	clock := newClock()
	s := refresh.NewScheduler(time.Second, make(chan struct{}, 1), clock.Now)
	clock.Advance(5 * time.Second)
	assert.Zero(t, s.Remaining())
	assert.Equal(t, 1.0, s.Progress())
}
