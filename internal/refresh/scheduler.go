package refresh

import (
	"errors"
	"sync/atomic"
	"time"
)

// ErrWorkerGone is returned by the scheduler once the fetch worker has
// stopped. No one is left to serve refresh requests, so callers should treat
// it as fatal.
var ErrWorkerGone = errors.New("refresh worker is gone")

// Clock returns the current time.
type Clock func() time.Time

// Scheduler decides when a refresh is due and hands requests to the worker.
//
// Progress, Advance, Trigger and Remaining must be called from one goroutine.
// Stop may be called from any goroutine.
type Scheduler struct {
	period    time.Duration
	requests  chan<- struct{}
	now       Clock
	deadline  time.Time
	progress  float64
	lastFired time.Time
	fired     int
	stopped   atomic.Bool
}

// NewScheduler returns a scheduler whose first refresh is due one period from
// now. requests should have a buffer of one; a request that is still pending
// when the next one fires is coalesced. A nil clock uses time.Now.
func NewScheduler(period time.Duration, requests chan<- struct{}, clock Clock) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{
		period:   period,
		requests: requests,
		now:      clock,
		deadline: clock().Add(period),
	}
}

// Progress reports how much of the current interval has elapsed, in [0, 1].
func (s *Scheduler) Progress() float64 {
	if s.period <= 0 {
		return 1
	}
	elapsed := s.now().Sub(s.deadline) + s.period
	return min(max(float64(elapsed)/float64(s.period), 0), 1)
}

// Advance recomputes progress and fires a request when the interval is over.
// It is meant to be called once per tick and only has side effects when the
// threshold is crossed.
func (s *Scheduler) Advance() (bool, error) {
	s.progress = s.Progress()
	if s.progress < 1 {
		return false, nil
	}
	return true, s.fire()
}

// Trigger fires a request immediately and restarts the interval.
func (s *Scheduler) Trigger() error {
	return s.fire()
}

func (s *Scheduler) fire() error {
	if s.stopped.Load() {
		return ErrWorkerGone
	}
	now := s.now()
	s.deadline = now.Add(s.period)
	s.progress = 0
	s.lastFired = now
	s.fired++

	select {
	case s.requests <- struct{}{}:
	default:
		// A request is already pending. The worker will fetch once for both.
	}
	return nil
}

// Stop marks the worker as gone. Every later fire returns ErrWorkerGone.
func (s *Scheduler) Stop() { s.stopped.Store(true) }

// Remaining returns the time left until the next refresh, never negative.
func (s *Scheduler) Remaining() time.Duration {
	return max(s.deadline.Sub(s.now()), 0)
}

// LastProgress returns the progress computed by the most recent Advance.
func (s *Scheduler) LastProgress() float64 { return s.progress }

// LastFired returns when the last request fired, or the zero time.
func (s *Scheduler) LastFired() time.Time { return s.lastFired }

// Fired returns how many requests have fired, coalesced ones included.
func (s *Scheduler) Fired() int { return s.fired }

// Period returns the refresh interval.
func (s *Scheduler) Period() time.Duration { return s.period }
