package events

import (
	"context"
	"fmt"
	"time"
)

// Run merges a fixed-period tick with keys from in and writes both to out in
// the order they were observed. It blocks until ctx is cancelled or the input
// fails.
//
// Every poll is bounded by the time left until the next tick, so a steady
// stream of keys never delays a due tick by more than the time already spent
// polling. The tick clock restarts whenever a tick is emitted.
//
// Run returns ctx.Err() on cancellation. Any other error is fatal: nothing
// restarts the multiplexer.
func Run(ctx context.Context, in InputSource, period time.Duration, out chan<- Event) error {
	if period <= 0 {
		return fmt.Errorf("tick period must be positive, got %s", period)
	}

	last := time.Now()
	for {
		remaining := max(period-time.Since(last), 0)

		key, ok, err := in.Poll(ctx, remaining)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("poll input: %w", err)
		}
		if ok {
			if err := emit(ctx, out, NewInput(key, time.Now())); err != nil {
				return err
			}
		}

		if now := time.Now(); now.Sub(last) >= period {
			last = now
			if err := emit(ctx, out, NewTick(now)); err != nil {
				return err
			}
		}
	}
}

func emit(ctx context.Context, out chan<- Event, ev Event) error {
	select {
	case out <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
