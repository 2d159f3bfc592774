package refresh

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/five82/hivewatch/internal/hive"
)

// ErrRequestsClosed is returned by Worker.Run when its request channel is
// closed. The scheduler side is gone and no more refreshes can arrive.
var ErrRequestsClosed = errors.New("refresh request channel closed")

// Result is one item streamed from the worker to the dashboard: either a
// record or the failure of a whole fetch.
type Result struct {
	Record hive.Record
	Err    error
	Cycle  string
}

// Worker performs one fetch per refresh request and streams the outcome.
type Worker struct {
	Fetcher hive.Fetcher
	// Limiter spaces fetches apart. Nil disables limiting.
	Limiter *rate.Limiter
	Logger  zerolog.Logger
}

// NewLimiter returns a limiter that allows one fetch per interval. A
// non-positive interval yields nil.
func NewLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Run serves requests until ctx is cancelled or requests is closed.
//
// Each request triggers exactly one Fetch. On success the records are
// reversed so the newest ends up first after front insertion, then sent one
// by one. On failure a single Result carrying the error is sent and the
// worker keeps serving; it never retries.
func (w *Worker) Run(ctx context.Context, requests <-chan struct{}, results chan<- Result) error {
	if w.Fetcher == nil {
		return fmt.Errorf("refresh worker has no fetcher")
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-requests:
			if !ok {
				return ErrRequestsClosed
			}
		}
		if err := w.cycle(ctx, results); err != nil {
			return err
		}
	}
}

// cycle runs one fetch and streams its outcome. It returns only context
// errors; fetch failures travel through results.
func (w *Worker) cycle(ctx context.Context, results chan<- Result) error {
	id := uuid.NewString()
	logger := w.Logger.With().Str("cycle", id).Logger()

	if w.Limiter != nil {
		if err := w.Limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("wait for fetch slot: %w", err)
		}
	}

	start := time.Now()
	records, err := w.Fetcher.Fetch(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logger.Warn().Err(err).Dur("latency", time.Since(start)).Msg("fetch failed")
		return send(ctx, results, Result{Err: fmt.Errorf("refresh: %w", err), Cycle: id})
	}
	logger.Debug().
		Int("records", len(records)).
		Dur("latency", time.Since(start)).
		Msg("fetch complete")

	slices.Reverse(records)
	for _, rec := range records {
		if err := send(ctx, results, Result{Record: rec, Cycle: id}); err != nil {
			return err
		}
	}
	return nil
}

func send(ctx context.Context, results chan<- Result, r Result) error {
	select {
	case results <- r:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
