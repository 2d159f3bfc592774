package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/five82/hivewatch/internal/clip"
	"github.com/five82/hivewatch/internal/config"
	"github.com/five82/hivewatch/internal/events"
	"github.com/five82/hivewatch/internal/hive"
	"github.com/five82/hivewatch/internal/refresh"
	"github.com/five82/hivewatch/internal/signals"
	"github.com/five82/hivewatch/internal/state"
	"github.com/five82/hivewatch/internal/ui"
)

// Channel sizes. Requests hold at most one pending refresh; further ones
// coalesce into it.
const (
	eventBuffer   = 64
	inputBuffer   = 64
	requestBuffer = 1
	resultBuffer  = 256
)

// Options configure the hivewatch application.
type Options struct {
	Config config.Config
	Logger zerolog.Logger

	// Fetcher replaces the Hive Workshop client. Nil builds one from Config.
	Fetcher hive.Fetcher
	// Clipboard replaces the system clipboard. Nil detects it.
	Clipboard clip.Clipboard
	// Rand seeds the chart signals. Nil uses the global generator.
	Rand *rand.Rand
	// LogPath is the file Logger writes to. The Filters tab shows its tail;
	// empty hides the panel.
	LogPath string
	// ProgramOptions are appended to the Bubble Tea program options.
	ProgramOptions []tea.ProgramOption
}

// Run boots the dashboard and blocks until the user quits, ctx is cancelled
// or a goroutine fails. It returns nil on a user quit or cancellation.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	logger := opts.Logger

	fetcher := opts.Fetcher
	if fetcher == nil {
		client, err := hive.NewClient(cfg.SourceURL)
		if err != nil {
			return fmt.Errorf("init hive client: %w", err)
		}
		fetcher = client
	}
	clipboard := opts.Clipboard
	if clipboard == nil {
		clipboard = clip.Detect()
	}

	requests := make(chan struct{}, requestBuffer)
	results := make(chan refresh.Result, resultBuffer)
	stream := make(chan events.Event, eventBuffer)
	input := events.NewChanInput(inputBuffer)

	sched := refresh.NewScheduler(cfg.RefreshInterval, requests, nil)
	dash, err := newDashboard(cfg, sched, results, clipboard, opts.Rand)
	if err != nil {
		return err
	}
	defer dash.Close()

	// Populate the list right away instead of after the first full interval.
	if err := sched.Trigger(); err != nil {
		return fmt.Errorf("initial refresh: %w", err)
	}

	logger.Info().
		Str("source", cfg.SourceURL).
		Dur("tick_rate", cfg.TickRate).
		Dur("refresh_interval", cfg.RefreshInterval).
		Int("filters", len(cfg.Filters)).
		Msg("starting hivewatch")

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	// Multiplexer
	g.Go(func() error {
		defer close(stream)
		err := events.Run(gctx, input, cfg.TickRate, stream)
		return quiet(gctx, err)
	})

	// Fetch worker
	worker := &refresh.Worker{
		Fetcher: fetcher,
		Limiter: refresh.NewLimiter(cfg.MinFetchInterval),
		Logger:  logger.With().Str("component", "worker").Logger(),
	}
	g.Go(func() error {
		defer close(results)
		defer sched.Stop()
		err := worker.Run(gctx, requests, results)
		return quiet(gctx, err)
	})

	// UI
	g.Go(func() error {
		// Cancel before closing the input so the multiplexer sees a
		// cancellation rather than a failed input.
		defer input.Close()
		defer stop()
		err := ui.Run(gctx, ui.Options{
			Dashboard: dash,
			Input:     input,
			Events:    stream,
			Theme:     cfg.Theme,
			LogPath:   opts.LogPath,
		}, opts.ProgramOptions...)
		return quiet(gctx, err)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("hivewatch stopped")
		return err
	}
	logger.Info().Msg("hivewatch shutdown complete")
	return nil
}

// newDashboard builds the dashboard state from the startup config.
func newDashboard(cfg config.Config, sched *refresh.Scheduler, results <-chan refresh.Result, clipboard clip.Clipboard, rng *rand.Rand) (*state.Dashboard, error) {
	dash, err := state.New(state.Options{
		Scheduler:        sched,
		Results:          results,
		Clipboard:        clipboard,
		Signals:          signals.NewGroup(rng),
		BaseURL:          cfg.BaseURL,
		Filters:          cfg.Filters,
		MaxRecords:       cfg.MaxRecords,
		EnhancedGraphics: cfg.EnhancedGraphics,
		ShowChart:        cfg.ShowChart,
	})
	if err != nil {
		return nil, fmt.Errorf("init dashboard: %w", err)
	}
	return dash, nil
}

// quiet drops errors returned after the group context is done. The first
// failure, if any, has already been recorded by the group.
func quiet(ctx context.Context, err error) error {
	if err == nil || ctx.Err() != nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
