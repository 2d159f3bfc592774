package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/hivewatch/internal/clip"
	"github.com/five82/hivewatch/internal/events"
	"github.com/five82/hivewatch/internal/hive"
	"github.com/five82/hivewatch/internal/nav"
	"github.com/five82/hivewatch/internal/refresh"
	"github.com/five82/hivewatch/internal/signals"
)

// ErrResultsClosed is returned by Advance when the worker's results channel
// has been closed.
var ErrResultsClosed = errors.New("refresh results channel closed")

// Tab positions.
const (
	TabPosts = iota
	TabFilters
)

// maxErrors bounds the error list; older messages are dropped first.
const maxErrors = 5

// Stats counts what happened to fetched results.
type Stats struct {
	Received   int // records received from the worker
	Admitted   int
	Filtered   int
	Duplicates int
	Failures   int // failed fetches
}

// Options configure a Dashboard.
type Options struct {
	Scheduler *refresh.Scheduler
	Results   <-chan refresh.Result
	Clipboard clip.Clipboard
	Signals   *signals.Group // nil builds the default group

	BaseURL          string
	Filters          []string
	MaxRecords       int
	EnhancedGraphics bool
	ShowChart        bool
	KeyMap           *KeyMap // nil uses DefaultKeyMap
}

// Dashboard is all state behind the screen. Advance is its only mutator and
// must be called from a single goroutine; nothing here is locked.
type Dashboard struct {
	records   *nav.List[hive.Record]
	filters   *nav.List[string]
	filterSet map[string]struct{}
	tabs      *nav.Tabs
	signals   *signals.Group
	scheduler *refresh.Scheduler
	results   <-chan refresh.Result
	clipboard clip.Clipboard
	baseURL   string
	keys      KeyMap

	errors      []string
	quit        bool
	showChart   bool
	enhanced    bool
	showHelp    bool
	stats       Stats
	lastRefresh time.Time
}

// New builds a Dashboard. Scheduler and Clipboard are required.
func New(opts Options) (*Dashboard, error) {
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("dashboard needs a refresh scheduler")
	}
	if opts.Clipboard == nil {
		return nil, fmt.Errorf("dashboard needs a clipboard")
	}
	sigs := opts.Signals
	if sigs == nil {
		sigs = signals.NewGroup(nil)
	}
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	records := nav.NewList[hive.Record]()
	records.SetLimit(opts.MaxRecords)

	filterSet := make(map[string]struct{}, len(opts.Filters))
	for _, f := range opts.Filters {
		filterSet[f] = struct{}{}
	}

	return &Dashboard{
		records:   records,
		filters:   nav.NewList(opts.Filters...),
		filterSet: filterSet,
		tabs:      nav.NewTabs("New posts", "Filters"),
		signals:   sigs,
		scheduler: opts.Scheduler,
		results:   opts.Results,
		clipboard: opts.Clipboard,
		baseURL:   opts.BaseURL,
		keys:      keys,
		showChart: opts.ShowChart,
		enhanced:  opts.EnhancedGraphics,
	}, nil
}

// Advance applies one event. A returned error is fatal.
func (d *Dashboard) Advance(ev events.Event) error {
	switch ev.Kind {
	case events.Tick:
		return d.tick(ev.At)
	case events.Input:
		return d.input(ev.Key)
	default:
		return nil
	}
}

// Quit reports whether the user asked to exit.
func (d *Dashboard) Quit() bool { return d.quit }

// Keys returns the key bindings Advance dispatches on.
func (d *Dashboard) Keys() KeyMap { return d.keys }

// Close releases the signal sources.
func (d *Dashboard) Close() { d.signals.Close() }

func (d *Dashboard) tick(at time.Time) error {
	d.signals.Tick()
	if _, err := d.scheduler.Advance(); err != nil {
		return fmt.Errorf("advance refresh scheduler: %w", err)
	}
	return d.drain(at)
}

// drain merges every result available right now and returns as soon as the
// channel is empty.
func (d *Dashboard) drain(at time.Time) error {
	for {
		select {
		case r, ok := <-d.results:
			if !ok {
				return ErrResultsClosed
			}
			d.merge(r, at)
		default:
			return nil
		}
	}
}

func (d *Dashboard) merge(r refresh.Result, at time.Time) {
	d.lastRefresh = at
	if r.Err != nil {
		d.stats.Failures++
		d.pushError(r.Err.Error())
		return
	}
	d.stats.Received++
	if _, filtered := d.filterSet[r.Record.Forum]; filtered {
		d.stats.Filtered++
		return
	}
	if !d.records.InsertFront(r.Record) {
		d.stats.Duplicates++
		return
	}
	d.stats.Admitted++
}

func (d *Dashboard) input(k events.Key) error {
	switch {
	case key.Matches(k, d.keys.Quit):
		d.quit = true
	case key.Matches(k, d.keys.Help):
		d.showHelp = !d.showHelp
	case key.Matches(k, d.keys.ToggleChart):
		d.showChart = !d.showChart
	case key.Matches(k, d.keys.Copy):
		d.copySelected()
	case key.Matches(k, d.keys.Refresh):
		if err := d.scheduler.Trigger(); err != nil {
			return fmt.Errorf("trigger refresh: %w", err)
		}
	case key.Matches(k, d.keys.ClearErrors):
		d.errors = nil
	case key.Matches(k, d.keys.Up):
		d.moveCursor(-1)
	case key.Matches(k, d.keys.Down):
		d.moveCursor(1)
	case key.Matches(k, d.keys.PrevTab):
		d.tabs.Previous()
	case key.Matches(k, d.keys.NextTab):
		d.tabs.Next()
	}
	return nil
}

func (d *Dashboard) moveCursor(delta int) {
	type cursor interface {
		Next()
		Previous()
	}
	var c cursor = d.records
	if d.tabs.Index() == TabFilters {
		c = d.filters
	}
	if delta < 0 {
		c.Previous()
	} else {
		c.Next()
	}
}

func (d *Dashboard) copySelected() {
	if d.tabs.Index() != TabPosts {
		return
	}
	rec, ok := d.records.SelectedItem()
	if !ok {
		return
	}
	url := hive.JoinURL(d.baseURL, rec.Href)
	if err := d.clipboard.WriteAll(url); err != nil {
		d.pushError(fmt.Sprintf("copy %s: %v", url, err))
	}
}

func (d *Dashboard) pushError(msg string) {
	d.errors = append(d.errors, msg)
	if over := len(d.errors) - maxErrors; over > 0 {
		d.errors = append([]string(nil), d.errors[over:]...)
	}
}
