package state

import (
	"slices"
	"time"

	"github.com/five82/hivewatch/internal/hive"
	"github.com/five82/hivewatch/internal/signals"
)

// Snapshot is a read-only copy of the dashboard for one render. Slices are
// cloned, so a Snapshot stays valid after later Advance calls.
type Snapshot struct {
	Records     []hive.Record
	Selected    int // -1 when nothing is selected
	SelectedURL string

	Filters        []string
	FilterSelected int // -1 when nothing is selected

	Tabs []string
	Tab  int

	Sparkline []uint64
	Sin1      []signals.Point
	Sin2      []signals.Point
	Window    signals.Window

	Progress    float64
	Remaining   time.Duration
	Period      time.Duration
	LastRequest time.Time // zero until the first refresh fires

	Errors      []string
	Stats       Stats
	LastRefresh time.Time

	Quit             bool
	ShowChart        bool
	ShowHelp         bool
	EnhancedGraphics bool
}

// HasErrors reports whether the footer should show errors instead of the
// selected URL.
func (s Snapshot) HasErrors() bool { return len(s.Errors) > 0 }

// Snapshot returns a copy of the current state.
func (d *Dashboard) Snapshot() Snapshot {
	snap := Snapshot{
		Records:          d.records.Items(),
		Selected:         -1,
		Filters:          d.filters.Items(),
		FilterSelected:   -1,
		Tabs:             d.tabs.Titles(),
		Tab:              d.tabs.Index(),
		Sparkline:        d.signals.Sparkline.Points(),
		Sin1:             d.signals.Sin1.Points(),
		Sin2:             d.signals.Sin2.Points(),
		Window:           d.signals.Window,
		Progress:         d.scheduler.Progress(),
		Remaining:        d.scheduler.Remaining(),
		Period:           d.scheduler.Period(),
		LastRequest:      d.scheduler.LastFired(),
		Errors:           slices.Clone(d.errors),
		Stats:            d.stats,
		LastRefresh:      d.lastRefresh,
		Quit:             d.quit,
		ShowChart:        d.showChart,
		ShowHelp:         d.showHelp,
		EnhancedGraphics: d.enhanced,
	}
	if i, ok := d.records.Selected(); ok {
		snap.Selected = i
		if rec, ok := d.records.Get(i); ok {
			snap.SelectedURL = hive.JoinURL(d.baseURL, rec.Href)
		}
	}
	if i, ok := d.filters.Selected(); ok {
		snap.FilterSelected = i
	}
	return snap
}
