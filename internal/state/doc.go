// Package state holds everything the dashboard shows and the rules for
// changing it.
//
// # Overview
//
// Dashboard owns the thread list, the filter list, the tab cursor, the chart
// signals and the refresh scheduler. It has exactly one mutator, Advance,
// which the UI goroutine calls for every event coming out of the
// multiplexer. Because there is a single writer, Dashboard has no locks.
//
//	Multiplexer goroutine      UI goroutine              Worker goroutine
//	┌────────────────┐        ┌──────────────────┐      ┌────────────────┐
//	│ ticks + keys   │──────→ │ dash.Advance(ev) │      │ Fetch()        │
//	└────────────────┘ events │   signals.Tick   │ req  │   ↓            │
//	                          │   sched.Advance  │────→ │ send records   │
//	                          │   drain results  │←──── │                │
//	                          │ dash.Snapshot()  │ res  └────────────────┘
//	                          │   render         │
//	                          └──────────────────┘
//
// # Tick
//
// On every tick Advance:
//
//  1. advances the chart signals
//  2. advances the refresh scheduler, which may send a request
//  3. drains whatever results are ready without waiting
//
// Drained records are dropped when their forum is in the filter set or an
// identical record is already listed. The rest are inserted at the front so
// the newest thread is on top. A failed fetch arrives as a result with Err
// set and is appended to the error list, which keeps the last five messages.
//
// # Input
//
// Keys are matched against KeyMap. Moving the cursor acts on the list of the
// active tab. Copy writes the selected thread's absolute URL to the
// clipboard; a clipboard failure is shown in the error list and is not
// fatal.
//
// # Errors
//
// Advance returns an error only for conditions nothing can recover from:
// the results channel was closed (ErrResultsClosed) or the worker is gone
// (refresh.ErrWorkerGone). The caller is expected to shut down.
//
// # Snapshots
//
// Snapshot copies every slice, so the renderer can hold on to it while the
// next event is applied.
package state
