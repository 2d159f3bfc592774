// Package ui renders the hivewatch dashboard with Bubble Tea.
//
// # Architecture Overview
//
// The UI is a thin shell around state.Dashboard. It does not own any
// dashboard state and never mutates it in response to a Bubble Tea message
// directly:
//
//   - Key presses are pushed into an events.ChanInput
//   - The multiplexer merges them with its ticks and sends them back on the
//     event channel
//   - Model waits on that channel with a tea.Cmd, applies each event with
//     Dashboard.Advance and re-arms the wait
//
// This keeps a single ordered stream of state changes, with the UI goroutine
// as the only writer.
//
// # Package Structure
//
//   - app.go: Model, Update loop, event listener command and Run
//   - render.go: header with tabs and reload gauge, topic list, footer, filters tab
//   - charts.go: ntcharts sparkline, sin line chart and refresh statistics bars
//   - help.go: centered help overlay built from the dashboard key map
//   - theme.go: color palettes and Lipgloss styles
//   - strings.go: truncation and padding helpers
//
// # Rendering
//
// View renders only from the last state.Snapshot. Charts are rebuilt from the
// snapshot on every frame; braille markers are used when enhanced graphics
// are enabled.
//
// The Filters tab also shows the tail of the log file. It is read through a
// tea.Cmd, at most once per logRefreshEvery of event time, and only while
// that tab is visible.
//
// # Termination
//
// The program quits when the snapshot's Quit flag is set, when Advance
// returns an error, or when the event channel closes. Run returns the fatal
// error, if any, so the caller can exit non-zero.
package ui
