// Package app is the composition root of hivewatch.
//
// Run builds the collaborators from a config.Config and joins three
// goroutines with an errgroup:
//
//	multiplexer  events.Run: key presses and ticks -> event stream
//	worker       refresh.Worker: refresh requests -> fetch results
//	ui           ui.Run: event stream -> state.Dashboard.Advance -> View
//
// The dashboard is only ever touched from the ui goroutine. The scheduler
// it owns sends refresh requests to the worker over a one-slot channel, so
// requests made while a fetch is pending coalesce into one.
//
// # Shutdown
//
// A user quit ends the ui goroutine, which cancels the group context; the
// other two goroutines return and Run returns nil. Cancelling the context
// passed to Run has the same effect. Any other error from a goroutine is
// fatal: it cancels the group and is returned by Run.
//
// A failed fetch is not fatal. The worker reports it as a result, and the
// dashboard shows it in the error list until the user clears it.
package app
