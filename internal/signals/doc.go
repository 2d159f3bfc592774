// Package signals generates the synthetic data behind the dashboard charts.
//
// A source is an unbounded iter.Seq. Signal pulls from it with iter.Pull and
// keeps a fixed-length window of the most recent points; each Tick drops the
// batch oldest points and appends the batch freshest, so the window length
// never changes.
//
//	g := signals.NewGroup(nil)
//	defer g.Close()
//	g.Tick()
//	pts := g.Sin1.Points()
//
// Signals are not safe for concurrent use. The dashboard state owns them and
// ticks them from the UI goroutine only.
package signals
