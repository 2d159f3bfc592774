// Package refresh decides when the remote page is fetched and does the
// fetching off the UI goroutine.
//
// # Components
//
//   - Scheduler: lives on the UI goroutine, advanced once per tick. When a
//     full period has elapsed it sends a request and restarts the interval.
//   - Worker: its own goroutine. Blocks on the request channel, fetches once
//     per request and streams each record back on the results channel.
//
// # Channels
//
// The request channel carries empty structs and should have a buffer of one.
// Scheduler sends never block; a request fired while another is still
// pending is coalesced into it.
//
// The results channel is bounded. When it is full the worker blocks until the
// dashboard drains it on its next tick or ctx is cancelled.
//
// # Errors
//
// A failed fetch is not fatal. The worker sends one Result with Err set and
// waits for the next request. The dashboard shows the message in its error
// list.
//
// ErrWorkerGone and ErrRequestsClosed mean one side of the request channel
// is gone. Both are fatal.
package refresh
