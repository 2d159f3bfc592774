// Package events merges the terminal's key presses and a fixed-rate timer
// into one ordered stream.
//
// Run is the multiplexer. It owns the tick clock and an InputSource and runs
// on its own goroutine; the UI goroutine is the single consumer of its output
// channel. ChanInput is the InputSource used in production: the bubbletea
// program pushes key messages into it rather than acting on them directly, so
// every state change flows through the same ordered stream.
//
// Event ordering is observation order. A tick is emitted once at least one
// period has elapsed since the previous tick, regardless of how much input
// arrived in between.
package events
