package events

import (
	"fmt"
	"time"
)

// Kind distinguishes timer ticks from user input.
type Kind int

const (
	Tick Kind = iota
	Input
)

func (k Kind) String() string {
	switch k {
	case Tick:
		return "tick"
	case Input:
		return "input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Key is a key press in bubbletea's string form, e.g. "q", "up" or "ctrl+c".
type Key string

func (k Key) String() string { return string(k) }

// Event is one item of the merged tick and input stream.
type Event struct {
	Kind Kind
	Key  Key // set for Input only
	At   time.Time
}

// NewTick returns a Tick event observed at t.
func NewTick(t time.Time) Event { return Event{Kind: Tick, At: t} }

// NewInput returns an Input event for key observed at t.
func NewInput(key Key, t time.Time) Event { return Event{Kind: Input, Key: key, At: t} }
