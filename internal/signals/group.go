package signals

import "math/rand/v2"

// Window is the visible x-axis range of the sin charts.
type Window struct {
	Lo, Hi float64
}

// Group bundles the dashboard's signals so they advance together.
type Group struct {
	Sparkline *Signal[uint64]
	Sin1      *Signal[Point]
	Sin2      *Signal[Point]
	Window    Window
}

// Layout of the default group.
const (
	sparklineCapacity = 300
	sin1Capacity      = 100
	sin1Batch         = 5
	sin2Capacity      = 200
	sin2Batch         = 10
)

// NewGroup builds the default signals. rng seeds the random sparkline; nil
// uses the global generator.
func NewGroup(rng *rand.Rand) *Group {
	return &Group{
		Sparkline: New(Random(rng, 0, 100), sparklineCapacity, 1),
		Sin1:      New(Sin(0.2, 3.0, 18.0), sin1Capacity, sin1Batch),
		Sin2:      New(Sin(0.1, 2.0, 10.0), sin2Capacity, sin2Batch),
		Window:    Window{Lo: 0, Hi: 20},
	}
}

// Tick advances every signal by its batch and slides the x window by one.
func (g *Group) Tick() {
	g.Sparkline.Tick()
	g.Sin1.Tick()
	g.Sin2.Tick()
	g.Window.Lo++
	g.Window.Hi++
}

// Close releases every signal's source.
func (g *Group) Close() {
	g.Sparkline.Close()
	g.Sin1.Close()
	g.Sin2.Close()
}
