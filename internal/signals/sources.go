package signals

import (
	"iter"
	"math"
	"math/rand/v2"
)

// Point is one (x, y) sample of a periodic signal.
type Point struct {
	X, Y float64
}

// Random yields uniform integers in [lower, upper) forever. A nil rng uses
// the global generator.
func Random(rng *rand.Rand, lower, upper uint64) iter.Seq[uint64] {
	if upper <= lower {
		upper = lower + 1
	}
	span := upper - lower
	return func(yield func(uint64) bool) {
		for {
			var n uint64
			if rng != nil {
				n = rng.Uint64N(span)
			} else {
				n = rand.Uint64N(span)
			}
			if !yield(lower + n) {
				return
			}
		}
	}
}

// Sin yields (x, sin(x/period)*scale) forever, starting at x = 0 and stepping
// x by interval.
func Sin(interval, period, scale float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := 0.0; ; x += interval {
			if !yield(Point{X: x, Y: math.Sin(x/period) * scale}) {
				return
			}
		}
	}
}
