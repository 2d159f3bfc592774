package signals

import (
	"iter"
	"slices"
)

// Signal keeps a fixed-size window over an unbounded source. Each Tick slides
// the window forward by a batch of points.
type Signal[T any] struct {
	next   func() (T, bool)
	stop   func()
	points []T
	batch  int
}

// New pulls capacity points from source to fill the window. batch is clamped
// to [1, capacity]. The source must be unbounded; if it ends early the window
// is left short and Tick stops sliding.
func New[T any](source iter.Seq[T], capacity, batch int) *Signal[T] {
	capacity = max(capacity, 1)
	batch = min(max(batch, 1), capacity)
	next, stop := iter.Pull(source)
	s := &Signal[T]{
		next:   next,
		stop:   stop,
		points: make([]T, 0, capacity),
		batch:  batch,
	}
	s.points = s.take(s.points, capacity)
	return s
}

// Tick drops the batch oldest points and appends the batch freshest.
func (s *Signal[T]) Tick() {
	fresh := s.take(make([]T, 0, s.batch), s.batch)
	if len(fresh) < s.batch {
		return
	}
	s.points = append(slices.Delete(s.points, 0, s.batch), fresh...)
}

// Points returns a copy of the current window, oldest first.
func (s *Signal[T]) Points() []T { return slices.Clone(s.points) }

// Len returns the window length.
func (s *Signal[T]) Len() int { return len(s.points) }

// Batch returns how many points each Tick advances.
func (s *Signal[T]) Batch() int { return s.batch }

// Close releases the pull iterator.
func (s *Signal[T]) Close() { s.stop() }

func (s *Signal[T]) take(dst []T, n int) []T {
	for range n {
		v, ok := s.next()
		if !ok {
			break
		}
		dst = append(dst, v)
	}
	return dst
}
