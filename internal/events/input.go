package events

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrInputClosed is returned by ChanInput.Poll once the input has been closed.
var ErrInputClosed = errors.New("input source closed")

// InputSource yields key presses. Poll waits at most maxWait for a key and
// reports ok=false when none arrived in time. A non-nil error means the
// source is unusable.
type InputSource interface {
	Poll(ctx context.Context, maxWait time.Duration) (key Key, ok bool, err error)
}

var _ InputSource = (*ChanInput)(nil)

// ChanInput is an InputSource fed by Push. The terminal program pushes its
// key messages here so that they reach the multiplexer in arrival order.
type ChanInput struct {
	keys      chan Key
	done      chan struct{}
	closeOnce sync.Once
}

// NewChanInput returns a ChanInput buffering up to size pending keys.
func NewChanInput(size int) *ChanInput {
	return &ChanInput{
		keys: make(chan Key, max(size, 1)),
		done: make(chan struct{}),
	}
}

// Push queues a key without blocking. It returns false when the buffer is
// full or the input is closed; the key is dropped in both cases.
func (c *ChanInput) Push(k Key) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.keys <- k:
		return true
	default:
		return false
	}
}

// Close makes every later Poll fail with ErrInputClosed. It is safe to call
// more than once.
func (c *ChanInput) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Poll implements InputSource.
func (c *ChanInput) Poll(ctx context.Context, maxWait time.Duration) (Key, bool, error) {
	select {
	case <-c.done:
		return "", false, ErrInputClosed
	case k := <-c.keys:
		return k, true, nil
	default:
	}
	if maxWait <= 0 {
		return "", false, nil
	}

	timer := time.NewTimer(maxWait)
	defer timer.Stop()

	select {
	case k := <-c.keys:
		return k, true, nil
	case <-timer.C:
		return "", false, nil
	case <-c.done:
		return "", false, ErrInputClosed
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}
