// Package mainloop hands callbacks from worker goroutines to a single
// designated goroutine.
package mainloop

import (
	"context"
	"sync"
)

// Dispatcher schedules fn to run later, exactly once, on the main context.
// Run must not block the caller.
type Dispatcher interface {
	Run(fn func())
}

// Func adapts an external scheduling primitive to Dispatcher.
type Func func(fn func())

// Run implements Dispatcher.
func (f Func) Run(fn func()) {
	f(fn)
}

// Ensure Loop implements Dispatcher at compile time.
var _ Dispatcher = (*Loop)(nil)

// Loop is an unbounded FIFO of callbacks drained by one goroutine. The
// goroutine calling Drain, Serve or Next is the main context.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool
}

// NewLoop returns an empty Loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Run enqueues fn. It never blocks. Callbacks submitted after Close are
// discarded.
func (l *Loop) Run(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Len reports the number of queued callbacks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Drain runs every queued callback on the calling goroutine and returns how
// many ran. Callbacks queued while draining run in the same pass.
func (l *Loop) Drain() int {
	ran := 0
	for {
		fn, ok := l.pop()
		if !ok {
			return ran
		}
		fn()
		ran++
	}
}

// Serve drains the loop on the calling goroutine until ctx is done.
func (l *Loop) Serve(ctx context.Context) error {
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Next blocks until a callback is available and returns it without running
// it, so an event loop such as Bubble Tea can invoke it on its own goroutine.
// It returns false once ctx is done or the loop is closed and empty.
func (l *Loop) Next(ctx context.Context) (func(), bool) {
	for {
		if fn, ok := l.pop(); ok {
			return fn, true
		}
		if l.isClosed() {
			return nil, false
		}
		select {
		case <-ctx.Done():
			return nil, false
		case <-l.wake:
		}
	}
}

// Close stops accepting callbacks and wakes any blocked Next.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) pop() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

func (l *Loop) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}
