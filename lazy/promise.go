package lazy

import (
	"sync"
	"sync/atomic"
)

// Promise holds a computation that runs at most once. Share a Promise by
// pointer: forcing it from any holder makes the memoized result visible to
// all of them. A Promise transitions exactly once, from unforced to either a
// value or an error, and never re-runs its function afterwards.
type Promise[T any] struct {
	once   sync.Once
	forced atomic.Bool
	fn     func() (T, error)
	value  T
	err    error
}

// Defer wraps fn without invoking it. fn must not be nil.
func Defer[T any](fn func() (T, error)) *Promise[T] {
	return &Promise[T]{fn: fn}
}

// Resolved returns an already-forced Promise holding v.
func Resolved[T any](v T) *Promise[T] {
	p := &Promise[T]{value: v}
	p.forced.Store(true)
	return p
}

// Force returns the promised value, running the wrapped function on the
// first call only. Both the value and any error are recorded, so repeated
// calls observe the same outcome without re-running the computation. The
// function reference is released after it runs.
func (p *Promise[T]) Force() (T, error) {
	p.once.Do(func() {
		if p.fn != nil {
			p.value, p.err = p.fn()
			p.fn = nil
		}
		p.forced.Store(true)
	})
	return p.value, p.err
}

// Forced reports whether the promise has transitioned. It observes without
// forcing, which makes it suitable for asserting laziness in tests.
func (p *Promise[T]) Forced() bool {
	return p.forced.Load()
}
