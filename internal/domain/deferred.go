package domain

import (
	"context"
	"sync"
	"time"
)

// Deferred is a value that settles exactly once, either resolved with a value
// or failed. Waiters never cancel the producer.
type Deferred[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	ok    bool
}

// NewDeferred returns an unsettled Deferred.
func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{done: make(chan struct{})}
}

// Resolve settles the value. It reports false if it was already settled.
func (d *Deferred[T]) Resolve(value T) bool {
	settled := false

	d.once.Do(func() {
		d.value = value
		d.ok = true
		settled = true
		close(d.done)
	})

	return settled
}

// Fail settles the deferred without a value. It reports false if it was
// already settled.
func (d *Deferred[T]) Fail() bool {
	settled := false

	d.once.Do(func() {
		settled = true
		close(d.done)
	})

	return settled
}

// Done is closed once the deferred settles.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// Settled returns the value without blocking. settled is false while the
// producer is still running.
func (d *Deferred[T]) Settled() (value T, ok bool, settled bool) {
	select {
	case <-d.done:
		return d.value, d.ok, true
	default:
		var zero T
		return zero, false, false
	}
}

// Wait blocks until the deferred settles or ctx is done.
func (d *Deferred[T]) Wait(ctx context.Context) (T, bool, error) {
	select {
	case <-d.done:
		return d.value, d.ok, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

// WaitTimeout is Wait bounded by timeout. settled is false when the budget
// ran out first; a non-positive timeout only inspects the current state.
func (d *Deferred[T]) WaitTimeout(ctx context.Context, timeout time.Duration) (value T, ok bool, settled bool) {
	if timeout <= 0 {
		return d.Settled()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-d.done:
		return d.value, d.ok, true
	case <-timer.C:
	case <-ctx.Done():
	}

	return d.Settled()
}
