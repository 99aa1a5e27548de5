package future

import (
	"context"
	"sync"
)

// Result is a snapshot of a future taken by Poll.
type Result[T any] struct {
	Value T
	Err   error
	ready bool
}

func (r Result[T]) IsReady() bool {
	return r.ready
}

func (r Result[T]) IsPending() bool {
	return !r.ready
}

// Future holds the result of a computation which runs in its own goroutine.
// It is resolved exactly once, either with a value or with an error.
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn in a new goroutine and returns a future of its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()

	go func() {
		value, err := fn()
		if err != nil {
			f.reject(err)
			return
		}
		f.resolve(value)
	}()

	return f
}

// Resolved returns a future which is already resolved with value.
func Resolved[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.resolve(value)
	return f
}

// Rejected returns a future which is already rejected with err.
func Rejected[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.reject(err)
	return f
}

// Then returns a future resolved with fn applied to the value of f.
// A rejection of f is passed through and fn is not called.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	return Go(func() (U, error) {
		value, err := f.Await(context.Background())
		if err != nil {
			var none U
			return none, err
		}
		return fn(value)
	})
}

func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Poll returns the result without blocking.
func (f *Future[T]) Poll() Result[T] {
	if !f.Resolved() {
		return Result[T]{ready: false}
	}

	return Result[T]{
		Value: f.value,
		Err:   f.err,
		ready: true,
	}
}

// Await blocks until the future is resolved or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var none T
		return none, ctx.Err()
	}
}

func (f *Future[T]) resolve(value T) {
	f.once.Do(func() {
		f.value = value
		close(f.done)
	})
}

func (f *Future[T]) reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}
