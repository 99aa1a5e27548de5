package maybe

import (
	"context"

	"github.com/tupyy/fpintro/internal/future"
)

// MapAsync is Map for functions returning a future. An absent Maybe resolves at once
// without calling fn. A rejected future returned by fn rejects the result.
func MapAsync[T, U any](m Maybe[T], fn func(T) *future.Future[U]) *future.Future[Maybe[U]] {
	if !m.present {
		return future.Resolved(Maybe[U]{policy: m.policy})
	}

	pending := fn(m.value)
	return future.Go(func() (Maybe[U], error) {
		value, err := pending.Await(context.Background())
		if err != nil {
			return Maybe[U]{policy: m.policy}, err
		}
		return wrap(value, m.policy), nil
	})
}

// FlatMapAsync returns the future produced by fn as is.
func FlatMapAsync[T, U any](m Maybe[T], fn func(T) *future.Future[Maybe[U]]) *future.Future[Maybe[U]] {
	if !m.present {
		return future.Resolved(Maybe[U]{policy: m.policy})
	}
	return fn(m.value)
}
