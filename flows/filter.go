package flows

import (
	"context"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[int](&FilterFlow[int]{})

// FilterFlow is an operator that only passes through the values for which the
// predicate returns true. An error returned by the predicate ends the sequence
// with that error.
//
// Graphically, the FilterFlow looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- FilterFlow f(x) = x > 2 --
//
// ------------ 3 -- 4 -- 5 -- | -->
type FilterFlow[T any] struct {
	upstream  primitives.Observable[T]
	predicate func(T) (bool, error)
}

// Filter returns a FilterFlow over upstream.
func Filter[T any](
	upstream primitives.Observable[T],
	predicate func(T) (bool, error),
) *FilterFlow[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}

	return &FilterFlow[T]{
		upstream:  upstream,
		predicate: predicate,
	}
}

// Subscribe subscribes to the upstream and forwards the accepted values.
func (f *FilterFlow[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe := primitives.NewSafeObserver(ctx, observer)

	f.upstream.Subscribe(safe.Context(), &relay[T, T]{
		downstream: safe,
		next: func(v T) {
			ok, err := f.predicate(v)
			if err != nil {
				safe.OnError(err)
				return
			}
			if ok {
				safe.OnNext(v)
			}
		},
	})

	return safe
}
