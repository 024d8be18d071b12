package sources

import (
	"context"
	"slices"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[any](&SliceSource[any]{})

// SliceSource is a cold source that emits the values of a given slice. Every
// subscription replays all values in order and then completes, synchronously,
// before Subscribe returns. Unsubscribing or cancelling the context stops the
// replay.
//
// Graphically, the SliceSource looks like this:
//
//	SliceSource (1, 2, 3, 4, 5)
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type SliceSource[T any] struct {
	items []T
	cfg   config
}

// Slice returns a SliceSource for a copy of items.
func Slice[T any](items []T, opts ...Option) *SliceSource[T] {
	return &SliceSource[T]{
		items: slices.Clone(items),
		cfg:   newConfig("slice", opts),
	}
}

// Subscribe replays the slice to observer.
func (s *SliceSource[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe, logger := subscribe(s.cfg, ctx, observer)

	for _, v := range s.items {
		if safe.Closed() {
			logger.Debugln("unsubscribed before completion")
			return safe
		}
		safe.OnNext(v)
	}

	safe.OnComplete()

	return safe
}
