package flows

import (
	"context"
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[any](&MergeFlow[any]{})

// MergeFlow is an operator that subscribes to all its upstreams at once and
// emits their values as they arrive. It completes when every upstream has
// completed and fails with the first upstream error, which also stops the
// remaining upstreams. Nil upstreams are ignored.
//
// Graphically, the MergeFlow looks like this:
//
// -- 1 ------- 3 ------- 5 -- | -->
//
// ------- 2 ------- 4 ------- | -->
//
// -- MergeFlow ---------- | -->
//
// -> 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type MergeFlow[T any] struct {
	from []primitives.Observable[T]
}

// Merge returns a MergeFlow over the given upstreams.
func Merge[T any](from ...primitives.Observable[T]) *MergeFlow[T] {
	return &MergeFlow[T]{from: lo.Compact(from)}
}

// Subscribe subscribes to every upstream on behalf of observer.
func (m *MergeFlow[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe := primitives.NewSafeObserver(ctx, observer)

	if len(m.from) == 0 {
		safe.OnComplete()
		return safe
	}

	var remaining atomic.Int32
	remaining.Store(int32(len(m.from)))

	for _, upstream := range m.from {
		if safe.Closed() {
			break
		}

		upstream.Subscribe(safe.Context(), &relay[T, T]{
			downstream: safe,
			next:       safe.OnNext,
			complete: func() {
				if remaining.Add(-1) == 0 {
					safe.OnComplete()
				}
			},
		})
	}

	return safe
}
