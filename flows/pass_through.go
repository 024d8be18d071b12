package flows

import (
	"context"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[int](&PassThroughFlow[int]{})

// PassThroughFlow re-emits the upstream notifications unchanged. It is useful
// to hide the concrete type of a source.
//
// Graphically, the PassThroughFlow looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- PassThroughFlow --
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type PassThroughFlow[T any] struct {
	upstream primitives.Observable[T]
}

// PassThrough returns a PassThroughFlow over upstream.
func PassThrough[T any](upstream primitives.Observable[T]) *PassThroughFlow[T] {
	return &PassThroughFlow[T]{upstream: upstream}
}

// Subscribe subscribes to the upstream on behalf of observer.
func (p *PassThroughFlow[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe := primitives.NewSafeObserver(ctx, observer)

	p.upstream.Subscribe(safe.Context(), &relay[T, T]{
		downstream: safe,
		next:       safe.OnNext,
	})

	return safe
}
