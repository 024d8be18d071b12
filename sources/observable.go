package sources

import (
	"context"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[any](&ObservableSource[any]{})

// ObservableSource passes through the notifications of an observable-like
// producer. The downstream observer is guarded so that a producer emitting
// after its terminal notification cannot reach it, and unsubscribing
// downstream also unsubscribes from the producer.
//
// Graphically, the ObservableSource looks like this:
//
// -- 1 -- 2 -- | -- 3 -->
//
// -- ObservableSource --
//
// -- 1 -- 2 -- | -->
type ObservableSource[T any] struct {
	upstream primitives.Observable[T]
	cfg      config
}

// Observable returns an ObservableSource wrapping upstream.
func Observable[T any](
	upstream primitives.Observable[T],
	opts ...Option,
) *ObservableSource[T] {
	if upstream == nil {
		panic("upstream cannot be nil")
	}

	return &ObservableSource[T]{
		upstream: upstream,
		cfg:      newConfig("observable", opts),
	}
}

// Subscribe subscribes to the upstream producer on behalf of observer.
func (s *ObservableSource[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe, _ := subscribe(s.cfg, ctx, observer)

	inner := s.upstream.Subscribe(safe.Context(), safe)
	if inner == nil {
		return safe
	}

	go func() {
		select {
		case <-safe.Done():
			inner.Unsubscribe()
		case <-inner.Done():
		}
	}()

	return safe
}
