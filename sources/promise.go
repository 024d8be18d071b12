package sources

import (
	"context"

	"github.com/arielf-camacho/rxfrom/primitives"
	"github.com/arielf-camacho/rxfrom/promise"
)

var _ = primitives.Observable[any](&PromiseSource[any]{})

// PromiseSource turns a promise into a sequence: once the promise fulfils it
// emits the value and completes, if it rejects it emits the rejection reason
// as an error, unchanged.
//
// Each subscription registers its own continuation on the promise, so late
// subscribers still observe the settlement, and all of them observe the same
// outcome because the promise settles once. Notifications are delivered from
// the promise queue, never before Subscribe returns. A handler may wait on a
// sequence built from another promise; waiting on a second subscription to
// the same promise from its own handler blocks forever, since both
// continuations share that promise's queue.
//
// Graphically, the PromiseSource looks like this:
//
// -- pending ------- resolved(v) -->
//
// -- PromiseSource --
//
// ------------------ v -- | -->
type PromiseSource[T any] struct {
	promise *promise.Promise[T]
	cfg     config
}

// Promise returns a PromiseSource for p.
func Promise[T any](p *promise.Promise[T], opts ...Option) *PromiseSource[T] {
	if p == nil {
		panic("promise cannot be nil")
	}

	return &PromiseSource[T]{
		promise: p,
		cfg:     newConfig("promise", opts),
	}
}

// Subscribe registers observer on the promise settlement.
func (s *PromiseSource[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe, logger := subscribe(s.cfg, ctx, observer)

	s.promise.Then(
		func(v T) {
			if safe.Closed() {
				logger.Debugln("fulfilled after unsubscription, dropped")
				return
			}
			safe.OnNext(v)
			safe.OnComplete()
		},
		func(err error) {
			if safe.Closed() {
				logger.Debugln("rejected after unsubscription, dropped")
				return
			}
			logger.Debugln("rejected: %v", err)
			safe.OnError(err)
		},
	)

	return safe
}
