package sources

import (
	"context"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[any](&SingleSource[any]{})

// SingleSource is a cold source that calls get on every subscription and
// emits its single value, or the error it returned.
//
// Graphically, the SingleSource looks like this:
//
// ----------------------------- | -->
//
// -- SingleSource f(x) = 1 ----------
//
// -----------------------1 ---- | -->
type SingleSource[T any] struct {
	get func() (T, error)
	cfg config
}

// Single returns a SingleSource for get.
func Single[T any](get func() (T, error), opts ...Option) *SingleSource[T] {
	if get == nil {
		panic("get cannot be nil")
	}

	return &SingleSource[T]{
		get: get,
		cfg: newConfig("single", opts),
	}
}

// Subscribe calls get and delivers its outcome to observer.
func (s *SingleSource[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe, logger := subscribe(s.cfg, ctx, observer)

	if safe.Closed() {
		return safe
	}

	value, err := s.get()
	if err != nil {
		logger.Debugln("get failed: %v", err)
		safe.OnError(err)
		return safe
	}

	safe.OnNext(value)
	safe.OnComplete()

	return safe
}
