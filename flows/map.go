package flows

import (
	"context"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[int](&MapFlow[byte, int]{})

// MapFlow is an operator that maps the values of the upstream sequence using
// the given transformation function. An error returned by the function ends
// the sequence with that error and stops the upstream.
//
// Graphically, the MapFlow looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5  -- | -->
//
// -- MapFlow f(x) = x*2 --
//
// -- 2 -- 4 -- 6 -- 8 -- 10 -- | -->
type MapFlow[IN any, OUT any] struct {
	upstream primitives.Observable[IN]
	fn       func(IN) (OUT, error)
}

// Map returns a MapFlow applying fn to every value of upstream.
func Map[IN, OUT any](
	upstream primitives.Observable[IN],
	fn func(IN) (OUT, error),
) *MapFlow[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &MapFlow[IN, OUT]{
		upstream: upstream,
		fn:       fn,
	}
}

// Subscribe subscribes to the upstream and forwards the mapped values.
func (m *MapFlow[IN, OUT]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[OUT],
) primitives.Subscription {
	safe := primitives.NewSafeObserver(ctx, observer)

	m.upstream.Subscribe(safe.Context(), &relay[IN, OUT]{
		downstream: safe,
		next: func(v IN) {
			transformed, err := m.fn(v)
			if err != nil {
				safe.OnError(err)
				return
			}
			safe.OnNext(transformed)
		},
	})

	return safe
}
