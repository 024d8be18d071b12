package sources

import (
	"context"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[any](&ChannelSource[any]{})

// ChannelSource is a source that emits the values of a given channel until it
// is closed, then completes. Values are read on a dedicated goroutine per
// subscription. The channel is shared, so concurrent subscriptions compete
// for its values.
//
// Graphically, the ChannelSource looks like this:
//
// ---channel -> 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- ChannelSource --------------------- | -->
//
// ------------- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type ChannelSource[T any] struct {
	channel <-chan T
	cfg     config
}

// Channel returns a ChannelSource reading from channel.
func Channel[T any](channel <-chan T, opts ...Option) *ChannelSource[T] {
	return &ChannelSource[T]{
		channel: channel,
		cfg:     newConfig("channel", opts),
	}
}

// Outlet returns a ChannelSource reading from the channel of outlet.
func Outlet[T any](
	outlet primitives.Outlet[T],
	opts ...Option,
) *ChannelSource[T] {
	return Channel(outlet.Out(), opts...)
}

// Subscribe starts forwarding the channel values to observer.
func (s *ChannelSource[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe, logger := subscribe(s.cfg, ctx, observer)

	go func() {
		done := safe.Context().Done()

		for {
			select {
			case <-done:
				logger.Debugln("unsubscribed before completion")
				return
			case value, ok := <-s.channel:
				if !ok {
					safe.OnComplete()
					return
				}
				safe.OnNext(value)
			}
		}
	}()

	return safe
}
