package sinks

import (
	"context"
	"sync"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observer[any](&ChannelSink[any]{})
var _ = primitives.Outlet[primitives.Notification[any]](&ChannelSink[any]{})

// ChannelSink forwards every notification into a channel and closes the
// channel after the terminal one. Sending blocks until the reader receives or
// the sink context is done, in which case the notification is dropped.
//
// Graphically, the ChannelSink looks like this:
//
// -- 1 -- 2 -- | -->
//
// -- ChannelSink --
//
// -> N(1) -- N(2) -- C -- (closed)
type ChannelSink[T any] struct {
	out chan primitives.Notification[T]

	ctx        context.Context
	bufferSize uint
	once       sync.Once
}

// NewChannelSink returns a new ChannelSink with its own output channel.
func NewChannelSink[T any](opts ...ChannelSinkOption[T]) *ChannelSink[T] {
	ch := &ChannelSink[T]{
		ctx: context.Background(),
	}

	for _, opt := range opts {
		opt(ch)
	}

	ch.out = make(chan primitives.Notification[T], ch.bufferSize)

	return ch
}

// Out returns the channel the notifications are written to.
func (c *ChannelSink[T]) Out() <-chan primitives.Notification[T] {
	return c.out
}

func (c *ChannelSink[T]) OnNext(v T) {
	c.send(primitives.Next(v))
}

func (c *ChannelSink[T]) OnError(err error) {
	c.send(primitives.Error[T](err))
	c.close()
}

func (c *ChannelSink[T]) OnComplete() {
	c.send(primitives.Complete[T]())
	c.close()
}

func (c *ChannelSink[T]) send(n primitives.Notification[T]) {
	select {
	case <-c.ctx.Done():
	case c.out <- n:
	}
}

func (c *ChannelSink[T]) close() {
	c.once.Do(func() { close(c.out) })
}
