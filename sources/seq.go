package sources

import (
	"context"
	"iter"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observable[any](&SeqSource[any]{})
var _ = primitives.Observable[any](&SeqErrSource[any]{})

// SeqSource is a cold source that ranges over an iterator on every
// subscription, emitting each yielded value and completing once the iterator
// is exhausted. Iteration runs synchronously inside Subscribe and stops early
// when the subscription closes.
//
// Graphically, the SeqSource looks like this:
//
//	SeqSource (yield 1, yield 2, yield 3)
//
// -- 1 -- 2 -- 3 -- | -->
type SeqSource[T any] struct {
	seq iter.Seq[T]
	cfg config
}

// Seq returns a SeqSource over seq.
func Seq[T any](seq iter.Seq[T], opts ...Option) *SeqSource[T] {
	if seq == nil {
		panic("seq cannot be nil")
	}

	return &SeqSource[T]{
		seq: seq,
		cfg: newConfig("seq", opts),
	}
}

// Subscribe ranges over the iterator and forwards the values to observer.
func (s *SeqSource[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe, logger := subscribe(s.cfg, ctx, observer)

	for v := range s.seq {
		if safe.Closed() {
			logger.Debugln("unsubscribed before completion")
			return safe
		}
		safe.OnNext(v)
	}

	safe.OnComplete()

	return safe
}

// SeqErrSource is like SeqSource for iterators that can fail: the first
// non-nil error yielded terminates the sequence with an error notification.
//
// Graphically, the SeqErrSource looks like this:
//
//	SeqErrSource (yield (1, nil), yield (0, err))
//
// -- 1 -- X(err) -->
type SeqErrSource[T any] struct {
	seq iter.Seq2[T, error]
	cfg config
}

// SeqErr returns a SeqErrSource over seq.
func SeqErr[T any](seq iter.Seq2[T, error], opts ...Option) *SeqErrSource[T] {
	if seq == nil {
		panic("seq cannot be nil")
	}

	return &SeqErrSource[T]{
		seq: seq,
		cfg: newConfig("seq", opts),
	}
}

// Subscribe ranges over the iterator and forwards values and the first error
// to observer.
func (s *SeqErrSource[T]) Subscribe(
	ctx context.Context,
	observer primitives.Observer[T],
) primitives.Subscription {
	safe, logger := subscribe(s.cfg, ctx, observer)

	for v, err := range s.seq {
		if safe.Closed() {
			logger.Debugln("unsubscribed before completion")
			return safe
		}
		if err != nil {
			logger.Debugln("iteration failed: %v", err)
			safe.OnError(err)
			return safe
		}
		safe.OnNext(v)
	}

	safe.OnComplete()

	return safe
}
