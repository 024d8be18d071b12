package primitives

import (
	"context"
	"sync"
	"sync/atomic"
)

var _ = Observer[any](&SafeObserver[any]{})
var _ = Subscription(&SafeObserver[any]{})

// SafeObserver guards an Observer so that it sees zero or more OnNext calls
// followed by at most one OnError or OnComplete, never concurrently. Anything
// delivered after the terminal notification, after Unsubscribe or after the
// subscribe context is cancelled is silently dropped.
//
// A SafeObserver is also the Subscription handed back to the subscriber.
type SafeObserver[T any] struct {
	observer Observer[T]

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

// NewSafeObserver wraps observer. Cancelling ctx has the same effect as
// calling Unsubscribe.
func NewSafeObserver[T any](
	ctx context.Context,
	observer Observer[T],
) *SafeObserver[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	inner, cancel := context.WithCancel(ctx)

	s := &SafeObserver[T]{
		observer: observer,
		ctx:      inner,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	context.AfterFunc(inner, s.Unsubscribe)

	return s
}

// Context returns a context that is cancelled as soon as the subscription is
// closed. Producers use it to stop early.
func (s *SafeObserver[T]) Context() context.Context {
	return s.ctx
}

// OnNext forwards v unless the subscription is closed.
func (s *SafeObserver[T]) OnNext(v T) {
	if s.Closed() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Closed() {
		return
	}

	s.observer.OnNext(v)
}

// OnError forwards err and closes the subscription.
func (s *SafeObserver[T]) OnError(err error) {
	if !s.terminate() {
		return
	}
	defer s.mu.Unlock()
	defer s.finish()

	s.observer.OnError(err)
}

// OnComplete forwards the completion and closes the subscription.
func (s *SafeObserver[T]) OnComplete() {
	if !s.terminate() {
		return
	}
	defer s.mu.Unlock()
	defer s.finish()

	s.observer.OnComplete()
}

// Dispatch routes n to the matching On* method.
func (s *SafeObserver[T]) Dispatch(n Notification[T]) {
	n.Accept(s)
}

// Unsubscribe closes the subscription. Notifications arriving afterwards are
// dropped.
func (s *SafeObserver[T]) Unsubscribe() {
	s.closed.Store(true)
	s.finish()
}

// Done returns a channel that is closed once the subscription is closed.
func (s *SafeObserver[T]) Done() <-chan struct{} {
	return s.done
}

// Closed reports whether the subscription is closed. A cancelled subscribe
// context counts as closed even before Done is closed.
func (s *SafeObserver[T]) Closed() bool {
	return s.closed.Load() || s.ctx.Err() != nil
}

// terminate takes the dispatch lock and flips the closed flag. It returns
// false, without holding the lock, when the subscription was already closed.
func (s *SafeObserver[T]) terminate() bool {
	if s.Closed() {
		return false
	}

	s.mu.Lock()
	if s.ctx.Err() != nil || !s.closed.CompareAndSwap(false, true) {
		s.mu.Unlock()
		return false
	}

	return true
}

func (s *SafeObserver[T]) finish() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.done)
	})
}
