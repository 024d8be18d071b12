package promise

import (
	"context"
	"fmt"
	"sync"
)

// State is the settlement state of a Promise.
type State uint8

const (
	Pending State = iota
	Fulfilled
	Rejected
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

type continuation[T any] struct {
	onFulfilled func(T)
	onRejected  func(error)
}

// Promise is a value that becomes available at most once, or fails.
//
// Graphically, a promise settles like this:
//
// -- pending ------- fulfilled(v) -->
//
// -- pending ------- rejected(err) -->
type Promise[T any] struct {
	queue *Queue

	mu            sync.Mutex
	state         State
	value         T
	err           error
	continuations []continuation[T]
	done          chan struct{}
}

func newPromise[T any](opts []Option) *Promise[T] {
	c := newConfig(opts)
	return &Promise[T]{
		queue: c.queue,
		done:  make(chan struct{}),
	}
}

// New creates a pending promise and runs executor synchronously with the
// functions that settle it. Only the first call to either function counts. A
// panic inside executor rejects the promise.
func New[T any](
	executor func(resolve func(T), reject func(error)),
	opts ...Option,
) *Promise[T] {
	p := newPromise[T](opts)

	func() {
		defer func() {
			if r := recover(); r != nil {
				p.reject(fmt.Errorf("promise executor panicked: %v", r))
			}
		}()

		executor(p.fulfill, p.reject)
	}()

	return p
}

// Resolve returns a promise already fulfilled with v.
func Resolve[T any](v T, opts ...Option) *Promise[T] {
	p := newPromise[T](opts)
	p.fulfill(v)
	return p
}

// Reject returns a promise already rejected with err.
func Reject[T any](err error, opts ...Option) *Promise[T] {
	p := newPromise[T](opts)
	p.reject(err)
	return p
}

// Go runs fn on its own goroutine and settles the promise with its result.
// If ctx is done first the promise is rejected with the context error.
func Go[T any](
	ctx context.Context,
	fn func(context.Context) (T, error),
	opts ...Option,
) *Promise[T] {
	p := newPromise[T](opts)

	stop := context.AfterFunc(ctx, func() {
		p.reject(ctx.Err())
	})

	go func() {
		defer stop()

		v, err := fn(ctx)
		if err != nil {
			p.reject(err)
			return
		}
		p.fulfill(v)
	}()

	return p
}

// Then registers the continuations of the promise. Either may be nil. Exactly
// one of them runs, on the promise queue, once the promise has settled.
func (p *Promise[T]) Then(onFulfilled func(T), onRejected func(error)) {
	c := continuation[T]{onFulfilled: onFulfilled, onRejected: onRejected}

	p.mu.Lock()
	if p.state == Pending {
		p.continuations = append(p.continuations, c)
		p.mu.Unlock()
		return
	}
	state, value, err := p.state, p.value, p.err
	p.mu.Unlock()

	p.schedule(c, state, value, err)
}

// Await blocks until the promise settles or ctx is done.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed when the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// State returns the current state of the promise.
func (p *Promise[T]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Promise[T]) fulfill(v T) {
	p.settle(Fulfilled, v, nil)
}

func (p *Promise[T]) reject(err error) {
	if err == nil {
		err = &RejectionError{}
	}

	var zero T
	p.settle(Rejected, zero, err)
}

func (p *Promise[T]) settle(state State, v T, err error) {
	p.mu.Lock()
	if p.state != Pending {
		p.mu.Unlock()
		return
	}
	p.state = state
	p.value = v
	p.err = err
	pending := p.continuations
	p.continuations = nil
	close(p.done)
	p.mu.Unlock()

	for _, c := range pending {
		p.schedule(c, state, v, err)
	}
}

func (p *Promise[T]) schedule(c continuation[T], state State, v T, err error) {
	switch state {
	case Fulfilled:
		if c.onFulfilled != nil {
			p.queue.Enqueue(func() { c.onFulfilled(v) })
		}
	case Rejected:
		if c.onRejected != nil {
			p.queue.Enqueue(func() { c.onRejected(err) })
		}
	}
}
