package sinks

import (
	"sync"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.WaitableObserver[int](&SingleSink[int]{})

// SingleSink is a sink that keeps the value of a sequence expected to emit
// ONE value, like the ones built from a promise. If more values arrive the
// last one wins. Wait blocks until the sequence terminates and returns the
// error it terminated with, if any.
//
// Graphically, the SingleSink looks like this:
//
// -- 1 --------------------------- | -->
//
// -> 1 --------------------------- | -->
type SingleSink[T any] struct {
	mu     sync.RWMutex
	wg     sync.WaitGroup
	once   sync.Once
	result T
	found  bool
	err    error
}

// SingleSinkBuilder is a fluent builder for SingleSink.
type SingleSinkBuilder[T any] struct{}

// Single creates a new SingleSinkBuilder for building a SingleSink.
func Single[T any]() *SingleSinkBuilder[T] {
	return &SingleSinkBuilder[T]{}
}

// Build creates the SingleSink.
func (b *SingleSinkBuilder[T]) Build() *SingleSink[T] {
	sink := &SingleSink[T]{}
	sink.wg.Add(1)
	return sink
}

func (s *SingleSink[T]) OnNext(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = v
	s.found = true
}

func (s *SingleSink[T]) OnError(err error) {
	s.finish(err)
}

func (s *SingleSink[T]) OnComplete() {
	s.finish(nil)
}

// Wait waits for the SingleSink to finish receiving the value.
func (s *SingleSink[T]) Wait() error {
	s.wg.Wait()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Result returns the value received so far and whether there was one.
func (s *SingleSink[T]) Result() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.found
}

func (s *SingleSink[T]) finish(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		s.wg.Done()
	})
}
