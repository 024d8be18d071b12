package sinks

import (
	"sync"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.WaitableObserver[int](&ReduceSink[int, any]{})

// ReduceSink is a sink that reduces the values of a sequence to a single
// value using the given reduce function. An error returned by the function is
// kept and reported by Wait; later values are ignored.
//
// Graphically, the ReduceSink looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 ------- | -->
//
// -- ReduceSink f(result, value, index) = result + value --
//
// -> ----------------------- 15 -- |
type ReduceSink[IN, OUT any] struct {
	mu   sync.RWMutex
	fn   func(result OUT, value IN, index uint) (OUT, error)
	wg   sync.WaitGroup
	once sync.Once

	index  uint
	result OUT
	err    error
}

// ReduceSinkBuilder is a fluent builder for ReduceSink.
type ReduceSinkBuilder[IN, OUT any] struct {
	fn      func(result OUT, value IN, index uint) (OUT, error)
	initial OUT
}

// Reduce creates a new ReduceSinkBuilder for building a ReduceSink.
func Reduce[IN, OUT any](
	fn func(result OUT, value IN, index uint) (OUT, error),
	initial OUT,
) *ReduceSinkBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &ReduceSinkBuilder[IN, OUT]{
		fn:      fn,
		initial: initial,
	}
}

// Build creates the ReduceSink.
func (b *ReduceSinkBuilder[IN, OUT]) Build() *ReduceSink[IN, OUT] {
	sink := &ReduceSink[IN, OUT]{
		fn:     b.fn,
		result: b.initial,
	}

	sink.wg.Add(1)

	return sink
}

func (s *ReduceSink[IN, OUT]) OnNext(v IN) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return
	}

	result, err := s.fn(s.result, v, s.index)
	if err != nil {
		s.err = err
		return
	}

	s.result = result
	s.index++
}

func (s *ReduceSink[IN, OUT]) OnError(err error) {
	s.finish(err)
}

func (s *ReduceSink[IN, OUT]) OnComplete() {
	s.finish(nil)
}

// Result returns the result (as of now) of the reduce operation.
func (s *ReduceSink[IN, OUT]) Result() OUT {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Wait waits for the sequence to terminate and returns the first error from
// either the sequence or the reduce function.
func (s *ReduceSink[IN, OUT]) Wait() error {
	s.wg.Wait()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ReduceSink[IN, OUT]) finish(err error) {
	s.once.Do(func() {
		s.mu.Lock()
		if s.err == nil {
			s.err = err
		}
		s.mu.Unlock()
		s.wg.Done()
	})
}
