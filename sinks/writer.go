package sinks

import (
	"fmt"
	"io"
	"sync"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.WaitableObserver[any](&WriterSink[any]{})

// WriterSink is a sink that writes one line per notification to an
// io.Writer: the value for next, "Error: <reason>" for error and
// "Completed!" for complete.
//
// Graphically, the WriterSink looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- WriterSink --
//
// 1\n2\n3\nCompleted!\n
type WriterSink[T any] struct {
	writer io.Writer
	format func(T) string

	wg   sync.WaitGroup
	once sync.Once
	mu   sync.Mutex
	err  error
}

// WriterSinkBuilder is a fluent builder for WriterSink.
type WriterSinkBuilder[T any] struct {
	writer io.Writer
	format func(T) string
}

// Writer creates a new WriterSinkBuilder for building a WriterSink.
func Writer[T any](w io.Writer) *WriterSinkBuilder[T] {
	return &WriterSinkBuilder[T]{
		writer: w,
		format: func(v T) string { return fmt.Sprint(v) },
	}
}

// Format sets the function that renders a value as a line.
func (b *WriterSinkBuilder[T]) Format(
	format func(T) string,
) *WriterSinkBuilder[T] {
	if format != nil {
		b.format = format
	}
	return b
}

// Build creates the WriterSink.
func (b *WriterSinkBuilder[T]) Build() *WriterSink[T] {
	sink := &WriterSink[T]{
		writer: b.writer,
		format: b.format,
	}

	sink.wg.Add(1)

	return sink
}

func (w *WriterSink[T]) OnNext(v T) {
	fmt.Fprintln(w.writer, w.format(v))
}

func (w *WriterSink[T]) OnError(err error) {
	fmt.Fprintln(w.writer, "Error:", err)
	w.finish(err)
}

func (w *WriterSink[T]) OnComplete() {
	fmt.Fprintln(w.writer, "Completed!")
	w.finish(nil)
}

// Wait blocks until the sequence terminates and returns its error, if any.
func (w *WriterSink[T]) Wait() error {
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *WriterSink[T]) finish(err error) {
	w.once.Do(func() {
		w.mu.Lock()
		w.err = err
		w.mu.Unlock()
		w.wg.Done()
	})
}
