package sinks

import (
	"github.com/arielf-camacho/rxfrom/log"
	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observer[any](Handlers[any]{})

// Handlers is an observer made of optional callbacks. A nil Next or Complete
// is a no-op. A nil Error hands the error to log.Unhandled so that it is
// never lost silently.
//
//	sources.Slice(names).Subscribe(ctx, sinks.Handlers[string]{
//		Next:     func(v string) { fmt.Println(v) },
//		Complete: func() { fmt.Println("Completed!") },
//	})
type Handlers[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

func (h Handlers[T]) OnNext(v T) {
	if h.Next != nil {
		h.Next(v)
	}
}

func (h Handlers[T]) OnError(err error) {
	if h.Error != nil {
		h.Error(err)
		return
	}
	log.Unhandled(err)
}

func (h Handlers[T]) OnComplete() {
	if h.Complete != nil {
		h.Complete()
	}
}
