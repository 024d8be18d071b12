package helpers

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/arielf-camacho/rxfrom/primitives"
)

var _ = primitives.Observer[any](&Recorder[any]{})

// Recorder is an observer that keeps every notification it receives, in
// order. It does not filter anything, so it shows exactly what a source
// delivered. Safe for concurrent use.
type Recorder[T any] struct {
	mu            sync.Mutex
	notifications []primitives.Notification[T]

	once sync.Once
	done chan struct{}
}

// NewRecorder returns an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{done: make(chan struct{})}
}

func (r *Recorder[T]) OnNext(v T) {
	r.record(primitives.Next(v))
}

func (r *Recorder[T]) OnError(err error) {
	r.record(primitives.Error[T](err))
}

func (r *Recorder[T]) OnComplete() {
	r.record(primitives.Complete[T]())
}

// Done returns a channel that is closed on the first terminal notification.
func (r *Recorder[T]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the first terminal notification or until ctx is done, in
// which case the context error is returned.
func (r *Recorder[T]) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Notifications returns a snapshot of the recorded notifications.
func (r *Recorder[T]) Notifications() []primitives.Notification[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]primitives.Notification[T], len(r.notifications))
	copy(cp, r.notifications)
	return cp
}

// Values returns the values of the recorded Next notifications.
func (r *Recorder[T]) Values() []T {
	return lo.FilterMap(
		r.Notifications(),
		func(n primitives.Notification[T], _ int) (T, bool) {
			return n.Value, n.Kind == primitives.NextKind
		},
	)
}

// Err returns the error of the first recorded Error notification.
func (r *Recorder[T]) Err() error {
	n, ok := lo.Find(r.Notifications(), func(n primitives.Notification[T]) bool {
		return n.Kind == primitives.ErrorKind
	})
	if !ok {
		return nil
	}
	return n.Err
}

func (r *Recorder[T]) record(n primitives.Notification[T]) {
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()

	if n.Terminal() {
		r.once.Do(func() { close(r.done) })
	}
}
