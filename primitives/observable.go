package primitives

import "context"

// Observable represents any object that pushes a sequence of values to an
// Observer once subscribed. Every call to Subscribe starts an independent
// production of values.
type Observable[T any] interface {
	// Subscribe starts delivering notifications to the given observer. The
	// returned Subscription closes after the terminal notification or when
	// either the context is cancelled or Unsubscribe is called, whichever
	// happens first. No notification is delivered after that.
	Subscribe(ctx context.Context, observer Observer[T]) Subscription
}

// ObservableFunc adapts a plain function to the Observable interface.
type ObservableFunc[T any] func(context.Context, Observer[T]) Subscription

// Subscribe calls f(ctx, observer).
func (f ObservableFunc[T]) Subscribe(
	ctx context.Context,
	observer Observer[T],
) Subscription {
	return f(ctx, observer)
}
