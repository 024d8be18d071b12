package primitives

// Observer represents any object that can receive the notifications of an
// Observable. Implementations are never called concurrently by the sources of
// this module.
type Observer[T any] interface {
	OnNext(value T)
	OnError(err error)
	OnComplete()
}

// WaitableObserver is an Observer that can be waited on until the observed
// sequence terminates.
type WaitableObserver[T any] interface {
	Observer[T]

	// Wait blocks until a terminal notification is received and returns the
	// error carried by it, if any.
	Wait() error
}
