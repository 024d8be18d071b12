package primitives

// Subscription represents the link between an Observable and one of its
// observers.
type Subscription interface {
	// Unsubscribe stops any further delivery. Calling it more than once, or
	// after the sequence terminated, is a no-op.
	Unsubscribe()

	// Done returns a channel that is closed once the subscription is closed.
	Done() <-chan struct{}

	// Closed reports whether the subscription is already closed.
	Closed() bool
}
