package primitives

import "fmt"

// Kind tells which of the three notifications a Notification carries.
type Kind uint8

const (
	// NextKind carries the next value of the sequence.
	NextKind Kind = iota
	// ErrorKind terminates the sequence with an error.
	ErrorKind
	// CompleteKind terminates the sequence successfully.
	CompleteKind
)

func (k Kind) String() string {
	switch k {
	case NextKind:
		return "next"
	case ErrorKind:
		return "error"
	case CompleteKind:
		return "complete"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Notification is one event emitted by an Observable: Next(value),
// Error(err) or Complete.
//
// Graphically, a sequence of notifications looks like this:
//
// -- N(1) -- N(2) -- N(3) -- C -->
//
// -- N(1) -- E(err) -->
type Notification[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

// Next returns a NextKind notification carrying v.
func Next[T any](v T) Notification[T] {
	return Notification[T]{Kind: NextKind, Value: v}
}

// Error returns an ErrorKind notification carrying err.
func Error[T any](err error) Notification[T] {
	return Notification[T]{Kind: ErrorKind, Err: err}
}

// Complete returns a CompleteKind notification.
func Complete[T any]() Notification[T] {
	return Notification[T]{Kind: CompleteKind}
}

// Terminal reports whether n ends the sequence.
func (n Notification[T]) Terminal() bool {
	return n.Kind == ErrorKind || n.Kind == CompleteKind
}

// Accept routes n to the matching method of observer.
func (n Notification[T]) Accept(observer Observer[T]) {
	switch n.Kind {
	case NextKind:
		observer.OnNext(n.Value)
	case ErrorKind:
		observer.OnError(n.Err)
	case CompleteKind:
		observer.OnComplete()
	default:
		panic(fmt.Errorf("unknown notification kind: %v", n.Kind))
	}
}

func (n Notification[T]) String() string {
	switch n.Kind {
	case NextKind:
		return fmt.Sprintf("next(%v)", n.Value)
	case ErrorKind:
		return fmt.Sprintf("error(%v)", n.Err)
	default:
		return n.Kind.String()
	}
}
