package sources

import (
	"errors"
	"fmt"
	"iter"

	"github.com/arielf-camacho/rxfrom/primitives"
	"github.com/arielf-camacho/rxfrom/promise"
)

// ErrUnsupportedSource is returned by From for values it cannot convert.
var ErrUnsupportedSource = errors.New("unsupported source")

// From converts src into an Observable of T. Supported sources are:
//
//   - []T: emits every element, then completes (see Slice)
//   - *promise.Promise[T]: emits the fulfilled value and completes, or the
//     rejection reason as an error (see Promise)
//   - iter.Seq[T] and iter.Seq2[T, error]: emits the yielded values (see Seq
//     and SeqErr)
//   - primitives.Observable[T]: passes notifications through (see Observable)
//   - <-chan T, chan T and primitives.Outlet[T]: emits the channel values
//     until it is closed (see Channel)
//
// Slices, iterators and promises produce cold sequences: every subscription
// replays the source from the start.
func From[T any](src any, opts ...Option) (primitives.Observable[T], error) {
	switch s := src.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedSource)
	case []T:
		return Slice(s, opts...), nil
	case *promise.Promise[T]:
		if s == nil {
			return nil, fmt.Errorf("%w: nil promise", ErrUnsupportedSource)
		}
		return Promise(s, opts...), nil
	case iter.Seq[T]:
		if s == nil {
			return nil, fmt.Errorf("%w: nil iterator", ErrUnsupportedSource)
		}
		return Seq(s, opts...), nil
	case func(func(T) bool):
		if s == nil {
			return nil, fmt.Errorf("%w: nil iterator", ErrUnsupportedSource)
		}
		return Seq(s, opts...), nil
	case iter.Seq2[T, error]:
		if s == nil {
			return nil, fmt.Errorf("%w: nil iterator", ErrUnsupportedSource)
		}
		return SeqErr(s, opts...), nil
	case func(func(T, error) bool):
		if s == nil {
			return nil, fmt.Errorf("%w: nil iterator", ErrUnsupportedSource)
		}
		return SeqErr(s, opts...), nil
	case primitives.Observable[T]:
		return Observable(s, opts...), nil
	case primitives.Outlet[T]:
		return Outlet(s, opts...), nil
	case <-chan T:
		return Channel[T](s, opts...), nil
	case chan T:
		return Channel[T](s, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
}

// MustFrom is like From but panics when src is not supported.
func MustFrom[T any](src any, opts ...Option) primitives.Observable[T] {
	o, err := From[T](src, opts...)
	if err != nil {
		panic(err)
	}
	return o
}
