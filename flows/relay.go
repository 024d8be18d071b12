package flows

import "github.com/arielf-camacho/rxfrom/primitives"

// relay is the observer a flow subscribes upstream with. Terminal
// notifications go straight to the downstream, values go through next.
type relay[IN, OUT any] struct {
	downstream *primitives.SafeObserver[OUT]
	next       func(IN)
	complete   func()
}

func (r *relay[IN, OUT]) OnNext(v IN) {
	if r.downstream.Closed() {
		return
	}
	r.next(v)
}

func (r *relay[IN, OUT]) OnError(err error) {
	r.downstream.OnError(err)
}

func (r *relay[IN, OUT]) OnComplete() {
	if r.complete != nil {
		r.complete()
		return
	}
	r.downstream.OnComplete()
}
