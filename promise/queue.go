package promise

import "sync"

// Queue runs continuations one at a time, in the order they were enqueued.
// The drain goroutine is started on demand and exits when the queue is empty.
// A continuation that blocks on another continuation of the same queue never
// returns, so promises share a queue only when asked to with WithQueue.
type Queue struct {
	mu      sync.Mutex
	tasks   []func()
	running bool
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue schedules fn. It never runs fn on the calling goroutine.
func (q *Queue) Enqueue(fn func()) {
	if fn == nil {
		return
	}

	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.mu.Unlock()

	go q.drain()
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		fn := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		fn()
	}
}
