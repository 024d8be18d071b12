package promise

// Option configures a Promise.
type Option func(*config)

type config struct {
	queue *Queue
}

// WithQueue sets the queue the continuations of the promise run on. Promises
// sharing a queue see their continuations run in settlement order. Without
// it every promise gets a queue of its own.
func WithQueue(q *Queue) Option {
	return func(c *config) {
		if q != nil {
			c.queue = q
		}
	}
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.queue == nil {
		c.queue = NewQueue()
	}
	return c
}
