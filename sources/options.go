package sources

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/arielf-camacho/rxfrom/log"
	"github.com/arielf-camacho/rxfrom/primitives"
)

// Option configures a source.
type Option func(*config)

type config struct {
	name   string
	logger *log.Logger
}

// WithName sets the name the source logs under.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger used for the subscription lifecycle messages.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(kind string, opts []Option) config {
	c := config{name: kind}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.logger == nil {
		c.logger = log.Entry(logrus.Fields{})
	}
	c.logger = c.logger.With("source", c.name)
	return c
}

// subscribe wraps observer for one subscription and returns the logger
// tagged with the subscription id.
func subscribe[T any](
	c config,
	ctx context.Context,
	observer primitives.Observer[T],
) (*primitives.SafeObserver[T], *log.Logger) {
	safe := primitives.NewSafeObserver(ctx, observer)
	logger := c.logger.With("subscription", uuid.Must(uuid.NewV4()).String())
	logger.Debugln("subscribed")
	return safe, logger
}
