// Package demo runs the creation scenarios of the rxfrom command: a slice, a
// fulfilled promise and a rejected promise, each turned into an observable
// with sources.From and printed line by line.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/arielf-camacho/rxfrom/config"
	"github.com/arielf-camacho/rxfrom/log"
	"github.com/arielf-camacho/rxfrom/primitives"
	"github.com/arielf-camacho/rxfrom/promise"
	"github.com/arielf-camacho/rxfrom/sinks"
	"github.com/arielf-camacho/rxfrom/sources"
)

// Run executes the configured scenarios in order, writing their output to w.
// A scenario ending with an error notification is expected output, not a
// failure of Run.
func Run(ctx context.Context, cfg config.Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, name := range cfg.Scenarios {
		src, err := source(cfg, name)
		if err != nil {
			return err
		}

		log.Debugln("running scenario %s", name)

		sink := sinks.Writer[string](w).Build()
		sub := src.Subscribe(ctx, sink)

		select {
		case <-sub.Done():
		case <-ctx.Done():
			return ctx.Err()
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := sink.Wait(); err != nil {
			log.Debugln("scenario %s ended with error notification: %v", name, err)
		}
	}

	return nil
}

func source(cfg config.Config, name string) (primitives.Observable[string], error) {
	switch name {
	case config.ScenarioArray:
		return sources.From[string](cfg.Names, sources.WithName(name))
	case config.ScenarioResolve:
		p := promise.New(func(resolve func(string), _ func(error)) {
			resolve(cfg.Resolved)
		})
		return sources.From[string](p, sources.WithName(name))
	case config.ScenarioReject:
		p := promise.New(func(_ func(string), reject func(error)) {
			reject(promise.Reason(cfg.Rejected))
		})
		return sources.From[string](p, sources.WithName(name))
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownScenario, name)
	}
}
