package sinks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/rxfrom/helpers"
	"github.com/arielf-camacho/rxfrom/primitives"
	"github.com/arielf-camacho/rxfrom/promise"
	"github.com/arielf-camacho/rxfrom/sinks"
	"github.com/arielf-camacho/rxfrom/sources"
)

func TestChannelSink(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		source   primitives.Observable[int]
		expected []primitives.Notification[int]
	}{
		"values-then-complete": {
			source: sources.Slice([]int{1, 2, 3}),
			expected: []primitives.Notification[int]{
				primitives.Next(1), primitives.Next(2), primitives.Next(3), primitives.Complete[int](),
			},
		},
		"error": {
			source: sources.Promise(promise.Reject[int](assert.AnError)),
			expected: []primitives.Notification[int]{
				primitives.Error[int](assert.AnError),
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			sink := sinks.NewChannelSink[int]()

			// When
			go c.source.Subscribe(context.Background(), sink)
			collected := helpers.Collect(context.Background(), sink.Out())

			// Then
			assert.Equal(t, c.expected, collected)
		})
	}
}

func TestChannelSink_CancelledContextDrops(t *testing.T) {
	t.Parallel()

	// Given
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := sinks.NewChannelSink(sinks.WithContextForChannel[int](ctx))

	// When
	sources.Slice([]int{1, 2}).Subscribe(context.Background(), sink)

	// Then
	collected := helpers.Collect(context.Background(), sink.Out())
	assert.Nil(t, collected)
}
