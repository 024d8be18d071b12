package sources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/rxfrom/helpers"
	"github.com/arielf-camacho/rxfrom/primitives"
	"github.com/arielf-camacho/rxfrom/sources"
)

func TestSingleSource_Subscribe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cases := map[string]struct {
		get      func() (int, error)
		ctx      func() context.Context
		expected []primitives.Notification[int]
	}{
		"emits-single-value": {
			get: func() (int, error) { return 42, nil },
			expected: []primitives.Notification[int]{
				primitives.Next(42), primitives.Complete[int](),
			},
		},
		"error-terminates": {
			get: func() (int, error) { return 0, assert.AnError },
			expected: []primitives.Notification[int]{
				primitives.Error[int](assert.AnError),
			},
		},
		"cancelled-context": {
			get: func() (int, error) { return 42, nil },
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(ctx)
				cancel()
				return ctx
			},
			expected: []primitives.Notification[int]{},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			subCtx := ctx
			if c.ctx != nil {
				subCtx = c.ctx()
			}
			recorder := helpers.NewRecorder[int]()

			// When
			sources.Single(c.get).Subscribe(subCtx, recorder)

			// Then
			assert.Equal(t, c.expected, recorder.Notifications())
		})
	}

	t.Run("get-runs-per-subscription", func(t *testing.T) {
		t.Parallel()

		calls := 0
		source := sources.Single(func() (int, error) {
			calls++
			return calls, nil
		})

		first := helpers.NewRecorder[int]()
		second := helpers.NewRecorder[int]()
		source.Subscribe(ctx, first)
		source.Subscribe(ctx, second)

		assert.Equal(t, []int{1}, first.Values())
		assert.Equal(t, []int{2}, second.Values())
	})

	t.Run("panics-on-nil-get", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { sources.Single[int](nil) })
	})
}
