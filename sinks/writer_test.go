package sinks_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/rxfrom/promise"
	"github.com/arielf-camacho/rxfrom/sinks"
	"github.com/arielf-camacho/rxfrom/sources"
)

func TestWriterSink(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		run         func(sink *sinks.WriterSink[string])
		expected    string
		expectedErr string
	}{
		"array": {
			run: func(sink *sinks.WriterSink[string]) {
				sources.Slice([]string{"Chenchu Lakshmi", "Mahathi", "Mahi Chenchith"}).
					Subscribe(context.Background(), sink)
			},
			expected: "Chenchu Lakshmi\nMahathi\nMahi Chenchith\nCompleted!\n",
		},
		"resolved-promise": {
			run: func(sink *sinks.WriterSink[string]) {
				sources.Promise(promise.Resolve("resolved")).Subscribe(context.Background(), sink)
			},
			expected: "resolved\nCompleted!\n",
		},
		"rejected-promise": {
			run: func(sink *sinks.WriterSink[string]) {
				sources.Promise(promise.Reject[string](promise.Reason("Rejected!"))).
					Subscribe(context.Background(), sink)
			},
			expected:    "Error: Rejected!\n",
			expectedErr: "Rejected!",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			out := &bytes.Buffer{}
			sink := sinks.Writer[string](out).Build()

			// When
			c.run(sink)
			err := sink.Wait()

			// Then
			assert.Equal(t, c.expected, out.String())
			if c.expectedErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, c.expectedErr, err.Error())
			}
		})
	}
}

func TestWriterSink_Format(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	sink := sinks.Writer[int](out).
		Format(func(v int) string { return "#" + strconv.Itoa(v) }).
		Build()

	sources.Slice([]int{1, 2}).Subscribe(context.Background(), sink)

	require.NoError(t, sink.Wait())
	assert.Equal(t, "#1\n#2\nCompleted!\n", out.String())
}
