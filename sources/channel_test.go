package sources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/rxfrom/helpers"
	"github.com/arielf-camacho/rxfrom/primitives"
	"github.com/arielf-camacho/rxfrom/sinks"
	"github.com/arielf-camacho/rxfrom/sources"
)

func TestChannelSource_Subscribe(t *testing.T) {
	t.Parallel()

	// Given
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 5; i++ {
			ch <- i
		}
	}()
	recorder := helpers.NewRecorder[int]()

	// When
	sources.Channel[int](ch).Subscribe(context.Background(), recorder)

	// Then
	require.NoError(t, recorder.Wait(waitCtx(t)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, recorder.Values())
	notifications := recorder.Notifications()
	assert.Equal(t, primitives.Complete[int](), notifications[len(notifications)-1])
}

func TestChannelSource_UnsubscribeStopsReading(t *testing.T) {
	t.Parallel()

	// Given
	ch := make(chan int)
	got := make(chan int, 2)
	sub := sources.Channel[int](ch).Subscribe(context.Background(), sinks.Handlers[int]{
		Next: func(v int) { got <- v },
	})
	ch <- 1
	assert.Equal(t, 1, <-got)

	// When
	sub.Unsubscribe()

	// Then
	<-sub.Done()
	select {
	case ch <- 2:
		// The reader may still be parked on the channel; the value must be dropped.
	default:
	}
	assert.Empty(t, got)
	assert.True(t, sub.Closed())
}

func TestOutlet(t *testing.T) {
	t.Parallel()

	// Given
	sink := sinks.NewChannelSink[string](sinks.WithBufferSizeForChannel[string](4))
	sources.Slice([]string{"a", "b"}).Subscribe(context.Background(), sink)
	recorder := helpers.NewRecorder[primitives.Notification[string]]()

	// When
	sources.Outlet[primitives.Notification[string]](sink).Subscribe(context.Background(), recorder)

	// Then
	require.NoError(t, recorder.Wait(waitCtx(t)))
	assert.Equal(t, []primitives.Notification[string]{
		primitives.Next("a"), primitives.Next("b"), primitives.Complete[string](),
	}, recorder.Values())
}
