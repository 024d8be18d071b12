package sources_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/rxfrom/helpers"
	"github.com/arielf-camacho/rxfrom/primitives"
	"github.com/arielf-camacho/rxfrom/promise"
	"github.com/arielf-camacho/rxfrom/sources"
)

const waitFor = time.Second

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	t.Cleanup(cancel)
	return ctx
}

func TestPromiseSource_Subscribe(t *testing.T) {
	t.Parallel()

	rejection := promise.Reason("Rejected!")

	cases := map[string]struct {
		subject  func() *promise.Promise[string]
		expected []primitives.Notification[string]
	}{
		"resolved-emits-value-then-completes": {
			subject: func() *promise.Promise[string] {
				return promise.New(func(resolve func(string), _ func(error)) {
					resolve("resolved")
				})
			},
			expected: []primitives.Notification[string]{
				primitives.Next("resolved"),
				primitives.Complete[string](),
			},
		},
		"rejected-emits-reason-unchanged": {
			subject: func() *promise.Promise[string] {
				return promise.Reject[string](rejection)
			},
			expected: []primitives.Notification[string]{
				primitives.Error[string](rejection),
			},
		},
		"settles-later": {
			subject: func() *promise.Promise[string] {
				return promise.Go(context.Background(), func(context.Context) (string, error) {
					time.Sleep(10 * time.Millisecond)
					return "late", nil
				})
			},
			expected: []primitives.Notification[string]{
				primitives.Next("late"),
				primitives.Complete[string](),
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			source := sources.Promise(c.subject())
			recorder := helpers.NewRecorder[string]()

			// When
			sub := source.Subscribe(context.Background(), recorder)

			// Then
			require.NoError(t, recorder.Wait(waitCtx(t)))
			<-sub.Done()
			assert.Equal(t, c.expected, recorder.Notifications())
			assert.True(t, sub.Closed())
		})
	}
}

func TestPromiseSource_DeliversAfterSubscribeReturns(t *testing.T) {
	t.Parallel()

	// Given
	source := sources.Promise(promise.Resolve(1))
	recorder := helpers.NewRecorder[int]()
	release := make(chan struct{})

	// When
	source.Subscribe(context.Background(), observerFunc[int](func(n primitives.Notification[int]) {
		<-release
		n.Accept(recorder)
	}))
	close(release)

	// Then
	require.NoError(t, recorder.Wait(waitCtx(t)))
	assert.Equal(t, []int{1}, recorder.Values())
}

func TestPromiseSource_EverySubscriberSeesTheSameSettlement(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	p := promise.New(func(resolve func(int), _ func(error)) {
		calls++
		resolve(7)
	})
	source := sources.Promise(p)
	<-p.Done()

	// When
	recorders := []*helpers.Recorder[int]{
		helpers.NewRecorder[int](),
		helpers.NewRecorder[int](),
		helpers.NewRecorder[int](),
	}
	for _, r := range recorders {
		source.Subscribe(context.Background(), r)
	}

	// Then
	for _, r := range recorders {
		require.NoError(t, r.Wait(waitCtx(t)))
		assert.Equal(t, []primitives.Notification[int]{
			primitives.Next(7), primitives.Complete[int](),
		}, r.Notifications())
	}
	assert.Equal(t, 1, calls)
}

func TestPromiseSource_UnsubscribeSuppressesDelivery(t *testing.T) {
	t.Parallel()

	// Given
	var resolve func(int)
	p := promise.New(func(r func(int), _ func(error)) { resolve = r })
	recorder := helpers.NewRecorder[int]()
	sub := sources.Promise(p).Subscribe(context.Background(), recorder)

	// When
	sub.Unsubscribe()
	resolve(1)

	// Then
	later := helpers.NewRecorder[int]()
	sources.Promise(p).Subscribe(context.Background(), later)
	require.NoError(t, later.Wait(waitCtx(t)))
	assert.Empty(t, recorder.Notifications())
	assert.True(t, sub.Closed())
}

func TestPromiseSource_HandlerCanWaitOnAnotherPromise(t *testing.T) {
	t.Parallel()

	// Given
	outer := promise.Resolve("outer")
	inner := promise.Resolve(7)
	nested := helpers.NewRecorder[int]()
	nestedErr := make(chan error, 1)
	recorder := helpers.NewRecorder[string]()

	// When
	sources.Promise(outer).Subscribe(context.Background(), observerFunc[string](func(n primitives.Notification[string]) {
		if n.Kind == primitives.NextKind {
			sources.Promise(inner).Subscribe(context.Background(), nested)
			nestedErr <- nested.Wait(waitCtx(t))
		}
		n.Accept(recorder)
	}))

	// Then
	require.NoError(t, recorder.Wait(waitCtx(t)))
	require.NoError(t, <-nestedErr)
	assert.Equal(t, []int{7}, nested.Values())
	assert.Equal(t, []string{"outer"}, recorder.Values())
}

type observerFunc[T any] func(primitives.Notification[T])

func (f observerFunc[T]) OnNext(v T)        { f(primitives.Next(v)) }
func (f observerFunc[T]) OnError(err error) { f(primitives.Error[T](err)) }
func (f observerFunc[T]) OnComplete()       { f(primitives.Complete[T]()) }
