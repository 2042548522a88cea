package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromise_ResolveOnce(t *testing.T) {
	p := NewPromise[int]()

	assert.True(t, p.Resolve(1))
	assert.False(t, p.Resolve(2))
	assert.False(t, p.Reject(errors.New("late")))

	v, err := p.Future().Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestPromise_Reject(t *testing.T) {
	p := NewPromise[string]()
	boom := errors.New("boom")
	p.Reject(boom)

	_, err := p.Future().Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFuture_AwaitHonoursContext(t *testing.T) {
	p := NewPromise[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Future().Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFuture_DoneClosedOnResolve(t *testing.T) {
	p := NewPromise[int]()
	select {
	case <-p.Future().Done():
		t.Fatal("done before resolve")
	default:
	}

	p.Resolve(5)
	<-p.Future().Done()
}

func TestResolvedAndFailed(t *testing.T) {
	v, err := Resolved(3).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = Failed[int](ErrQueueClosed).Await(context.Background())
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestAsync_ResolvesAndRecovers(t *testing.T) {
	ctx := context.Background()

	v, err := Async(ctx, func(context.Context) (int, error) { return 42, nil }).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Async(ctx, func(context.Context) (int, error) { panic("boom") }).Await(ctx)
	assert.ErrorIs(t, err, ErrTaskPanicked)
}
