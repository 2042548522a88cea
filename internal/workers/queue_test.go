package workers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_Do_ReturnsResult(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	v, err := Do(context.Background(), q, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestQueue_Run_PropagatesError(t *testing.T) {
	q := NewQueue()
	defer q.Close()
	boom := errors.New("boom")

	err := Run(context.Background(), q, func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestQueue_SerializesTasks(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	// counter is only touched inside queue tasks; the race detector would
	// flag concurrent execution
	counter := 0
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			_ = Run(context.Background(), q, func() error {
				counter++
				return nil
			})
		})
	}
	wg.Wait()

	v, err := Do(context.Background(), q, func() (int, error) { return counter, nil })
	require.NoError(t, err)
	assert.Equal(t, 50, v)
}

func TestQueue_ClosedRejects(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close()

	_, err := Do(context.Background(), q, func() (int, error) { return 1, nil })
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueue_RecoversPanic(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	_, err := Do(context.Background(), q, func() (int, error) { panic("bad") })
	assert.ErrorIs(t, err, ErrTaskPanicked)

	v, err := Do(context.Background(), q, func() (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
