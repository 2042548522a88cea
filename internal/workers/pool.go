package workers

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool runs tasks on at most size goroutines at a time. Submitting never
// blocks the caller.
type Pool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewPool creates a pool. A non-positive size is treated as 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size))}
}

// Go runs fn on p and returns its deferred result. If ctx is done before a
// slot frees up, fn is not run and the future fails with ctx.Err().
func Go[T any](ctx context.Context, p *Pool, fn func(ctx context.Context) (T, error)) *Future[T] {
	promise := NewPromise[T]()

	p.wg.Go(func() {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			promise.Reject(fmt.Errorf("waiting for worker: %w", err))
			return
		}
		defer p.sem.Release(1)

		defer func() {
			if r := recover(); r != nil {
				promise.Reject(fmt.Errorf("%w: %v", ErrTaskPanicked, r))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			promise.Reject(err)
			return
		}
		promise.Resolve(v)
	})

	return promise.Future()
}

// Wait blocks until every submitted task has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
