package workers

import (
	"context"
	"sync"
)

// Queue is a serializing execution context: tasks run one at a time on a
// single goroutine, in submission order. Tasks must not wait on the queue
// they run on.
type Queue struct {
	tasks chan func()

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewQueue starts the queue goroutine.
func NewQueue() *Queue {
	q := &Queue{tasks: make(chan func())}
	q.wg.Go(func() {
		for task := range q.tasks {
			task()
		}
	})
	return q
}

// Close stops accepting tasks and waits for the running one to finish.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()

	q.wg.Wait()
}

// Do runs fn on q and waits for its result.
func Do[T any](ctx context.Context, q *Queue, fn func() (T, error)) (T, error) {
	promise := NewPromise[T]()
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				promise.Reject(ErrTaskPanicked)
			}
		}()
		v, err := fn()
		if err != nil {
			promise.Reject(err)
			return
		}
		promise.Resolve(v)
	}

	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		var zero T
		return zero, ErrQueueClosed
	}
	select {
	case q.tasks <- task:
		q.mu.RUnlock()
	case <-ctx.Done():
		q.mu.RUnlock()
		var zero T
		return zero, ctx.Err()
	}

	return promise.Future().Await(ctx)
}

// Run is Do for tasks without a result.
func Run(ctx context.Context, q *Queue, fn func() error) error {
	_, err := Do(ctx, q, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
