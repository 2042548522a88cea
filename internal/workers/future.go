// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
)

// Future is a deferred result. It is resolved exactly once, either with a
// value or with an error; later resolutions are ignored.
type Future[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Await blocks until the future is resolved or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) complete(v T, err error) bool {
	completed := false
	f.once.Do(func() {
		f.val, f.err = v, err
		close(f.done)
		completed = true
	})
	return completed
}

// Promise is the write side of a Future.
type Promise[T any] struct {
	future *Future[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{future: newFuture[T]()}
}

func (p *Promise[T]) Future() *Future[T] {
	return p.future
}

// Resolve completes the future with v. It reports false if the future was
// already resolved.
func (p *Promise[T]) Resolve(v T) bool {
	return p.future.complete(v, nil)
}

// Reject completes the future with err.
func (p *Promise[T]) Reject(err error) bool {
	var zero T
	return p.future.complete(zero, err)
}

// Resolved returns an already completed future.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

// Failed returns a future already completed with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

// Async runs fn on its own goroutine and returns its deferred result. It is
// meant for orchestration that only waits on other futures; network work
// belongs on a Pool so that waiting tasks never hold a pool slot.
func Async[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	promise := NewPromise[T]()

	go func() {
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
	}()

	return promise.Future()
}
