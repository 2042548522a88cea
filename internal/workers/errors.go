package workers

import "errors"

var (
	// ErrQueueClosed is returned by Do after Close.
	ErrQueueClosed = errors.New("queue is closed")
	// ErrTaskPanicked wraps a recovered panic of a task.
	ErrTaskPanicked = errors.New("task panicked")
)
