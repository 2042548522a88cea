// Package workers provides the execution primitives of the sync core:
// deferred results ([Future], [Promise]), a bounded [Pool] for network round
// trips, a serializing [Queue] for cache mutations, and the [Workers]
// aggregate that runs long-lived background loops.
package workers

import "context"

// Worker is a long-lived background loop. Run blocks until ctx is done.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (w *ticker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
