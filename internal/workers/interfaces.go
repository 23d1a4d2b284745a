// Package workers provides the background machinery of the secure store:
// the per-key write queue that persists entries asynchronously, and a
// Workers aggregate that stops every background worker on shutdown.
package workers

import "context"

// Worker is the interface implemented by every background worker that has
// to be drained on shutdown.
//
// Stop blocks until the worker has finished its in-flight work or ctx is
// done, whichever comes first.
type Worker interface {
	Stop(ctx context.Context) error
}

// Job is a unit of work executed by [KeyedQueue].
type Job func(ctx context.Context) error
