// Package workers manages the watch daemon's background workers.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a background job. Run starts it without blocking; the worker
// keeps running until ctx is cancelled or Stop is called. Stop blocks until
// the worker has exited and is safe to call more than once.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
