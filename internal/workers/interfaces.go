// Package workers runs the background jobs of the server next to its
// transports. Each worker blocks in Run until its context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must return once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
