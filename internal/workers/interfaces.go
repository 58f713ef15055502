// Package workers provides background workers of the API server.
// A worker runs until its context is cancelled; [Workers] runs a set of
// them and waits for all to stop.
package workers

import "context"

// Worker is implemented by every background worker. Run blocks until ctx
// is done.
type Worker interface {
	Run(ctx context.Context)
}
