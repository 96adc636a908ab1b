package spawnjoin

import "context"

// Runnable is the body of a worker. Anything implementing it can be spawned
// by a Launcher.
type Runnable interface {
	// Run executes the worker to completion. The returned error is handed
	// back to whoever awaits the worker's Handle.
	Run(ctx context.Context) error
}
