// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/session"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately; the worker
// runs until ctx is cancelled or Stop is called. Stop blocks until the
// goroutine has exited and is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// IdleLocker is the part of [session.Session] the auto-lock worker needs.
type IdleLocker interface {
	State() session.State
	IdleFor() time.Duration
	Lock()
}
