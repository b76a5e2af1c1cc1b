// Package workers runs the background jobs of the terminal client.
//
// A Worker is started with a context and runs until that context is
// cancelled or Stop is called. Workers groups several of them so the
// application can start and stop them together.
package workers

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Worker is a background job.
//
// Start must not block. Stop blocks until the job has fully exited and is a
// no-op for a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// TodoRefresher reloads the todo list of one owner from the server and
// caches it locally.
type TodoRefresher interface {
	Refresh(ctx context.Context, ownerID string) ([]models.Todo, error)
}
