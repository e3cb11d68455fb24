package tasks

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for task storage and lifecycle operations.
type System interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, cmd CreateCommand) (*Task, error)
	Find(ctx context.Context, id uuid.UUID) (*Task, error)

	// SetStatus moves a task to the given status and refreshes updated_at.
	SetStatus(ctx context.Context, id uuid.UUID, status Status) error
}
