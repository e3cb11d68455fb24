package runner

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for executing the scripted task sequence.
type System interface {
	Execute(ctx context.Context, cmd ExecuteCommand) error
}

// RunStore persists run rows produced by the sequence.
type RunStore interface {
	Insert(ctx context.Context, taskID *uuid.UUID, model, status string, logs []byte) (*Run, error)
}
