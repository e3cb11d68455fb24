package approvals

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for approval storage and decision operations.
type System interface {
	List(ctx context.Context) ([]Approval, error)
	Create(ctx context.Context, cmd CreateCommand) (*Approval, error)

	// Decide records a decision unconditionally; a previously decided
	// approval can be re-decided, overwriting the earlier decision.
	Decide(ctx context.Context, id uuid.UUID, cmd DecideCommand) (*Approval, error)
}
