package apps

import "context"

// System defines the interface for app storage and retrieval operations.
type System interface {
	List(ctx context.Context) ([]App, error)
	Create(ctx context.Context, cmd CreateCommand) (*App, error)
}
