package agents

import "context"

// System defines the interface for agent roster operations.
type System interface {
	// List returns every agent ordered by name, seeding the default roster
	// first when the table is empty.
	List(ctx context.Context) ([]Agent, error)
}
