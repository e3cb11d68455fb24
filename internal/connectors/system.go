package connectors

import "context"

// System defines the interface for connector storage operations.
type System interface {
	List(ctx context.Context) ([]Connector, error)
	Create(ctx context.Context, cmd CreateCommand) (*Connector, error)
}
