package connectors

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a new connectors repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "connectors"),
	}
}

func (r *repo) List(ctx context.Context) ([]Connector, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	connectors, err := repository.QueryMany(ctx, r.db, q, args, scanConnector)
	if err != nil {
		return nil, fmt.Errorf("query connectors: %w", err)
	}
	return connectors, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Connector, error) {
	q := `
		INSERT INTO connectors (app_id, provider, config)
		VALUES ($1, $2, COALESCE($3, '{}'::jsonb))
		RETURNING id, app_id, provider, config, created_at`

	c, err := repository.QueryOne(ctx, r.db, q,
		[]any{cmd.AppID, cmd.Provider, cmd.Config}, scanConnector)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}

	r.logger.Info("connector created", "id", c.ID, "provider", c.Provider)
	return &c, nil
}
