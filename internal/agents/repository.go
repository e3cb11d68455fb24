package agents

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

// New creates a new agents repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "agents"),
	}
}

func (r *repo) List(ctx context.Context) ([]Agent, error) {
	if err := r.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	q, args := query.NewBuilder(projection, defaultSort).Build()

	agents, err := repository.QueryMany(ctx, r.db, q, args, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	return agents, nil
}

// ensureSeeded inserts the default roster when the agents table is empty.
// The unique constraint on name plus ON CONFLICT DO NOTHING keeps concurrent
// first requests from double-inserting.
func (r *repo) ensureSeeded(ctx context.Context) error {
	countSQL, countArgs := query.NewBuilder(projection, defaultSort).BuildCount()

	var count int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&count); err != nil {
		return fmt.Errorf("count agents: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		for _, seed := range Defaults {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO agents (name, role) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
				seed.Name, seed.Role,
			)
			if err != nil {
				return struct{}{}, fmt.Errorf("seed agent %s: %w", seed.Name, err)
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("default agents seeded", "count", len(Defaults))
	return nil
}
