package apps

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

// New creates a new apps repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "apps"),
	}
}

func (r *repo) List(ctx context.Context) ([]App, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	apps, err := repository.QueryMany(ctx, r.db, q, args, scanApp)
	if err != nil {
		return nil, fmt.Errorf("query apps: %w", err)
	}
	return apps, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*App, error) {
	q := `
		INSERT INTO apps (name, domain, repo_url, stack)
		VALUES ($1, $2, $3, COALESCE($4, '{}'::jsonb))
		RETURNING id, name, domain, repo_url, stack, created_at`

	a, err := repository.QueryOne(ctx, r.db, q,
		[]any{cmd.Name, cmd.Domain, cmd.RepoURL, cmd.Stack}, scanApp)
	if err != nil {
		return nil, fmt.Errorf("create app: %w", err)
	}

	r.logger.Info("app created", "id", a.ID, "name", a.Name)
	return &a, nil
}
