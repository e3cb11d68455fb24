package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a new tasks repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "tasks"),
	}
}

func (r *repo) List(ctx context.Context) ([]Task, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	tasks, err := repository.QueryMany(ctx, r.db, q, args, scanTask)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return tasks, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Task, error) {
	priority := cmd.Priority
	if priority == 0 {
		priority = DefaultPriority
	}

	q := `
		INSERT INTO tasks (app_id, agent_id, type, input, priority)
		VALUES ($1, $2, $3, COALESCE($4, '{}'::jsonb), $5)
		RETURNING id, app_id, agent_id, type, input, priority, status, created_at, updated_at`

	t, err := repository.QueryOne(ctx, r.db, q,
		[]any{cmd.AppID, cmd.AgentID, cmd.Type, cmd.Input, priority}, scanTask)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	r.logger.Info("task created", "id", t.ID, "type", t.Type, "priority", t.Priority)
	return &t, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Task, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTask)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, nil)
	}
	return &t, nil
}

func (r *repo) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	err := repository.ExecExpectOne(ctx, r.db,
		"UPDATE tasks SET status = $1, updated_at = now() WHERE id = $2",
		status, id,
	)
	if err != nil {
		return repository.MapError(err, ErrNotFound, nil)
	}

	r.logger.Info("task status updated", "id", id, "status", status)
	return nil
}
