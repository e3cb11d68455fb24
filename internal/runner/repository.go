package runner

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/doreish/mission-control/pkg/repository"
	"github.com/google/uuid"
)

type runRepo struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewRunStore creates a Postgres-backed run store.
func NewRunStore(db *sql.DB, logger *slog.Logger) RunStore {
	return &runRepo{
		db:     db,
		logger: logger.With("system", "runs"),
	}
}

func (r *runRepo) Insert(ctx context.Context, taskID *uuid.UUID, model, status string, logs []byte) (*Run, error) {
	q := `
		INSERT INTO runs (task_id, model, status, logs)
		VALUES ($1, $2, $3, COALESCE($4, '{}'::jsonb))
		RETURNING id, task_id, model, status, logs, created_at`

	run, err := repository.QueryOne(ctx, r.db, q,
		[]any{taskID, model, status, logs}, scanRun)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	r.logger.Info("run recorded", "id", run.ID, "status", run.Status)
	return &run, nil
}

func scanRun(s repository.Scanner) (Run, error) {
	var r Run
	err := s.Scan(&r.ID, &r.TaskID, &r.Model, &r.Status, &r.Logs, &r.CreatedAt)
	return r, err
}
