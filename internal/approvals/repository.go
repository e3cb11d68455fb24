package approvals

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

// New creates a new approvals repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "approvals"),
	}
}

func (r *repo) List(ctx context.Context) ([]Approval, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	approvals, err := repository.QueryMany(ctx, r.db, q, args, scanApproval)
	if err != nil {
		return nil, fmt.Errorf("query approvals: %w", err)
	}
	return approvals, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Approval, error) {
	requestedBy := cmd.RequestedBy
	if requestedBy == "" {
		requestedBy = DefaultRequestedBy
	}

	q := `
		INSERT INTO approvals (task_id, action, requested_by)
		VALUES ($1, $2, $3)
		RETURNING id, task_id, action, requested_by, status, approved_by, decided_at, created_at`

	a, err := repository.QueryOne(ctx, r.db, q,
		[]any{cmd.TaskID, cmd.Action, requestedBy}, scanApproval)
	if err != nil {
		return nil, fmt.Errorf("create approval: %w", err)
	}

	r.logger.Info("approval created", "id", a.ID, "action", a.Action)
	return &a, nil
}

func (r *repo) Decide(ctx context.Context, id uuid.UUID, cmd DecideCommand) (*Approval, error) {
	approvedBy := cmd.ApprovedBy
	if approvedBy == "" {
		approvedBy = DefaultApprovedBy
	}

	q := `
		UPDATE approvals
		SET status = $1, approved_by = $2, decided_at = now()
		WHERE id = $3
		RETURNING id, task_id, action, requested_by, status, approved_by, decided_at, created_at`

	a, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Status, approvedBy, id}, scanApproval)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, nil)
	}

	r.logger.Info("approval decided", "id", a.ID, "status", a.Status, "approved_by", approvedBy)
	return &a, nil
}
