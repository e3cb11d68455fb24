package conversations

import (
	"context"
	"database/sql"
	"errors"
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

// New creates a new conversations repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "conversations"),
	}
}

func (r *repo) Default(ctx context.Context) (*Conversation, error) {
	c, err := r.earliest(ctx)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query default conversation: %w", err)
	}

	// at most one row can carry is_default under the partial unique index
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO conversations (name, is_default)
		VALUES ($1, true)
		ON CONFLICT (is_default) WHERE is_default DO NOTHING`,
		DefaultName,
	)
	if err != nil {
		return nil, fmt.Errorf("create default conversation: %w", err)
	}

	c, err = r.earliest(ctx)
	if err != nil {
		return nil, fmt.Errorf("query default conversation: %w", err)
	}

	r.logger.Info("default conversation created", "id", c.ID, "name", c.Name)
	return c, nil
}

func (r *repo) Post(ctx context.Context, cmd PostCommand) (*Message, error) {
	conversationID, err := r.resolveConversation(ctx, cmd.ConversationID)
	if err != nil {
		return nil, err
	}

	sender := cmd.Sender
	if sender == "" {
		sender = DefaultSender
	}
	role := cmd.Role
	if role == "" {
		role = DefaultRole
	}

	q := `
		INSERT INTO messages (conversation_id, sender, role, content, thread_id, logs)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, conversation_id, sender, role, content, thread_id, logs, created_at`

	m, err := repository.QueryOne(ctx, r.db, q,
		[]any{conversationID, sender, role, cmd.Content, cmd.ThreadID, cmd.Logs}, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}

	return &m, nil
}

func (r *repo) Messages(ctx context.Context, filter MessageFilter) ([]Message, uuid.UUID, error) {
	conversationID, err := r.resolveConversation(ctx, filter.ConversationID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	qb := query.NewBuilder(messageProjection, messageSort).
		WhereEquals("ConversationID", conversationID)

	if filter.ThreadID != nil {
		qb.WhereEquals("ThreadID", *filter.ThreadID)
	} else if filter.TopLevel {
		qb.WhereNull("ThreadID")
	}

	q, args := qb.Build()

	messages, err := repository.QueryMany(ctx, r.db, q, args, scanMessage)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("query messages: %w", err)
	}
	return messages, conversationID, nil
}

func (r *repo) GithubEvents(ctx context.Context, limit int) ([]Message, error) {
	convo, err := r.Default(ctx)
	if err != nil {
		return nil, err
	}

	q, args := query.NewBuilder(messageProjection, eventSort).
		WhereEquals("ConversationID", convo.ID).
		WhereEquals("Sender", DefaultSender).
		WherePrefix("Content", EventPrefix).
		Limit(limit).
		Build()

	events, err := repository.QueryMany(ctx, r.db, q, args, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("query github events: %w", err)
	}
	return events, nil
}

func (r *repo) earliest(ctx context.Context) (*Conversation, error) {
	q, args := query.NewBuilder(conversationProjection, conversationSort).
		Limit(1).
		Build()

	c, err := repository.QueryOne(ctx, r.db, q, args, scanConversation)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) resolveConversation(ctx context.Context, id *uuid.UUID) (uuid.UUID, error) {
	if id != nil {
		return *id, nil
	}

	convo, err := r.Default(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return convo.ID, nil
}
