package main

import (
	"context"
	"database/sql"

	"github.com/doreish/mission-control/internal/conversations"
)

func init() {
	registerSeeder(&ConversationSeeder{})
}

// ConversationSeeder implements Seeder for the default conversation. At most
// one conversation can be flagged as default, so repeated runs are safe.
type ConversationSeeder struct{}

// Name returns "conversation" as the seeder identifier.
func (s *ConversationSeeder) Name() string {
	return "conversation"
}

// Description returns a human-readable description of this seeder.
func (s *ConversationSeeder) Description() string {
	return "Seeds the default conversation"
}

// Seed inserts the default conversation unless one already exists.
func (s *ConversationSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	const query = `
		INSERT INTO conversations (name, is_default)
		VALUES ($1, true)
		ON CONFLICT (is_default) WHERE is_default DO NOTHING`

	_, err := tx.ExecContext(ctx, query, conversations.DefaultName)
	return err
}
