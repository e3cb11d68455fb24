package main

import (
	"context"
	"database/sql"

	"github.com/doreish/mission-control/internal/agents"
)

func init() {
	registerSeeder(&AgentSeeder{})
}

// AgentSeeder implements Seeder for the fixed agent roster. Existing agents
// are left untouched, so repeated runs are safe.
type AgentSeeder struct{}

// Name returns "agents" as the seeder identifier.
func (s *AgentSeeder) Name() string {
	return "agents"
}

// Description returns a human-readable description of this seeder.
func (s *AgentSeeder) Description() string {
	return "Seeds the fixed roster of mission-control agents"
}

// Seed inserts the default roster, skipping agents that already exist.
func (s *AgentSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	const query = `
		INSERT INTO agents (name, role)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`

	for _, agent := range agents.Defaults {
		if _, err := tx.ExecContext(ctx, query, agent.Name, agent.Role); err != nil {
			return err
		}
	}

	return nil
}
