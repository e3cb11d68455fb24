// Package tasks provides the domain system for work items dispatched to the
// agent roster. Tasks move forward through queued, running, and completed;
// no rollback path is modeled.
package tasks

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a task.
type Status string

// Task status constants. Transitions only move forward.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

// DefaultPriority is applied when a create request omits priority.
const DefaultPriority = 3

// Task represents a unit of work optionally bound to an app and an agent.
// Input is an opaque structured blob interpreted only by clients.
type Task struct {
	ID        uuid.UUID       `json:"id"`
	AppID     *uuid.UUID      `json:"app_id"`
	AgentID   *uuid.UUID      `json:"agent_id"`
	Type      string          `json:"type"`
	Input     json.RawMessage `json:"input"`
	Priority  int             `json:"priority"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateCommand contains the data required to create a new task.
type CreateCommand struct {
	AppID    *uuid.UUID      `json:"app_id"`
	AgentID  *uuid.UUID      `json:"agent_id"`
	Type     string          `json:"type"`
	Input    json.RawMessage `json:"input"`
	Priority int             `json:"priority"`
}
