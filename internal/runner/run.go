// Package runner executes the scripted multi-agent task sequence: it moves a
// task through its lifecycle while narrating progress into the default
// conversation and recording a run row.
package runner

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultModel is recorded on runs produced by the scripted sequence.
const DefaultModel = "openai"

// Run captures a single execution of the task sequence.
type Run struct {
	ID        uuid.UUID       `json:"id"`
	TaskID    *uuid.UUID      `json:"task_id"`
	Model     string          `json:"model"`
	Status    string          `json:"status"`
	Logs      json.RawMessage `json:"logs"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExecuteCommand contains the data required to start a run. Summary, when
// set, replaces the generated closing message and run log summary.
type ExecuteCommand struct {
	TaskID  *uuid.UUID `json:"task_id"`
	Summary string     `json:"summary"`
}
