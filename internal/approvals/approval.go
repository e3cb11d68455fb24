// Package approvals provides the domain system for human approval requests
// raised against tasks.
package approvals

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the decision state of an approval.
type Status string

// Approval status constants.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Defaults applied when requests omit the requesting or deciding party.
const (
	DefaultRequestedBy = "System"
	DefaultApprovedBy  = "Human"
)

// Approval represents a request for a decision on a proposed action.
// DecidedAt reflects the most recent decision; deciding again overwrites it.
type Approval struct {
	ID          uuid.UUID  `json:"id"`
	TaskID      *uuid.UUID `json:"task_id"`
	Action      string     `json:"action"`
	RequestedBy string     `json:"requested_by"`
	Status      Status     `json:"status"`
	ApprovedBy  *string    `json:"approved_by"`
	DecidedAt   *time.Time `json:"decided_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateCommand contains the data required to create a new approval.
type CreateCommand struct {
	TaskID      *uuid.UUID `json:"task_id"`
	Action      string     `json:"action"`
	RequestedBy string     `json:"requested_by"`
}

// DecideCommand contains the data required to record a decision.
type DecideCommand struct {
	Status     Status `json:"status"`
	ApprovedBy string `json:"approved_by"`
}
