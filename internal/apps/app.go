// Package apps provides the domain system for managed applications.
package apps

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// App represents a managed application and its deployment metadata.
// Stack is an opaque structured blob interpreted only by clients.
type App struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Domain    *string         `json:"domain"`
	RepoURL   *string         `json:"repo_url"`
	Stack     json.RawMessage `json:"stack"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateCommand contains the data required to create a new app.
type CreateCommand struct {
	Name    string          `json:"name"`
	Domain  *string         `json:"domain"`
	RepoURL *string         `json:"repo_url"`
	Stack   json.RawMessage `json:"stack"`
}
