// Package connectors manages provider integrations: stored connector
// records, authenticated proxy calls to the Vercel and GitHub APIs, and the
// signed GitHub webhook receiver.
package connectors

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Connector links an app to an external provider with an opaque config blob.
type Connector struct {
	ID        uuid.UUID       `json:"id"`
	AppID     *uuid.UUID      `json:"app_id"`
	Provider  string          `json:"provider"`
	Config    json.RawMessage `json:"config"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateCommand contains the data required to register a connector.
type CreateCommand struct {
	AppID    *uuid.UUID      `json:"app_id"`
	Provider string          `json:"provider"`
	Config   json.RawMessage `json:"config"`
}
