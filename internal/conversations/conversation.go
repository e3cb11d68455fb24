// Package conversations provides the domain system for the chat log: a
// default conversation created lazily on first access, an append-only
// message stream, and one-level threading via a parent message reference.
package conversations

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultName is the name given to the lazily created default conversation.
const DefaultName = "Avengers War Room"

// Default sender and role applied to messages posted without either field.
const (
	DefaultSender = "System"
	DefaultRole   = "agent"
)

// EventPrefix marks System messages produced by the GitHub webhook receiver.
const EventPrefix = "GitHub "

// Conversation is a named container for an ordered sequence of messages.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is a single chat entry. ThreadID, when set, references a top-level
// message in the same conversation. Logs carries an opaque payload blob.
type Message struct {
	ID             uuid.UUID       `json:"id"`
	ConversationID uuid.UUID       `json:"conversation_id"`
	Sender         string          `json:"sender"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	ThreadID       *uuid.UUID      `json:"thread_id"`
	Logs           json.RawMessage `json:"logs,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PostCommand contains the data required to append a message. A nil
// ConversationID targets the default conversation; empty Sender and Role
// fall back to the package defaults.
type PostCommand struct {
	ConversationID *uuid.UUID      `json:"conversation_id"`
	Sender         string          `json:"sender"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	ThreadID       *uuid.UUID      `json:"thread_id"`
	Logs           json.RawMessage `json:"logs,omitempty"`
}
