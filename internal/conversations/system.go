package conversations

import (
	"context"

	"github.com/google/uuid"
)

// MessageFilter contains optional filtering criteria for message queries.
type MessageFilter struct {
	ConversationID *uuid.UUID
	ThreadID       *uuid.UUID
	TopLevel       bool
}

// System defines the interface for conversation and message operations.
type System interface {
	// Default returns the earliest-created conversation, creating the
	// default one when none exists.
	Default(ctx context.Context) (*Conversation, error)

	// Post appends a message, targeting the default conversation when the
	// command does not name one.
	Post(ctx context.Context, cmd PostCommand) (*Message, error)

	// Messages lists messages in creation order. A nil filter conversation
	// targets the default conversation.
	Messages(ctx context.Context, filter MessageFilter) ([]Message, uuid.UUID, error)

	// GithubEvents returns the most recent webhook-produced System messages
	// in the default conversation, newest first.
	GithubEvents(ctx context.Context, limit int) ([]Message, error)
}
