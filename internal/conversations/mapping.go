package conversations

import (
	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
)

var conversationProjection = query.
	NewProjectionMap("public", "conversations", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("is_default", "IsDefault").
	Project("created_at", "CreatedAt")

var messageProjection = query.
	NewProjectionMap("public", "messages", "m").
	Project("id", "ID").
	Project("conversation_id", "ConversationID").
	Project("sender", "Sender").
	Project("role", "Role").
	Project("content", "Content").
	Project("thread_id", "ThreadID").
	Project("logs", "Logs").
	Project("created_at", "CreatedAt")

var (
	conversationSort = query.SortField{Field: "CreatedAt"}
	messageSort      = query.SortField{Field: "CreatedAt"}
	eventSort        = query.SortField{Field: "CreatedAt", Descending: true}
)

func scanConversation(s repository.Scanner) (Conversation, error) {
	var c Conversation
	err := s.Scan(&c.ID, &c.Name, &c.IsDefault, &c.CreatedAt)
	return c, err
}

func scanMessage(s repository.Scanner) (Message, error) {
	var m Message
	err := s.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Role, &m.Content, &m.ThreadID, &m.Logs, &m.CreatedAt)
	return m, err
}
