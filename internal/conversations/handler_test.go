package conversations_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/doreish/mission-control/internal/conversations"
	"github.com/google/uuid"
)

type stubSystem struct {
	convo      conversations.Conversation
	messages   []conversations.Message
	filter     conversations.MessageFilter
	eventLimit int
	posted     []conversations.PostCommand
}

func (s *stubSystem) Default(ctx context.Context) (*conversations.Conversation, error) {
	return &s.convo, nil
}

func (s *stubSystem) Post(ctx context.Context, cmd conversations.PostCommand) (*conversations.Message, error) {
	s.posted = append(s.posted, cmd)

	sender := cmd.Sender
	if sender == "" {
		sender = conversations.DefaultSender
	}
	role := cmd.Role
	if role == "" {
		role = conversations.DefaultRole
	}

	return &conversations.Message{
		ID:             uuid.New(),
		ConversationID: s.convo.ID,
		Sender:         sender,
		Role:           role,
		Content:        cmd.Content,
		ThreadID:       cmd.ThreadID,
	}, nil
}

func (s *stubSystem) Messages(ctx context.Context, filter conversations.MessageFilter) ([]conversations.Message, uuid.UUID, error) {
	s.filter = filter
	return s.messages, s.convo.ID, nil
}

func (s *stubSystem) GithubEvents(ctx context.Context, limit int) ([]conversations.Message, error) {
	s.eventLimit = limit
	return s.messages, nil
}

func newStub() *stubSystem {
	return &stubSystem{
		convo: conversations.Conversation{
			ID:        uuid.New(),
			Name:      conversations.DefaultName,
			IsDefault: true,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefault_WrapsSingleConversation(t *testing.T) {
	sys := newStub()
	h := conversations.NewHandler(sys, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/conversations", nil)
	w := httptest.NewRecorder()

	h.Default(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result struct {
		Data []conversations.Conversation `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	if len(result.Data) != 1 {
		t.Fatalf("len(data) = %d, want 1", len(result.Data))
	}

	if result.Data[0].Name != conversations.DefaultName {
		t.Errorf("name = %q, want default conversation", result.Data[0].Name)
	}
}

func TestMessages_FilterParsing(t *testing.T) {
	convoID := uuid.New()
	threadID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantConvo  *uuid.UUID
		wantThread *uuid.UUID
	}{
		{"no filters", "", nil, nil},
		{"conversation filter", "?conversation_id=" + convoID.String(), &convoID, nil},
		{"thread filter", "?thread_id=" + threadID.String(), nil, &threadID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newStub()
			h := conversations.NewHandler(sys, discardLogger())

			req := httptest.NewRequest(http.MethodGet, "/messages"+tt.query, nil)
			w := httptest.NewRecorder()

			h.Messages(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			if (sys.filter.ConversationID == nil) != (tt.wantConvo == nil) {
				t.Errorf("ConversationID = %v, want %v", sys.filter.ConversationID, tt.wantConvo)
			} else if tt.wantConvo != nil && *sys.filter.ConversationID != *tt.wantConvo {
				t.Errorf("ConversationID = %v, want %v", sys.filter.ConversationID, tt.wantConvo)
			}

			if (sys.filter.ThreadID == nil) != (tt.wantThread == nil) {
				t.Errorf("ThreadID = %v, want %v", sys.filter.ThreadID, tt.wantThread)
			}
		})
	}
}

func TestMessages_ResponseIncludesConversationID(t *testing.T) {
	sys := newStub()
	h := conversations.NewHandler(sys, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/messages", nil)
	w := httptest.NewRecorder()

	h.Messages(w, req)

	var result struct {
		Data           []conversations.Message `json:"data"`
		ConversationID uuid.UUID               `json:"conversation_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	if result.ConversationID != sys.convo.ID {
		t.Errorf("conversation_id = %v, want %v", result.ConversationID, sys.convo.ID)
	}
}

func TestMessages_InvalidFilter(t *testing.T) {
	h := conversations.NewHandler(newStub(), discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/messages?conversation_id=nope", nil)
	w := httptest.NewRecorder()

	h.Messages(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestPost_DefaultsApplied(t *testing.T) {
	sys := newStub()
	h := conversations.NewHandler(sys, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(`{"content":"hello"}`))
	w := httptest.NewRecorder()

	h.Post(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result struct {
		Data conversations.Message `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	if result.Data.Sender != conversations.DefaultSender {
		t.Errorf("sender = %q, want %q", result.Data.Sender, conversations.DefaultSender)
	}

	if result.Data.Role != conversations.DefaultRole {
		t.Errorf("role = %q, want %q", result.Data.Role, conversations.DefaultRole)
	}
}

func TestGithubEvents_UsesFixedLimit(t *testing.T) {
	sys := newStub()
	h := conversations.NewHandler(sys, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/events/github", nil)
	w := httptest.NewRecorder()

	h.GithubEvents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	if sys.eventLimit != 20 {
		t.Errorf("limit = %d, want 20", sys.eventLimit)
	}
}
