package tasks_test

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
	"github.com/doreish/mission-control/internal/tasks"
	"github.com/google/uuid"
)

type stubSystem struct {
	tasks   []tasks.Task
	created *tasks.Task
}

func (s *stubSystem) List(ctx context.Context) ([]tasks.Task, error) {
	return s.tasks, nil
}

func (s *stubSystem) Create(ctx context.Context, cmd tasks.CreateCommand) (*tasks.Task, error) {
	task := &tasks.Task{
		ID:       uuid.New(),
		Type:     cmd.Type,
		Priority: cmd.Priority,
		Status:   tasks.StatusQueued,
	}
	if task.Priority == 0 {
		task.Priority = tasks.DefaultPriority
	}
	s.created = task
	return task, nil
}

func (s *stubSystem) Find(ctx context.Context, id uuid.UUID) (*tasks.Task, error) {
	return nil, tasks.ErrNotFound
}

func (s *stubSystem) SetStatus(ctx context.Context, id uuid.UUID, status tasks.Status) error {
	return nil
}

type stubConversations struct {
	posted []conversations.PostCommand
}

func (s *stubConversations) Default(ctx context.Context) (*conversations.Conversation, error) {
	return &conversations.Conversation{ID: uuid.New(), IsDefault: true}, nil
}

func (s *stubConversations) Post(ctx context.Context, cmd conversations.PostCommand) (*conversations.Message, error) {
	s.posted = append(s.posted, cmd)
	return &conversations.Message{ID: uuid.New(), Content: cmd.Content}, nil
}

func (s *stubConversations) Messages(ctx context.Context, filter conversations.MessageFilter) ([]conversations.Message, uuid.UUID, error) {
	return nil, uuid.Nil, nil
}

func (s *stubConversations) GithubEvents(ctx context.Context, limit int) ([]conversations.Message, error) {
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreate_AnnouncesTask(t *testing.T) {
	sys := &stubSystem{}
	convos := &stubConversations{}
	h := tasks.NewHandler(sys, convos, discardLogger())

	body := `{"type":"Fix checkout bug","priority":2}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result struct {
		Data tasks.Task `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	if result.Data.Type != "Fix checkout bug" {
		t.Errorf("type = %q, want request type", result.Data.Type)
	}

	if len(convos.posted) != 1 {
		t.Fatalf("posted %d messages, want 1", len(convos.posted))
	}

	if convos.posted[0].Content != "Task queued: Fix checkout bug" {
		t.Errorf("announcement = %q", convos.posted[0].Content)
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	h := tasks.NewHandler(&stubSystem{}, &stubConversations{}, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	h.Create(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestList_WrapsData(t *testing.T) {
	sys := &stubSystem{tasks: []tasks.Task{
		{ID: uuid.New(), Type: "a", Status: tasks.StatusQueued},
		{ID: uuid.New(), Type: "b", Status: tasks.StatusCompleted},
	}}
	h := tasks.NewHandler(sys, &stubConversations{}, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result struct {
		Data []tasks.Task `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	if len(result.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(result.Data))
	}
}
