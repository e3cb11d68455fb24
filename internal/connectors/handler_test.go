package connectors_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doreish/mission-control/internal/connectors"
	"github.com/doreish/mission-control/internal/conversations"
	"github.com/doreish/mission-control/pkg/webhook"
	"github.com/google/uuid"
)

type stubConversations struct {
	posted []conversations.PostCommand
}

func (s *stubConversations) Default(ctx context.Context) (*conversations.Conversation, error) {
	return &conversations.Conversation{ID: uuid.New(), Name: conversations.DefaultName, IsDefault: true}, nil
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

func newWebhookRequest(secret, body string, sign bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/connectors/github/webhook", bytes.NewReader([]byte(body)))
	if sign {
		req.Header.Set(webhook.SignatureHeader, webhook.Signature([]byte(secret), []byte(body)))
	}
	return req
}

func TestWebhook_ValidSignature(t *testing.T) {
	convos := &stubConversations{}
	h := connectors.NewHandler(nil, nil, convos, "secret", discardLogger())

	body := `{"action":"opened","repository":{"full_name":"doreish/api"},"pull_request":{"number":3,"title":"Fix"}}`
	w := httptest.NewRecorder()

	h.Webhook(w, newWebhookRequest("secret", body, true))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var result map[string]bool
	json.Unmarshal(w.Body.Bytes(), &result)
	if !result["ok"] {
		t.Errorf("body = %s, want ok true", w.Body.String())
	}

	if len(convos.posted) != 1 {
		t.Fatalf("posted %d messages, want 1", len(convos.posted))
	}

	msg := convos.posted[0]
	if msg.Content != "GitHub opened on doreish/api PR #3: Fix" {
		t.Errorf("content = %q, want event summary", msg.Content)
	}

	if string(msg.Logs) != body {
		t.Errorf("logs = %s, want raw payload", msg.Logs)
	}
}

func TestWebhook_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
	}{
		{"missing signature", newWebhookRequest("secret", `{}`, false)},
		{"wrong secret", newWebhookRequest("other", `{}`, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			convos := &stubConversations{}
			h := connectors.NewHandler(nil, nil, convos, "secret", discardLogger())

			w := httptest.NewRecorder()
			h.Webhook(w, tt.req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}

			var result map[string]string
			json.Unmarshal(w.Body.Bytes(), &result)
			if result["error"] != "invalid signature" {
				t.Errorf("error = %q, want invalid signature", result["error"])
			}

			if len(convos.posted) != 0 {
				t.Errorf("posted %d messages, want 0", len(convos.posted))
			}
		})
	}
}
