package conversations

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/doreish/mission-control/pkg/handlers"
	"github.com/doreish/mission-control/pkg/routes"
	"github.com/google/uuid"
)

const eventLimit = 20

// Handler provides HTTP handlers for conversation and message endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new conversations HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for chat endpoints. The
// group carries no shared prefix because the conversation, message, and
// event surfaces live under separate top-level paths.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "Conversations and messages",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/conversations", Handler: h.Default},
			{Method: "GET", Pattern: "/messages", Handler: h.Messages},
			{Method: "POST", Pattern: "/messages", Handler: h.Post},
			{Method: "GET", Pattern: "/events/github", Handler: h.GithubEvents},
		},
	}
}

// Default handles GET /conversations to retrieve the default conversation,
// creating it when absent.
func (h *Handler) Default(w http.ResponseWriter, r *http.Request) {
	convo, err := h.sys.Default(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, []Conversation{*convo})
}

// Messages handles GET /messages to list messages in creation order.
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	filter, err := messageFilterFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	messages, conversationID, err := h.sys.Messages(r.Context(), filter)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"data":            messages,
		"conversation_id": conversationID,
	})
}

// Post handles POST /messages to append a message.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	var cmd PostCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Post(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

// GithubEvents handles GET /events/github to list recent webhook messages,
// newest first.
func (h *Handler) GithubEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.sys.GithubEvents(r.Context(), eventLimit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, events)
}

func messageFilterFromQuery(values url.Values) (MessageFilter, error) {
	var filter MessageFilter

	if v := values.Get("conversation_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.ConversationID = &id
	}

	if v := values.Get("thread_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.ThreadID = &id
	}

	if v := values.Get("top_level"); v != "" {
		topLevel, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.TopLevel = topLevel
	}

	return filter, nil
}
