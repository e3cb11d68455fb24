package tasks

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/doreish/mission-control/internal/conversations"
	"github.com/doreish/mission-control/pkg/handlers"
	"github.com/doreish/mission-control/pkg/routes"
)

// Handler provides HTTP handlers for task endpoints.
type Handler struct {
	sys    System
	convos conversations.System
	logger *slog.Logger
}

// NewHandler creates a new tasks HTTP handler.
func NewHandler(sys System, convos conversations.System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		convos: convos,
		logger: logger,
	}
}

// Routes returns the route group configuration for task endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/tasks",
		Description: "Task queue",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
		},
	}
}

// List handles GET /tasks to retrieve all tasks, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

// Create handles POST /tasks to queue a new task and announce it in the
// default conversation.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	if _, err := h.convos.Post(r.Context(), conversations.PostCommand{
		Content: fmt.Sprintf("Task queued: %s", result.Type),
	}); err != nil {
		h.logger.Error("failed to announce task", "task_id", result.ID, "error", err)
	}

	handlers.RespondData(w, http.StatusOK, result)
}
