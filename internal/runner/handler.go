package runner

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/doreish/mission-control/pkg/handlers"
	"github.com/doreish/mission-control/pkg/routes"
)

// Handler provides the HTTP handler for triggering task runs.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new runner HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for run execution.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/tasks",
		Description: "Scripted task execution",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/run", Handler: h.Execute},
		},
	}
}

// Execute handles POST /tasks/run to walk a task through the scripted
// sequence.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var cmd ExecuteCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Execute(r.Context(), cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
