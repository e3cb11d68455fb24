package agents

import (
	"log/slog"
	"net/http"

	"github.com/doreish/mission-control/pkg/handlers"
	"github.com/doreish/mission-control/pkg/routes"
)

// Handler provides HTTP handlers for agent roster endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new agents HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for agent endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/agents",
		Description: "Agent roster",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List handles GET /agents to retrieve the full roster ordered by name.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}
