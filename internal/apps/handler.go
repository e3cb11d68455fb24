package apps

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/doreish/mission-control/pkg/handlers"
	"github.com/doreish/mission-control/pkg/routes"
)

// Handler provides HTTP handlers for app endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new apps HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for app endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/apps",
		Description: "Managed applications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
		},
	}
}

// List handles GET /apps to retrieve all apps, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

// Create handles POST /apps to register a new app.
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

	handlers.RespondData(w, http.StatusOK, result)
}
