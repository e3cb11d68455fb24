package approvals

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/doreish/mission-control/pkg/handlers"
	"github.com/doreish/mission-control/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP handlers for approval endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a new approvals HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

// Routes returns the route group configuration for approval endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/approvals",
		Description: "Approval workflow",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/{id}/decide", Handler: h.Decide},
		},
	}
}

// List handles GET /approvals to retrieve all approvals, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

// Create handles POST /approvals to raise a new approval request.
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

// Decide handles POST /approvals/{id}/decide to record a decision.
func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd DecideCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Decide(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}
