package connectors

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/doreish/mission-control/internal/conversations"
	"github.com/doreish/mission-control/pkg/handlers"
	"github.com/doreish/mission-control/pkg/routes"
	"github.com/doreish/mission-control/pkg/webhook"
)

// Handler provides HTTP handlers for connector endpoints, the provider
// proxies, and the GitHub webhook receiver.
type Handler struct {
	sys    System
	proxy  *Proxy
	convos conversations.System
	secret string
	logger *slog.Logger
}

// NewHandler creates a new connectors HTTP handler.
func NewHandler(sys System, proxy *Proxy, convos conversations.System, secret string, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		proxy:  proxy,
		convos: convos,
		secret: secret,
		logger: logger,
	}
}

// Routes returns the route group configuration for connector endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/connectors",
		Description: "Provider connectors and webhooks",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/vercel/projects", Handler: h.VercelProjects},
			{Method: "GET", Pattern: "/github/repos", Handler: h.GithubRepos},
			{Method: "POST", Pattern: "/github/webhook", Handler: h.Webhook},
		},
	}
}

// List handles GET /connectors to retrieve all connectors, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

// Create handles POST /connectors to register a new connector.
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

// VercelProjects handles GET /connectors/vercel/projects, proxying the
// Vercel project list. Provider status and body pass through as-is.
func (h *Handler) VercelProjects(w http.ResponseWriter, r *http.Request) {
	data, status, err := h.proxy.VercelProjects(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, status, data)
}

// GithubRepos handles GET /connectors/github/repos, proxying the
// authenticated user's repository list. Provider status and body pass
// through as-is.
func (h *Handler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	data, status, err := h.proxy.GithubRepos(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, status, data)
}

// Webhook handles POST /connectors/github/webhook. The raw body is verified
// against the shared secret before any parsing; accepted events are appended
// to the default conversation with the payload preserved in logs.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	signature := r.Header.Get(webhook.SignatureHeader)
	if !webhook.Verify([]byte(h.secret), body, signature) {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrInvalidSignature)
		return
	}

	msg, err := h.convos.Post(r.Context(), conversations.PostCommand{
		Content: EventSummary(body),
		Logs:    json.RawMessage(body),
	})
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("webhook accepted", "message_id", msg.ID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
