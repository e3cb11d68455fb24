package main

import (
	"net/http"
	"time"

	"github.com/doreish/mission-control/internal/agents"
	"github.com/doreish/mission-control/internal/approvals"
	"github.com/doreish/mission-control/internal/apps"
	"github.com/doreish/mission-control/internal/config"
	"github.com/doreish/mission-control/internal/connectors"
	"github.com/doreish/mission-control/internal/conversations"
	"github.com/doreish/mission-control/internal/routes"
	"github.com/doreish/mission-control/internal/runner"
	"github.com/doreish/mission-control/internal/tasks"
	"github.com/doreish/mission-control/pkg/handlers"
	pkgroutes "github.com/doreish/mission-control/pkg/routes"
)

// buildHandler registers all route groups and wraps the resulting mux with
// the middleware chain.
func buildHandler(rt *Runtime, domain *Domain, cfg *config.Config) (http.Handler, error) {
	r := routes.New(rt.Logger)

	r.RegisterGroup(agents.NewHandler(domain.Agents, rt.Logger).Routes())
	r.RegisterGroup(apps.NewHandler(domain.Apps, rt.Logger).Routes())
	r.RegisterGroup(tasks.NewHandler(domain.Tasks, domain.Conversations, rt.Logger).Routes())
	r.RegisterGroup(approvals.NewHandler(domain.Approvals, rt.Logger).Routes())
	r.RegisterGroup(conversations.NewHandler(domain.Conversations, rt.Logger).Routes())
	r.RegisterGroup(runner.NewHandler(domain.Runner, rt.Logger).Routes())
	r.RegisterGroup(connectors.NewHandler(
		domain.Connectors,
		domain.Proxy,
		domain.Conversations,
		cfg.Providers.WebhookSecret,
		rt.Logger,
	).Routes())

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/health",
		Handler: handleHealth(rt),
	})

	return buildMiddleware(rt, cfg)(r.Build()), nil
}

// handleHealth reports service and database health. A failed round-trip is
// the one place connectivity loss surfaces structurally.
func handleHealth(rt *Runtime) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var now time.Time
		err := rt.DB.QueryRowContext(r.Context(), `SELECT now()`).Scan(&now)
		if err != nil {
			rt.Logger.Error("health check failed", "error", err)
			handlers.RespondJSON(w, http.StatusInternalServerError, map[string]bool{
				"ok": false,
				"db": false,
			})
			return
		}

		handlers.RespondJSON(w, http.StatusOK, map[string]any{
			"ok":  true,
			"db":  true,
			"now": now,
		})
	}
}
