package main

import (
	"net/http"

	"github.com/doreish/mission-control/internal/config"
	"github.com/doreish/mission-control/pkg/middleware"
)

// buildMiddleware composes the shared middleware chain: request logging
// outermost, then CORS, then the request body cap.
func buildMiddleware(rt *Runtime, cfg *config.Config) func(http.Handler) http.Handler {
	chain := []func(http.Handler) http.Handler{
		middleware.Logger(rt.Logger),
		middleware.CORS(cfg.CORS),
		middleware.MaxBytes(cfg.Server.MaxBodyBytes()),
	}

	return func(next http.Handler) http.Handler {
		for i := len(chain) - 1; i >= 0; i-- {
			next = chain[i](next)
		}
		return next
	}
}
