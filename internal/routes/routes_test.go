package routes_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doreish/mission-control/internal/routes"
	pkgroutes "github.com/doreish/mission-control/pkg/routes"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func textHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestBuild_RegistersRoutes(t *testing.T) {
	r := routes.New(discardLogger())

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/health",
		Handler: textHandler("healthy"),
	})

	handler := r.Build()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	if w.Body.String() != "healthy" {
		t.Errorf("body = %q, want healthy", w.Body.String())
	}
}

func TestBuild_GroupPrefix(t *testing.T) {
	r := routes.New(discardLogger())

	r.RegisterGroup(pkgroutes.Group{
		Prefix: "/tasks",
		Routes: []pkgroutes.Route{
			{Method: "GET", Pattern: "", Handler: textHandler("list")},
			{Method: "POST", Pattern: "/run", Handler: textHandler("run")},
		},
	})

	handler := r.Build()

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/tasks", "list"},
		{"POST", "/tasks/run", "run"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Body.String() != tt.want {
			t.Errorf("%s %s body = %q, want %q", tt.method, tt.path, w.Body.String(), tt.want)
		}
	}
}

func TestBuild_NestedGroups(t *testing.T) {
	r := routes.New(discardLogger())

	r.RegisterGroup(pkgroutes.Group{
		Prefix: "/connectors",
		Routes: []pkgroutes.Route{
			{Method: "GET", Pattern: "", Handler: textHandler("connectors")},
		},
		Children: []pkgroutes.Group{
			{
				Prefix: "/github",
				Routes: []pkgroutes.Route{
					{Method: "GET", Pattern: "/repos", Handler: textHandler("repos")},
				},
			},
		},
	})

	handler := r.Build()

	req := httptest.NewRequest(http.MethodGet, "/connectors/github/repos", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Body.String() != "repos" {
		t.Errorf("body = %q, want repos", w.Body.String())
	}
}

func TestBuild_MethodMismatch(t *testing.T) {
	r := routes.New(discardLogger())

	r.RegisterRoute(pkgroutes.Route{
		Method:  "POST",
		Pattern: "/messages",
		Handler: textHandler("posted"),
	})

	handler := r.Build()

	req := httptest.NewRequest(http.MethodDelete, "/messages", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
