package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/doreish/mission-control/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_Disabled(t *testing.T) {
	cfg := middleware.CORSConfig{Enabled: false, Origins: []string{"http://localhost:3000"}}
	handler := middleware.CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty when disabled", got)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	cfg := middleware.CORSConfig{
		Enabled:        true,
		Origins:        []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST"},
	}
	handler := middleware.CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want allowed origin", got)
	}

	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
		t.Errorf("Access-Control-Allow-Methods = %q, want %q", got, "GET, POST")
	}
}

func TestCORS_UnlistedOrigin(t *testing.T) {
	cfg := middleware.CORSConfig{Enabled: true, Origins: []string{"http://localhost:3000"}}
	handler := middleware.CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty for unlisted origin", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := middleware.CORSConfig{Enabled: true, Origins: []string{"http://localhost:3000"}}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	handler := middleware.CORS(cfg)(next)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want %d", w.Code, http.StatusOK)
	}

	if called {
		t.Error("preflight request should not reach next handler")
	}
}

func TestLogger_RecordsStatus(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := middleware.Logger(logger)(next)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	out := buf.String()
	if !strings.Contains(out, "status=404") {
		t.Errorf("log output missing status, got %q", out)
	}

	if !strings.Contains(out, "path=/missing") {
		t.Errorf("log output missing path, got %q", out)
	}
}

func TestMaxBytes_CapsBody(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})
	handler := middleware.MaxBytes(8)(next)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body exceeds the limit"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if readErr == nil {
		t.Error("ReadAll err = nil, want max bytes error")
	}
}

func TestMaxBytes_ZeroDisablesCap(t *testing.T) {
	var body []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	})
	handler := middleware.MaxBytes(0)(next)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("unlimited"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if string(body) != "unlimited" {
		t.Errorf("body = %q, want full body with cap disabled", body)
	}
}
