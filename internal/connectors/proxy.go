package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/doreish/mission-control/internal/config"
)

// Proxy forwards authenticated requests to the provider APIs and passes the
// JSON responses through unmodified, including provider error responses.
type Proxy struct {
	cfg    config.ProvidersConfig
	client *http.Client
	logger *slog.Logger
}

// NewProxy creates a provider proxy using the configured base URLs, tokens,
// and outbound timeout.
func NewProxy(cfg config.ProvidersConfig, logger *slog.Logger) *Proxy {
	return &Proxy{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.TimeoutDuration()},
		logger: logger.With("system", "providers"),
	}
}

// VercelProjects fetches the project list from the Vercel API. The returned
// status and body come from the provider, whatever it answered.
func (p *Proxy) VercelProjects(ctx context.Context) (json.RawMessage, int, error) {
	if p.cfg.VercelToken == "" {
		return nil, 0, fmt.Errorf("vercel: %w", ErrMissingToken)
	}

	url := p.cfg.VercelAPI + "/v9/projects"
	return p.fetch(ctx, url, p.cfg.VercelToken, nil)
}

// GithubRepos fetches the authenticated user's repositories from the
// GitHub API. The returned status and body come from the provider,
// whatever it answered.
func (p *Proxy) GithubRepos(ctx context.Context) (json.RawMessage, int, error) {
	if p.cfg.GithubToken == "" {
		return nil, 0, fmt.Errorf("github: %w", ErrMissingToken)
	}

	url := p.cfg.GithubAPI + "/user/repos?per_page=100"
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	return p.fetch(ctx, url, p.cfg.GithubToken, headers)
}

func (p *Proxy) fetch(ctx context.Context, url, token string, headers map[string]string) (json.RawMessage, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.logger.Warn("provider responded with error", "url", url, "status", resp.StatusCode)
	}

	if len(body) == 0 {
		body = []byte("null")
	}

	return json.RawMessage(body), resp.StatusCode, nil
}
