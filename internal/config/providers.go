package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvGithubToken overrides the GitHub API token.
	EnvGithubToken = "GITHUB_TOKEN"

	// EnvVercelToken overrides the Vercel API token.
	EnvVercelToken = "VERCEL_TOKEN"

	// EnvWebhookSecret overrides the GitHub webhook shared secret.
	EnvWebhookSecret = "GITHUB_WEBHOOK_SECRET"
)

// ProvidersConfig contains credentials and endpoints for the external
// provider integrations. Tokens are optional; routes that require a missing
// token fail with a configuration error at request time.
type ProvidersConfig struct {
	GithubToken   string `toml:"github_token"`
	VercelToken   string `toml:"vercel_token"`
	WebhookSecret string `toml:"webhook_secret"`
	GithubAPI     string `toml:"github_api"`
	VercelAPI     string `toml:"vercel_api"`
	Timeout       string `toml:"timeout"`
}

// TimeoutDuration parses and returns the outbound request timeout.
func (c *ProvidersConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the
// providers configuration.
func (c *ProvidersConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ProvidersConfig) Merge(overlay *ProvidersConfig) {
	if overlay.GithubToken != "" {
		c.GithubToken = overlay.GithubToken
	}
	if overlay.VercelToken != "" {
		c.VercelToken = overlay.VercelToken
	}
	if overlay.WebhookSecret != "" {
		c.WebhookSecret = overlay.WebhookSecret
	}
	if overlay.GithubAPI != "" {
		c.GithubAPI = overlay.GithubAPI
	}
	if overlay.VercelAPI != "" {
		c.VercelAPI = overlay.VercelAPI
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *ProvidersConfig) loadDefaults() {
	if c.GithubAPI == "" {
		c.GithubAPI = "https://api.github.com"
	}
	if c.VercelAPI == "" {
		c.VercelAPI = "https://api.vercel.com"
	}
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
}

func (c *ProvidersConfig) loadEnv() {
	if v := os.Getenv(EnvGithubToken); v != "" {
		c.GithubToken = v
	}
	if v := os.Getenv(EnvVercelToken); v != "" {
		c.VercelToken = v
	}
	if v := os.Getenv(EnvWebhookSecret); v != "" {
		c.WebhookSecret = v
	}
}

func (c *ProvidersConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
