package config_test

import (
	"testing"

	"github.com/doreish/mission-control/internal/config"
)

func TestServerConfig_FinalizeDefaults(t *testing.T) {
	cfg := config.ServerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}

	if cfg.ReadTimeout != "15s" {
		t.Errorf("ReadTimeout = %q, want 15s", cfg.ReadTimeout)
	}

	if cfg.MaxBodySize != "1MB" {
		t.Errorf("MaxBodySize = %q, want 1MB", cfg.MaxBodySize)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := config.ServerConfig{Host: "0.0.0.0", Port: 9000}

	if got := cfg.Addr(); got != "0.0.0.0:9000" {
		t.Errorf("Addr() = %q, want 0.0.0.0:9000", got)
	}
}

func TestServerConfig_MaxBodyBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"megabytes", "1MB", 1000000},
		{"kilobytes", "512KB", 512000},
		{"plain bytes", "1024", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.ServerConfig{MaxBodySize: tt.size}
			if got := cfg.MaxBodyBytes(); got != tt.want {
				t.Errorf("MaxBodyBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestServerConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ServerConfig
	}{
		{"port too high", config.ServerConfig{Port: 70000, ReadTimeout: "15s", WriteTimeout: "30s", IdleTimeout: "60s", MaxBodySize: "1MB"}},
		{"bad read timeout", config.ServerConfig{Port: 8080, ReadTimeout: "soon", WriteTimeout: "30s", IdleTimeout: "60s", MaxBodySize: "1MB"}},
		{"bad body size", config.ServerConfig{Port: 8080, ReadTimeout: "15s", WriteTimeout: "30s", IdleTimeout: "60s", MaxBodySize: "huge"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() error = nil, want error")
			}
		})
	}
}

func TestServerConfig_Merge(t *testing.T) {
	cfg := config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "15s"}
	overlay := config.ServerConfig{Port: 9090, MaxBodySize: "2MB"}

	cfg.Merge(&overlay)

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want untouched localhost", cfg.Host)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want overlay 9090", cfg.Port)
	}

	if cfg.ReadTimeout != "15s" {
		t.Errorf("ReadTimeout = %q, want untouched 15s", cfg.ReadTimeout)
	}

	if cfg.MaxBodySize != "2MB" {
		t.Errorf("MaxBodySize = %q, want overlay 2MB", cfg.MaxBodySize)
	}
}

func TestProvidersConfig_FinalizeDefaults(t *testing.T) {
	cfg := config.ProvidersConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.GithubAPI != "https://api.github.com" {
		t.Errorf("GithubAPI = %q, want default", cfg.GithubAPI)
	}

	if cfg.VercelAPI != "https://api.vercel.com" {
		t.Errorf("VercelAPI = %q, want default", cfg.VercelAPI)
	}

	if cfg.Timeout != "10s" {
		t.Errorf("Timeout = %q, want 10s", cfg.Timeout)
	}
}

func TestProvidersConfig_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvGithubToken, "gh-token")
	t.Setenv(config.EnvVercelToken, "vc-token")
	t.Setenv(config.EnvWebhookSecret, "hook-secret")

	cfg := config.ProvidersConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.GithubToken != "gh-token" {
		t.Errorf("GithubToken = %q, want env value", cfg.GithubToken)
	}

	if cfg.VercelToken != "vc-token" {
		t.Errorf("VercelToken = %q, want env value", cfg.VercelToken)
	}

	if cfg.WebhookSecret != "hook-secret" {
		t.Errorf("WebhookSecret = %q, want env value", cfg.WebhookSecret)
	}
}

func TestConfig_FinalizeDefaults(t *testing.T) {
	cfg := config.Config{}
	cfg.Database.Name = "mission_control"
	cfg.Database.User = "postgres"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want 30s", cfg.ShutdownTimeout)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want localhost", cfg.Database.Host)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := config.Config{ShutdownTimeout: "30s"}
	cfg.Server.Port = 8080

	overlay := config.Config{ShutdownTimeout: "10s"}
	overlay.Server.Host = "0.0.0.0"

	cfg.Merge(&overlay)

	if cfg.ShutdownTimeout != "10s" {
		t.Errorf("ShutdownTimeout = %q, want overlay 10s", cfg.ShutdownTimeout)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want overlay 0.0.0.0", cfg.Server.Host)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want untouched 8080", cfg.Server.Port)
	}
}
