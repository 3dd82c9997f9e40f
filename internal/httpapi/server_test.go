package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skillsenselab/yt-transcriber/internal/httpapi/middleware"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.ReadTimeout != 15 {
		t.Errorf("expected read timeout 15, got %d", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 1800 {
		t.Errorf("expected write timeout 1800, got %d", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout != 120 {
		t.Errorf("expected idle timeout 120, got %d", cfg.IdleTimeout)
	}
	if cfg.MaxBodySize != "1MB" {
		t.Errorf("expected max body size 1MB, got %s", cfg.MaxBodySize)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.RateLimitPerMinute != 0 {
		t.Errorf("rate limiting should be off by default, got %d", cfg.RateLimitPerMinute)
	}
}

func TestConfigApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := Config{Port: 9090, WriteTimeout: 60}
	cfg.ApplyDefaults()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.WriteTimeout != 60 {
		t.Errorf("expected write timeout 60, got %d", cfg.WriteTimeout)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"negative port", func(c *Config) { c.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"negative read timeout", func(c *Config) { c.ReadTimeout = -1 }, true},
		{"negative write timeout", func(c *Config) { c.WriteTimeout = -5 }, true},
		{"negative rate limit", func(c *Config) { c.RateLimitPerMinute = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestServerStartStop(t *testing.T) {
	// Port 0 binds an ephemeral port so parallel test runs never collide.
	cfg := Config{
		Host:        "127.0.0.1",
		Port:        0,
		ReadTimeout: 1, WriteTimeout: 1, IdleTimeout: 1,
		MaxBodySize: "1MB",
	}
	s := New(cfg, logger.NewDefault("test"))

	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

// TestServerHandlerStack drives a request through the full composed handler:
// h2c, CORS, body-size limit, request logging, then the engine middleware
// and routes.
func TestServerHandlerStack(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	s := New(cfg, logger.NewDefault("test"))
	s.ApplyMiddleware()

	runner := &fakeRunner{result: &transcribe.Result{Text: "stacked"}}
	RegisterRoutes(s.GinEngine(), Routes{
		Handler: newHandler(runner, nil),
		Local:   &fakeBackend{name: "whispercpp", available: true},
		Remote:  &fakeBackend{name: "openai", available: true},
	})

	t.Run("transcribe +request id +cors", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/transcribe",
			strings.NewReader(`{"youtube_url":"https://youtu.be/abc123DEF45"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://example.com")
		rr := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", rr.Code, rr.Body.String())
		}
		if rr.Header().Get(middleware.HeaderRequestID) == "" {
			t.Error("expected request ID header on response")
		}
		if rr.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Error("expected CORS header on response")
		}
	})

	t.Run("unknown route gets envelope", func(t *testing.T) {
		rr := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rr, httptest.NewRequest("GET", "/nope", http.NoBody))

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rr.Code)
		}
		env := decodeEnvelope(t, rr)
		if env.Success || env.Message != "Endpoint not found" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})
}
