package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-scouting/internal/config"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:      ":0",
		StorageDriver: config.StorageMemory,
		CacheEnabled:  true,
		CacheTTL:      time.Minute,
		SessionTTL:    time.Hour,
		ReadTimeout:   time.Second,
		WriteTimeout:  time.Second,
	}
}

func TestNewHTTPServer_MemoryStorage(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	defer func() { _ = cleanup() }()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected teams without session to be 401, got %d", rec.Code)
	}
}

func TestNewHTTPServer_RejectsBadSettings(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty addr":      func(c *config.Config) { c.HTTPAddr = "" },
		"bad credentials": func(c *config.Config) { c.ScoutCredentials = "ana" },
		"unknown driver":  func(c *config.Config) { c.StorageDriver = "mongo" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := memoryConfig()
			mutate(&cfg)
			if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewSquadSource_DisabledIsNil(t *testing.T) {
	if src := newSquadSource(memoryConfig(), logging.NewNop()); src != nil {
		t.Fatalf("expected nil source when provider is disabled, got %T", src)
	}
}
