package fotmob

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chromedp/cdproto/network"

	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/platform/resilience"
	"github.com/riskibarqy/football-scouting/internal/usecase"
)

type fakeTokens struct {
	tokens []string
	err    error
	calls  atomic.Int32
}

func (f *fakeTokens) Token(context.Context) (string, error) {
	n := int(f.calls.Add(1))
	if f.err != nil {
		return "", f.err
	}
	if n > len(f.tokens) {
		n = len(f.tokens)
	}
	return f.tokens[n-1], nil
}

const squadJSON = `{"squad":{"squad":[
 {"title":"coach","members":[{"id":1,"name":"Coach"}]},
 {"title":"keepers","members":[{"id":10,"name":"Nawaf","shirtNumber":1,"cname":"Saudi Arabia","age":24,"height":189,"role":{"key":"keeper_long","fallback":"Keeper"}}]},
 {"title":"attackers","members":[{"id":11,"name":" Salem ","shirtNumber":"10","cname":"Saudi Arabia","age":22,"role":{"fallback":"Attacker"}}]}
]}}`

func TestClient_TeamSquad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Mas") != "tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("id") != "8697" {
			t.Errorf("unexpected team id %q", r.URL.Query().Get("id"))
		}
		_, _ = w.Write([]byte(squadJSON))
	}))
	defer srv.Close()

	tokens := &fakeTokens{tokens: []string{"tok-1"}}
	c := NewClient(ClientConfig{BaseURL: srv.URL, Tokens: tokens, Logger: logging.NewNop()})

	got, err := c.TeamSquad(context.Background(), 8697)
	if err != nil {
		t.Fatalf("TeamSquad: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected coach to be skipped, got %+v", got)
	}
	if got[0].ShirtNumber != "1" || got[0].Role != "Keeper" || got[0].HeightCM != 189 {
		t.Fatalf("unexpected keeper: %+v", got[0])
	}
	if got[1].Name != "Salem" || got[1].ShirtNumber != "10" {
		t.Fatalf("unexpected attacker: %+v", got[1])
	}

	if _, err := c.TeamSquad(context.Background(), 8697); err != nil {
		t.Fatalf("second TeamSquad: %v", err)
	}
	if tokens.calls.Load() != 1 {
		t.Fatalf("expected cached token, captured %d times", tokens.calls.Load())
	}
}

func TestClient_RecapturesRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Mas") != "fresh" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{"squad":{"squad":[]}}`))
	}))
	defer srv.Close()

	tokens := &fakeTokens{tokens: []string{"stale", "fresh"}}
	c := NewClient(ClientConfig{BaseURL: srv.URL, Tokens: tokens, Logger: logging.NewNop()})

	if _, err := c.TeamSquad(context.Background(), 1); err != nil {
		t.Fatalf("TeamSquad: %v", err)
	}
	if tokens.calls.Load() != 2 {
		t.Fatalf("expected one recapture, got %d captures", tokens.calls.Load())
	}
}

func TestClient_TokenFailureIsDependencyUnavailable(t *testing.T) {
	c := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1", Tokens: &fakeTokens{err: ErrTokenNotFound}, Logger: logging.NewNop()})

	_, err := c.TeamSquad(context.Background(), 1)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) || !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected dependency unavailable wrapping token error, got %v", err)
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"squad":{"squad":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Tokens:  &fakeTokens{tokens: []string{"t"}},
		Retry:   resilience.RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond},
		Logger:  logging.NewNop(),
	})
	if _, err := c.TeamSquad(context.Background(), 1); err != nil {
		t.Fatalf("TeamSquad: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", hits.Load())
	}
}

func TestFirstHeader(t *testing.T) {
	captured := []network.Headers{
		{"Accept": "text/html"},
		{"x-mas": ""},
		{"X-MAS": "first-token"},
		{"X-Mas": "second-token"},
	}
	got, ok := FirstHeader(captured, "X-Mas")
	if !ok || got != "first-token" {
		t.Fatalf("FirstHeader = %q, %v", got, ok)
	}
	if _, ok := FirstHeader(captured[:2], "X-Mas"); ok {
		t.Fatalf("expected no token in first two requests")
	}
}
