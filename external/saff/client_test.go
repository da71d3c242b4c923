package saff

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/football-scouting/internal/domain/team"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/platform/resilience"
)

func newTestClient(t *testing.T, breaker resilience.BreakerConfig) *Client {
	t.Helper()
	return NewClient(ClientConfig{
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
		Retry:      resilience.RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
		Breaker:    breaker,
		Logos:      team.NewLogoResolver(team.DefaultLogos),
		Logger:     logging.NewNop(),
	})
}

func TestClient_FetchStandings_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("expected browser-like user agent")
		}
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(standingsPage))
	}))
	defer srv.Close()

	c := newTestClient(t, resilience.BreakerConfig{})
	got, err := c.FetchStandings(context.Background(), srv.URL, "Standing of Jawwy Elite League U-21")
	if err != nil {
		t.Fatalf("FetchStandings: %v", err)
	}
	if len(got) != 2 || got[0].Logo != "alnassr.png" {
		t.Fatalf("unexpected standings: %+v", got)
	}
	if hits.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", hits.Load())
	}
}

func TestClient_FetchSchedule_ClientErrorIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(t, resilience.BreakerConfig{})
	_, err := c.FetchSchedule(context.Background(), srv.URL, "")
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single attempt on 404, got %d", hits.Load())
	}
}

func TestClient_FetchStandings_ShapeChangeIsParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>Under maintenance</h1></body></html>`))
	}))
	defer srv.Close()

	c := newTestClient(t, resilience.BreakerConfig{})
	_, err := c.FetchStandings(context.Background(), srv.URL, "Standing")
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}
	if errors.Is(err, ErrFetchFailed) {
		t.Fatalf("parse failure must not look like a fetch failure")
	}
}

func TestClient_BreakerOpensAfterTransientFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, resilience.BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})
	if _, err := c.FetchSchedule(context.Background(), srv.URL, ""); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
	before := hits.Load()

	_, err := c.FetchSchedule(context.Background(), srv.URL, "")
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed from open breaker, got %v", err)
	}
	if hits.Load() != before {
		t.Fatalf("open breaker must not reach the server")
	}
}

func TestClient_FetchStandings_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(standingsPage))
	}))
	defer srv.Close()

	c := newTestClient(t, resilience.BreakerConfig{})
	const caption = "Standing of Jawwy Elite League U-21"

	first, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := c.FetchStandings(first, srv.URL, caption)
		firstDone <- err
	}()
	<-arrived

	secondDone := make(chan error, 1)
	go func() {
		rows, err := c.FetchStandings(context.Background(), srv.URL, caption)
		if err == nil && len(rows) != 2 {
			err = errors.New("unexpected standings rows")
		}
		secondDone <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	if err := <-firstDone; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled caller to see context.Canceled, got %v", err)
	}
	close(release)
	if err := <-secondDone; err != nil {
		t.Fatalf("second caller: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected one shared request, got %d", hits.Load())
	}
}

func TestAbbreviate_KeepsRunesWhole(t *testing.T) {
	page := []byte("<p>" + strings.Repeat("خطأ في الخادم ", 40) + "</p>")
	got := abbreviate(page)
	if !utf8.ValidString(got) {
		t.Fatalf("abbreviated body is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") || utf8.RuneCountInString(got) != maxErrorBodyRunes+3 {
		t.Fatalf("unexpected abbreviation %q", got)
	}
	if short := abbreviate([]byte("  Service   Unavailable ")); short != "Service Unavailable" {
		t.Fatalf("unexpected short body %q", short)
	}
}
