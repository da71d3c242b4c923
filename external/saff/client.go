package saff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/football-scouting/internal/domain/fixture"
	"github.com/riskibarqy/football-scouting/internal/domain/standing"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/platform/resilience"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
	maxPageBytes     = 8 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	// RatePerSecond caps outbound page loads; zero disables the limiter.
	RatePerSecond float64
	Retry         resilience.RetryPolicy
	Breaker       resilience.BreakerConfig
	Logos         LogoResolver
	Logger        *logging.Logger
}

// Client downloads championship pages and hands them to the parsers.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	retry      resilience.RetryPolicy
	breaker    *resilience.Breaker
	flight     resilience.Group[[]byte]
	// loadTimeout bounds a shared fetch including every retry.
	loadTimeout time.Duration
	logos       LogoResolver
	logger      *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = cfg.Timeout
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	retry := cfg.Retry
	if retry.Attempts < 1 {
		retry = resilience.DefaultRetryPolicy()
	}

	logos := cfg.Logos
	if logos == nil {
		logos = noLogos{}
	}

	loadTimeout := time.Duration(retry.Attempts) * (httpClient.Timeout + retry.MaxDelay)

	return &Client{
		httpClient:  httpClient,
		userAgent:   userAgent,
		limiter:     limiter,
		retry:       retry,
		breaker:     resilience.NewBreaker(cfg.Breaker),
		loadTimeout: loadTimeout,
		logos:       logos,
		logger:      logger,
	}
}

func (c *Client) FetchStandings(ctx context.Context, pageURL, caption string) ([]standing.Standing, error) {
	raw, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	rows, err := ParseStandings(bytes.NewReader(raw), caption, c.logos)
	if err != nil {
		c.logger.WarnContext(ctx, "standings page not recognised", "url", pageURL, "caption", caption, "error", err)
		return nil, err
	}
	return rows, nil
}

func (c *Client) FetchSchedule(ctx context.Context, pageURL, container string) ([]fixture.Match, error) {
	raw, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	matches, err := ParseSchedule(bytes.NewReader(raw), container, c.logos)
	if err != nil {
		c.logger.WarnContext(ctx, "schedule page not recognised", "url", pageURL, "error", err)
		return nil, err
	}
	return matches, nil
}

// fetch returns the page body. Concurrent loads of one URL share a single
// request that keeps running when the caller that started it goes away.
// Every request passes the breaker, limiter and retry policy.
func (c *Client) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "championship circuit breaker rejected request", "url", pageURL, "state", c.breaker.State())
		return nil, fetchFailed(err, pageURL)
	}

	raw, err := c.flight.DoContext(ctx, pageURL, func(ctx context.Context) ([]byte, error) {
		ctx, cancel := context.WithTimeout(ctx, c.loadTimeout)
		defer cancel()

		var body []byte
		err := resilience.Retry(ctx, c.retry, func(ctx context.Context, attempt int) error {
			b, err := c.get(ctx, pageURL)
			if err != nil {
				c.logger.DebugContext(ctx, "championship page attempt failed", "url", pageURL, "attempt", attempt, "error", err)
				return err
			}
			body = b
			return nil
		})
		return body, err
	})

	if err != nil && ctx.Err() != nil {
		return nil, fetchFailed(err, pageURL)
	}
	if err != nil {
		if crerr.Is(err, errTransient) {
			c.breaker.Failure()
		} else {
			c.breaker.Success()
		}
		c.logger.WarnContext(ctx, "championship page fetch failed", "url", pageURL, "error", err)
		return nil, fetchFailed(err, pageURL)
	}
	c.breaker.Success()
	return raw, nil
}

func (c *Client) get(ctx context.Context, pageURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, resilience.Permanent(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, resilience.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ar;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, resilience.Permanent(err)
		}
		return nil, crerr.Mark(fmt.Errorf("send request: %w", err), errTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, crerr.Mark(fmt.Errorf("read body: %w", err), errTransient)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case isRetryableStatus(resp.StatusCode):
		return nil, crerr.Mark(fmt.Errorf("status=%d body=%s", resp.StatusCode, abbreviate(raw)), errTransient)
	default:
		return nil, resilience.Permanent(fmt.Errorf("status=%d body=%s", resp.StatusCode, abbreviate(raw)))
	}
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

const maxErrorBodyRunes = 160

func abbreviate(raw []byte) string {
	s := strings.Join(strings.Fields(strings.ToValidUTF8(string(raw), "")), " ")
	runes := []rune(s)
	if len(runes) > maxErrorBodyRunes {
		return string(runes[:maxErrorBodyRunes]) + "..."
	}
	return s
}
