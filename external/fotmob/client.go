package fotmob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/platform/resilience"
	"github.com/riskibarqy/football-scouting/internal/usecase"
)

const (
	defaultBaseURL   = "https://www.fotmob.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

var errUnauthorizedToken = errors.New("fotmob rejected token")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	Header     string
	Timeout    time.Duration
	TokenTTL   time.Duration
	Retry      resilience.RetryPolicy
	Tokens     TokenSource
	Logger     *logging.Logger
}

// Client calls the JSON API with a header obtained from Tokens. The token is
// cached for TokenTTL and re-captured once when the API rejects it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	header     string
	tokenTTL   time.Duration
	retry      resilience.RetryPolicy
	tokens     TokenSource
	logger     *logging.Logger
	now        func() time.Time

	mu        sync.Mutex
	token     string
	tokenAt   time.Time
	tokenLoad resilience.Group[string]
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
		httpClient.Timeout = 15 * time.Second
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	header := strings.TrimSpace(cfg.Header)
	if header == "" {
		header = DefaultTokenHeader
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	retry := cfg.Retry
	if retry.Attempts < 1 {
		retry = resilience.DefaultRetryPolicy()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		header:     header,
		tokenTTL:   ttl,
		retry:      retry,
		tokens:     cfg.Tokens,
		logger:     logger,
		now:        time.Now,
	}
}

type teamPayload struct {
	Squad struct {
		Squad []struct {
			Title   string `json:"title"`
			Members []struct {
				ID          int64  `json:"id"`
				Name        string `json:"name"`
				ShirtNumber any    `json:"shirtNumber"`
				CountryName string `json:"cname"`
				Age         int    `json:"age"`
				Height      int    `json:"height"`
				Role        struct {
					Key      string `json:"key"`
					Fallback string `json:"fallback"`
				} `json:"role"`
			} `json:"members"`
		} `json:"squad"`
	} `json:"squad"`
}

func (c *Client) TeamSquad(ctx context.Context, teamID int64) ([]usecase.ExternalSquadMember, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	q := url.Values{}
	q.Set("id", strconv.FormatInt(teamID, 10))
	var payload teamPayload
	if err := c.getJSON(ctx, "/api/teams?"+q.Encode(), &payload); err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalSquadMember, 0, 32)
	for _, group := range payload.Squad.Squad {
		if strings.EqualFold(group.Title, "coach") {
			continue
		}
		for _, m := range group.Members {
			out = append(out, usecase.ExternalSquadMember{
				ID:          m.ID,
				Name:        strings.TrimSpace(m.Name),
				Group:       group.Title,
				Role:        m.Role.Fallback,
				ShirtNumber: shirtNumber(m.ShirtNumber),
				Country:     m.CountryName,
				Age:         m.Age,
				HeightCM:    m.Height,
			})
		}
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	token, err := c.currentToken(ctx, false)
	if err != nil {
		return err
	}

	raw, err := c.execute(ctx, path, token)
	if errors.Is(err, errUnauthorizedToken) {
		c.logger.InfoContext(ctx, "fotmob token rejected, capturing a new one")
		if token, err = c.currentToken(ctx, true); err != nil {
			return err
		}
		raw, err = c.execute(ctx, path, token)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "fotmob request failed", "path", path, "error", err)
		return fmt.Errorf("%w: squad provider: %w", usecase.ErrDependencyUnavailable, err)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode fotmob payload: %w", err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, path, token string) ([]byte, error) {
	var body []byte
	err := resilience.Retry(ctx, c.retry, func(ctx context.Context, _ int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return resilience.Permanent(fmt.Errorf("build request: %w", err))
		}
		req.Header.Set(c.header, token)
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("send request: %w", err)
		}
		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		_ = resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("read body: %w", readErr)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			body = raw
			return nil
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return resilience.Permanent(fmt.Errorf("%w: status=%d", errUnauthorizedToken, resp.StatusCode))
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("status=%d", resp.StatusCode)
		default:
			return resilience.Permanent(fmt.Errorf("status=%d", resp.StatusCode))
		}
	})
	return body, err
}

// currentToken returns the cached token or captures a new one. Capture
// failure is fatal for this provider only.
func (c *Client) currentToken(ctx context.Context, force bool) (string, error) {
	c.mu.Lock()
	if !force && c.token != "" && c.now().Sub(c.tokenAt) < c.tokenTTL {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	if c.tokens == nil {
		return "", fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, ErrTokenNotFound)
	}

	token, err, _ := c.tokenLoad.Do("token", func() (string, error) {
		return c.tokens.Token(ctx)
	})
	if err != nil {
		return "", fmt.Errorf("%w: capture token: %w", usecase.ErrDependencyUnavailable, err)
	}

	c.mu.Lock()
	c.token = token
	c.tokenAt = c.now()
	c.mu.Unlock()
	return token, nil
}

func shirtNumber(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	default:
		return fmt.Sprint(n)
	}
}
