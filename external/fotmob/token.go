package fotmob

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

// ErrTokenNotFound means no captured request carried the auth header.
var ErrTokenNotFound = errors.New("fotmob: auth header not observed")

const DefaultTokenHeader = "X-Mas"

// TokenSource yields the value of the provider's anti-scraping header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type BrowserConfig struct {
	PageURL   string
	Header    string
	UserAgent string
	Timeout   time.Duration
	// Settle keeps listening after the body is ready; the header is often
	// sent by a script that runs after load.
	Settle time.Duration
	Logger *logging.Logger
}

// BrowserTokenSource drives headless Chrome to a page and reads the header
// from the page's own outgoing requests. Each call is a single attempt.
type BrowserTokenSource struct {
	cfg BrowserConfig
}

func NewBrowserTokenSource(cfg BrowserConfig) *BrowserTokenSource {
	if strings.TrimSpace(cfg.Header) == "" {
		cfg.Header = DefaultTokenHeader
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &BrowserTokenSource{cfg: cfg}
}

func (s *BrowserTokenSource) Token(ctx context.Context) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.NoSandbox,
	)
	if ua := strings.TrimSpace(s.cfg.UserAgent); ua != "" {
		opts = append(opts, chromedp.UserAgent(ua))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	runCtx, cancelRun := context.WithTimeout(browserCtx, s.cfg.Timeout)
	defer cancelRun()

	var (
		mu       sync.Mutex
		captured []network.Headers
	)
	chromedp.ListenTarget(runCtx, func(ev any) {
		var h network.Headers
		switch e := ev.(type) {
		case *network.EventRequestWillBeSent:
			if e.Request != nil {
				h = e.Request.Headers
			}
		case *network.EventRequestWillBeSentExtraInfo:
			h = e.Headers
		}
		if len(h) == 0 {
			return
		}
		mu.Lock()
		captured = append(captured, h)
		mu.Unlock()
	})

	actions := []chromedp.Action{
		network.Enable(),
		chromedp.Navigate(s.cfg.PageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	if s.cfg.Settle > 0 {
		actions = append(actions, chromedp.Sleep(s.cfg.Settle))
	}
	if err := chromedp.Run(runCtx, actions...); err != nil {
		s.cfg.Logger.WarnContext(ctx, "fotmob token capture navigation failed", "page", s.cfg.PageURL, "error", err)
		return "", errors.Join(ErrTokenNotFound, err)
	}

	mu.Lock()
	defer mu.Unlock()
	token, ok := FirstHeader(captured, s.cfg.Header)
	if !ok {
		s.cfg.Logger.WarnContext(ctx, "fotmob token header not observed", "page", s.cfg.PageURL, "requests", len(captured))
		return "", ErrTokenNotFound
	}
	return token, nil
}

// FirstHeader scans captured request headers in order and returns the first
// non-empty value of name, matched case-insensitively.
func FirstHeader(captured []network.Headers, name string) (string, bool) {
	for _, headers := range captured {
		for k, v := range headers {
			if !strings.EqualFold(k, name) {
				continue
			}
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s, true
			}
		}
	}
	return "", false
}
