package observability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap/zapcore"

	"github.com/riskibarqy/football-scouting/internal/config"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

const logShipQueueSize = 2048

// InitLogger builds the process logger: JSON on stdout and, when
// LOG_SHIP_ENABLED, batched NDJSON posts to LOG_SHIP_ENDPOINT.
func InitLogger(cfg config.Config) (*logging.Logger, func(context.Context) error, error) {
	opts := logging.Options{
		Level:   cfg.LogLevel,
		Service: cfg.ServiceName,
		Env:     cfg.AppEnv,
	}

	if !cfg.LogShipEnabled {
		logger := logging.New(opts)
		logger.Info("log shipping disabled", "reason", "LOG_SHIP_ENABLED=false")
		return logger, func(context.Context) error { return logger.Sync() }, nil
	}

	endpoint := normalizeEndpoint(cfg.LogShipEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("log ship endpoint cannot be empty")
	}

	shipper := newLogShipper(logShipperConfig{
		Endpoint:      endpoint,
		Token:         cfg.LogShipToken,
		Timeout:       cfg.LogShipTimeout,
		BatchSize:     cfg.LogShipBatchSize,
		FlushInterval: cfg.LogShipFlushInterval,
	})
	opts.Extra = []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(logging.EncoderConfig()), zapcore.AddSync(shipper), cfg.LogShipMinLevel),
	}

	logger := logging.New(opts)
	logger.Info("log shipping enabled",
		"endpoint", endpoint,
		"min_level", cfg.LogShipMinLevel.String(),
		"batch_size", cfg.LogShipBatchSize,
	)

	return logger, func(ctx context.Context) error {
		drainCtx := ctx
		if drainCtx == nil {
			drainCtx = context.Background()
		}
		if _, hasDeadline := drainCtx.Deadline(); !hasDeadline {
			withTimeout, cancel := context.WithTimeout(drainCtx, 5*time.Second)
			defer cancel()
			drainCtx = withTimeout
		}
		if err := logger.Sync(); err != nil {
			return err
		}
		if err := shipper.Close(drainCtx); err != nil {
			return fmt.Errorf("drain log shipper: %w", err)
		}
		return nil
	}, nil
}

func normalizeEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

type logShipperConfig struct {
	Endpoint      string
	Token         string
	Timeout       time.Duration
	BatchSize     int
	FlushInterval time.Duration
}

// logShipper is a zapcore.WriteSyncer. Writes never block the caller; when the
// queue is full the entry is dropped and counted.
type logShipper struct {
	cfg       logShipperConfig
	client    *http.Client
	queue     chan []byte
	queueMu   sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
	wg        sync.WaitGroup
	dropped   atomic.Uint64
}

func newLogShipper(cfg logShipperConfig) *logShipper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 2 * time.Second
	}

	s := &logShipper{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		queue:  make(chan []byte, logShipQueueSize),
	}
	s.wg.Add(1)
	go s.run()

	return s
}

func (s *logShipper) Write(p []byte) (int, error) {
	payload := bytes.TrimSpace(p)
	if len(payload) == 0 {
		return len(p), nil
	}

	s.queueMu.RLock()
	defer s.queueMu.RUnlock()
	if s.closed.Load() {
		return len(p), nil
	}

	// zap reuses its buffer after Write returns.
	copied := make([]byte, len(payload))
	copy(copied, payload)

	select {
	case s.queue <- copied:
	default:
		dropped := s.dropped.Add(1)
		if dropped == 1 || dropped%100 == 0 {
			fmt.Fprintf(os.Stderr, "log ship queue full; dropped logs=%d\n", dropped)
		}
	}

	return len(p), nil
}

func (s *logShipper) Sync() error {
	return nil
}

func (s *logShipper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	batch := bytebufferpool.Get()
	defer bytebufferpool.Put(batch)
	pending := 0

	flush := func() {
		if pending == 0 {
			return
		}
		s.send(batch.B)
		batch.Reset()
		pending = 0
	}

	for {
		select {
		case entry, ok := <-s.queue:
			if !ok {
				flush()
				return
			}
			_, _ = batch.Write(entry)
			_ = batch.WriteByte('\n')
			pending++
			if pending >= s.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *logShipper) send(body []byte) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "log ship create request failed: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-ndjson")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log ship send failed: %v\n", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		fmt.Fprintf(os.Stderr, "log ship got non-2xx status=%d\n", resp.StatusCode)
	}
}

// Close stops accepting entries and waits for the queue to drain.
func (s *logShipper) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.closeOnce.Do(func() {
		s.queueMu.Lock()
		s.closed.Store(true)
		close(s.queue)
		s.queueMu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
