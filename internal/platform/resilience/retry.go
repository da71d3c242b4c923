package resilience

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var errPermanent = crerr.New("permanent failure")

// Permanent marks err so Retry stops immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, errPermanent)
}

func IsPermanent(err error) bool {
	return crerr.Is(err, errPermanent)
}

type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, BaseDelay: 500 * time.Millisecond, MaxDelay: 8 * time.Second}
}

// Backoff returns the wait before the given retry (1-based): base, 2*base,
// 4*base and so on, capped at MaxDelay.
func (p RetryPolicy) Backoff(retry int) time.Duration {
	if retry < 1 || p.BaseDelay <= 0 {
		return 0
	}
	d := p.BaseDelay
	for i := 1; i < retry; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Retry runs fn until it succeeds, returns a Permanent error, the context is
// done, or the attempt budget is spent. The last error is returned.
func Retry(ctx context.Context, p RetryPolicy, fn func(ctx context.Context, attempt int) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx, attempt)
		if err == nil || IsPermanent(err) || attempt == attempts {
			return err
		}

		wait := p.Backoff(attempt)
		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return crerr.Wrapf(ctx.Err(), "retry interrupted after attempt %d: %v", attempt, err)
		case <-timer.C:
		}
	}
	return err
}
