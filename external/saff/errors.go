package saff

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/football-scouting/internal/usecase"
)

var (
	// ErrFetchFailed covers unreachable hosts, non-2xx statuses and an open
	// circuit breaker.
	ErrFetchFailed = usecase.ErrScrapeFetch
	// ErrParseFailed means the page no longer has the expected shape.
	ErrParseFailed = usecase.ErrScrapeParse

	errTransient = crerr.New("transient upstream failure")
)

func fetchFailed(err error, pageURL string) error {
	return fmt.Errorf("%w: %s: %w", ErrFetchFailed, pageURL, err)
}

func parseFailed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParseFailed, fmt.Sprintf(format, args...))
}
