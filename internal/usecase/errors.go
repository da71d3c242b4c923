package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Scraper failure classes. Sources wrap these so callers can tell a network
// problem from a page whose layout changed.
var (
	ErrScrapeFetch = errors.New("scrape fetch failed")
	ErrScrapeParse = errors.New("scrape parse failed")
)
