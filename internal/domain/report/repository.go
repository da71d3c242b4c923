package report

import "context"

// Repository persists scout reports. UpdateMatch rewrites every report
// addressed by key and returns how many were changed. An error from fn
// aborts the update without writing.
type Repository interface {
	ListMatch(ctx context.Context) ([]MatchReport, error)
	AppendMatch(ctx context.Context, reports ...MatchReport) error
	UpdateMatch(ctx context.Context, key Key, fn func(MatchReport) (MatchReport, error)) (int, error)

	ListIndividual(ctx context.Context) ([]IndividualReport, error)
	AppendIndividual(ctx context.Context, reports ...IndividualReport) error
}
