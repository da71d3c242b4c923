package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByLeague(ctx context.Context, league string) ([]Team, error)
	ReplaceAll(ctx context.Context, teams []Team) error
}
