package squad

import "context"

// Repository stores one squad per team; writes replace the whole squad.
type Repository interface {
	ListTeams(ctx context.Context) ([]string, error)
	ListByTeam(ctx context.Context, team string) ([]Player, error)
	ReplaceTeam(ctx context.Context, team string, players []Player) error
}
