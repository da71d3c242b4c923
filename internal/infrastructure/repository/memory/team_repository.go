package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-scouting/internal/domain/team"
	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{teams: append([]team.Team(nil), teams...)}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Team(nil), r.teams...), nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, league string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.teams {
		if textnorm.Equal(item.League, league) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) ReplaceAll(_ context.Context, teams []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = append([]team.Team(nil), teams...)
	return nil
}
