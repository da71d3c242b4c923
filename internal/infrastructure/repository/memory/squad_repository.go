package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/football-scouting/internal/domain/squad"
)

// SquadRepository keys squads by lower-cased team name, mirroring the
// case-insensitive sheet lookup of the workbook store.
type SquadRepository struct {
	mu     sync.RWMutex
	names  map[string]string
	squads map[string][]squad.Player
}

func NewSquadRepository(squads map[string][]squad.Player) *SquadRepository {
	r := &SquadRepository{
		names:  make(map[string]string),
		squads: make(map[string][]squad.Player),
	}
	for teamName, players := range squads {
		r.put(teamName, players)
	}
	return r
}

func (r *SquadRepository) ListTeams(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (r *SquadRepository) ListByTeam(_ context.Context, teamName string) ([]squad.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]squad.Player(nil), r.squads[squadKey(teamName)]...), nil
}

func (r *SquadRepository) ReplaceTeam(_ context.Context, teamName string, players []squad.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(teamName, players)
	return nil
}

func (r *SquadRepository) put(teamName string, players []squad.Player) {
	key := squadKey(teamName)
	if _, ok := r.names[key]; !ok {
		r.names[key] = strings.TrimSpace(teamName)
	}
	rows := make([]squad.Player, len(players))
	for i, p := range players {
		p.Row = i
		p.Team = r.names[key]
		rows[i] = p
	}
	r.squads[key] = rows
}

func squadKey(teamName string) string {
	return strings.ToLower(strings.TrimSpace(teamName))
}
