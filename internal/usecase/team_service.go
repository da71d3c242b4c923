package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/domain/team"
)

// TeamView is a team with its resolved logo asset.
type TeamView struct {
	Name   string `json:"name"`
	League string `json:"league"`
	Logo   string `json:"logo"`
}

type TeamService struct {
	repo  team.Repository
	logos *team.LogoResolver
}

func NewTeamService(repo team.Repository, logos *team.LogoResolver) *TeamService {
	if logos == nil {
		logos = team.NewLogoResolver(team.DefaultLogos)
	}
	return &TeamService{repo: repo, logos: logos}
}

func (s *TeamService) ListLeagues(ctx context.Context) ([]string, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return team.Leagues(teams), nil
}

// ListTeams returns every team when league is empty.
func (s *TeamService) ListTeams(ctx context.Context, league string) ([]TeamView, error) {
	var (
		teams []team.Team
		err   error
	)
	if league = strings.TrimSpace(league); league == "" {
		teams, err = s.repo.List(ctx)
	} else {
		teams, err = s.repo.ListByLeague(ctx, league)
	}
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamView{Name: t.Name, League: t.League, Logo: s.logos.ResolveOrPlaceholder(t.Name)})
	}
	return out, nil
}
