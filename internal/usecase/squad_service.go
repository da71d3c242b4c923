package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
	"go.opentelemetry.io/otel/attribute"
)

type SquadService struct {
	repo   squad.Repository
	logger *logging.Logger
}

func NewSquadService(repo squad.Repository, logger *logging.Logger) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SquadService{repo: repo, logger: logger}
}

func (s *SquadService) ListTeams(ctx context.Context) ([]string, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list squad teams: %w", err)
	}
	return teams, nil
}

func (s *SquadService) ListSquad(ctx context.Context, teamName string) ([]squad.Player, error) {
	ctx, span := startSpan(ctx, "usecase.SquadService.ListSquad", attribute.String("team", teamName))
	defer span.End()

	teamName, err := s.resolveTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}
	players, err := s.repo.ListByTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("list squad: %w", err)
	}
	return players, nil
}

// UpdatePlayer edits one row in place and rewrites the whole squad. Rows
// have no stable id, so row is the position returned by ListSquad.
func (s *SquadService) UpdatePlayer(ctx context.Context, teamName string, row int, patch squad.Patch) (squad.Player, error) {
	ctx, span := startSpan(ctx, "usecase.SquadService.UpdatePlayer", attribute.String("team", teamName), attribute.Int("row", row))
	defer span.End()

	if patch.Empty() {
		return squad.Player{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if patch.Evaluation != nil {
		eval, err := squad.ParseEvaluation(string(*patch.Evaluation))
		if err != nil {
			return squad.Player{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		patch.Evaluation = &eval
	}

	teamName, err := s.resolveTeam(ctx, teamName)
	if err != nil {
		return squad.Player{}, err
	}
	players, err := s.repo.ListByTeam(ctx, teamName)
	if err != nil {
		return squad.Player{}, fmt.Errorf("list squad: %w", err)
	}
	if row < 0 || row >= len(players) {
		return squad.Player{}, fmt.Errorf("%w: %s has no row %d", ErrNotFound, teamName, row)
	}

	players[row] = patch.Apply(players[row])
	if err := s.repo.ReplaceTeam(ctx, teamName, players); err != nil {
		return squad.Player{}, fmt.Errorf("save squad: %w", err)
	}
	s.logger.InfoContext(ctx, "squad player updated", "team", teamName, "row", row)
	return players[row], nil
}

func (s *SquadService) resolveTeam(ctx context.Context, teamName string) (string, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return "", fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return "", fmt.Errorf("list squad teams: %w", err)
	}
	for _, name := range teams {
		if textnorm.Equal(name, teamName) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: squad %s", ErrNotFound, teamName)
}
