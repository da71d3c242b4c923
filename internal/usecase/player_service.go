package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-scouting/internal/domain/player"
)

type PlayerService struct {
	repo player.Repository
}

func NewPlayerService(repo player.Repository) *PlayerService {
	return &PlayerService{repo: repo}
}

func (s *PlayerService) Browse(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	ctx, span := startSpan(ctx, "usecase.PlayerService.Browse")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player database: %w", err)
	}
	return player.Apply(items, filter), nil
}

// Options lists the distinct values of column among players matching the
// other constraints of filter, so dropdowns narrow each other.
func (s *PlayerService) Options(ctx context.Context, column player.Column, filter player.Filter) ([]string, error) {
	others := make(player.Filter, len(filter))
	for col, v := range filter {
		if col != column {
			others[col] = v
		}
	}
	items, err := s.Browse(ctx, others)
	if err != nil {
		return nil, err
	}
	return player.Options(items, column), nil
}
