package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-scouting/internal/domain/player"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/memory"
)

func TestPlayerService_OptionsNarrowByOtherColumns(t *testing.T) {
	ctx := context.Background()
	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()))

	filter := player.Filter{player.ColumnCountry: "spain", player.ColumnClub: "Barcelona"}
	clubs, err := service.Options(ctx, player.ColumnClub, filter)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(clubs) != 2 || clubs[0] != "Barcelona" || clubs[1] != "Chelsea" {
		t.Fatalf("club options should ignore the club constraint itself, got %v", clubs)
	}

	got, err := service.Browse(ctx, filter)
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Pau Cubarsí" {
		t.Fatalf("unexpected players: %+v", got)
	}
}
