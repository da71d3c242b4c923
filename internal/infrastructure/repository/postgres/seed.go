package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo teams, squads and player database into an
// empty schema. It does nothing once any team exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := NewTeamRepository(db).ReplaceAll(ctx, memory.SeedTeams()); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	squads := NewSquadRepository(db)
	for teamName, players := range memory.SeedSquads() {
		if err := squads.ReplaceTeam(ctx, teamName, players); err != nil {
			return fmt.Errorf("seed squad %s: %w", teamName, err)
		}
	}
	if err := NewPlayerRepository(db).ReplaceAll(ctx, memory.SeedPlayers()); err != nil {
		return fmt.Errorf("seed players: %w", err)
	}
	return nil
}
