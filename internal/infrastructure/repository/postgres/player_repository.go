package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-scouting/internal/domain/player"
	qb "github.com/riskibarqy/football-scouting/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(selectColumns(playerInsertModel{})...).From("players").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ReplaceAll loads a player database export, replacing what is stored.
func (r *PlayerRepository) ReplaceAll(ctx context.Context, players []player.Player) error {
	return withTx(ctx, r.db, "replace players", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM players`); err != nil {
			return fmt.Errorf("clear players: %w", err)
		}
		rows := make([]any, 0, len(players))
		for _, p := range players {
			rows = append(rows, playerInsertModel{
				Name: p.Name, Country: p.Country, Club: p.Club, Position: p.Position,
				BirthYear: p.BirthYear, Foot: p.Foot, Agent: p.Agent, Notes: p.Notes,
			})
		}
		return insertRows(ctx, tx, "players", rows)
	})
}
