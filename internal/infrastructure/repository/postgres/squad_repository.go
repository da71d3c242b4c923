package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	qb "github.com/riskibarqy/football-scouting/internal/platform/querybuilder"
)

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) ListTeams(ctx context.Context) ([]string, error) {
	const query = `
SELECT DISTINCT ON (lower(team)) team
FROM squad_players
ORDER BY lower(team), id`

	var names []string
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("select squad teams: %w", err)
	}
	return names, nil
}

func (r *SquadRepository) ListByTeam(ctx context.Context, teamName string) ([]squad.Player, error) {
	query, args, err := qb.Select(selectColumns(squadPlayerInsertModel{})...).From("squad_players").
		Where(qb.EqFold("team", strings.TrimSpace(teamName))).
		OrderBy("row_index").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select squad query: %w", err)
	}

	var rows []squadPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select squad %s: %w", teamName, err)
	}
	out := make([]squad.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ReplaceTeam rewrites the squad keeping the team spelling already stored.
func (r *SquadRepository) ReplaceTeam(ctx context.Context, teamName string, players []squad.Player) error {
	teamName = strings.TrimSpace(teamName)
	return withTx(ctx, r.db, "replace squad", func(tx *sqlx.Tx) error {
		var stored string
		err := tx.GetContext(ctx, &stored, `SELECT team FROM squad_players WHERE lower(team) = lower($1) ORDER BY id LIMIT 1`, teamName)
		switch {
		case err == nil:
			teamName = stored
		case !isNotFound(err):
			return fmt.Errorf("lookup squad team: %w", err)
		}

		query, args, err := qb.DeleteFrom("squad_players").Where(qb.EqFold("team", teamName)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete squad query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear squad %s: %w", teamName, err)
		}

		rows := make([]any, 0, len(players))
		for i, p := range players {
			rows = append(rows, toSquadPlayerInsert(teamName, i, p))
		}
		return insertRows(ctx, tx, "squad_players", rows)
	})
}
