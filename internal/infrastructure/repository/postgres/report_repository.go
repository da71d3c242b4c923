package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-scouting/internal/domain/report"
	qb "github.com/riskibarqy/football-scouting/internal/platform/querybuilder"
)

var (
	matchReportColumns      = selectColumns(matchReportInsertModel{})
	individualReportColumns = selectColumns(individualReportInsertModel{})
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) ListMatch(ctx context.Context) ([]report.MatchReport, error) {
	query, args, err := qb.Select(matchReportColumns...).From("match_reports").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match reports query: %w", err)
	}

	var rows []matchReportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match reports: %w", err)
	}
	out := make([]report.MatchReport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ReportRepository) AppendMatch(ctx context.Context, reports ...report.MatchReport) error {
	if len(reports) == 0 {
		return nil
	}
	return withTx(ctx, r.db, "append match reports", func(tx *sqlx.Tx) error {
		rows := make([]any, 0, len(reports))
		for _, rep := range reports {
			rows = append(rows, toMatchReportInsert(rep))
		}
		return insertRows(ctx, tx, "match_reports", rows)
	})
}

// UpdateMatch locks the report rows and matches the key in Go, where the
// comparison ignores accents as well as case.
func (r *ReportRepository) UpdateMatch(ctx context.Context, key report.Key, fn func(report.MatchReport) (report.MatchReport, error)) (int, error) {
	updated := 0
	err := withTx(ctx, r.db, "update match reports", func(tx *sqlx.Tx) error {
		query, args, err := qb.Select(matchReportColumns...).From("match_reports").OrderBy("id").ToSQL()
		if err != nil {
			return fmt.Errorf("build select match reports query: %w", err)
		}

		var rows []matchReportTableModel
		if err := tx.SelectContext(ctx, &rows, query+" FOR UPDATE", args...); err != nil {
			return fmt.Errorf("lock match reports: %w", err)
		}

		for _, row := range rows {
			current := row.toDomain()
			if !key.Matches(current) {
				continue
			}
			next, err := fn(current)
			if err != nil {
				return err
			}

			m := toMatchReportInsert(next)
			cols, vals, err := qb.Columns(m)
			if err != nil {
				return fmt.Errorf("columns for match report: %w", err)
			}
			ub := qb.Update("match_reports")
			for i, col := range cols {
				ub.Set(col, vals[i])
			}
			ub.SetExpr("updated_at", "NOW()")
			updateSQL, updateArgs, err := ub.Where(qb.Eq("id", row.ID)).ToSQL()
			if err != nil {
				return fmt.Errorf("build update match report query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
				return fmt.Errorf("update match report %d: %w", row.ID, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (r *ReportRepository) ListIndividual(ctx context.Context) ([]report.IndividualReport, error) {
	query, args, err := qb.Select(individualReportColumns...).From("individual_reports").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select individual reports query: %w", err)
	}

	var rows []individualReportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select individual reports: %w", err)
	}
	out := make([]report.IndividualReport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ReportRepository) AppendIndividual(ctx context.Context, reports ...report.IndividualReport) error {
	if len(reports) == 0 {
		return nil
	}
	return withTx(ctx, r.db, "append individual reports", func(tx *sqlx.Tx) error {
		rows := make([]any, 0, len(reports))
		for _, rep := range reports {
			rows = append(rows, toIndividualReportInsert(rep))
		}
		return insertRows(ctx, tx, "individual_reports", rows)
	})
}
