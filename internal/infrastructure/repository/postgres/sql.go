package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/football-scouting/internal/platform/querybuilder"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// withTx runs fn in a transaction and commits when fn succeeds.
func withTx(ctx context.Context, db *sqlx.DB, name string, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for %s: %w", name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}

// insertRows writes rows (all of one model type) as a single multi-row
// insert. An empty batch is a no-op.
func insertRows(ctx context.Context, tx *sqlx.Tx, table string, rows []any) error {
	if len(rows) == 0 {
		return nil
	}
	query, args, err := buildInsert(table, rows)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

func buildInsert(table string, rows []any) (string, []any, error) {
	cols, _, err := qb.Columns(rows[0])
	if err != nil {
		return "", nil, fmt.Errorf("columns for %s: %w", table, err)
	}
	b := qb.InsertInto(table).Columns(cols...)
	for _, row := range rows {
		_, vals, err := qb.Columns(row)
		if err != nil {
			return "", nil, fmt.Errorf("values for %s: %w", table, err)
		}
		b.Values(vals...)
	}
	query, args, err := b.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build insert into %s: %w", table, err)
	}
	return query, args, nil
}

// selectColumns lists id followed by the insert model's columns, so audit
// columns such as created_at stay out of scans.
func selectColumns(model any) []string {
	cols, _, err := qb.Columns(model)
	if err != nil {
		panic(fmt.Sprintf("postgres: select columns: %v", err))
	}
	return append([]string{"id"}, cols...)
}
