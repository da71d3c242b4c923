// Package querybuilder assembles PostgreSQL statements with $n placeholders.
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// writer accumulates SQL text and positional arguments.
type writer struct {
	sb   strings.Builder
	args []any
}

func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.sb.WriteString("$")
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes an expression where each '?' binds the next argument.
func (w *writer) expr(text string, args []any) {
	next := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sb.WriteByte(text[i])
	}
}

func (w *writer) where(conds []Condition) {
	if len(conds) == 0 {
		return
	}
	w.sb.WriteString(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			w.sb.WriteString(" AND ")
		}
		c.write(w)
	}
}

type Condition interface {
	write(w *writer)
}

type condFunc func(w *writer)

func (f condFunc) write(w *writer) { f(w) }

func Eq(column string, value any) Condition {
	return condFunc(func(w *writer) {
		w.sb.WriteString(column)
		w.sb.WriteString(" = ")
		w.bind(value)
	})
}

// EqFold compares case-insensitively.
func EqFold(column, value string) Condition {
	return condFunc(func(w *writer) {
		w.sb.WriteString("lower(")
		w.sb.WriteString(column)
		w.sb.WriteString(") = lower(")
		w.bind(value)
		w.sb.WriteString(")")
	})
}

func In(column string, values []any) Condition {
	return condFunc(func(w *writer) {
		if len(values) == 0 {
			w.sb.WriteString("1=0")
			return
		}
		w.sb.WriteString(column)
		w.sb.WriteString(" IN (")
		for i, v := range values {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.bind(v)
		}
		w.sb.WriteString(")")
	})
}

func Expr(text string, args ...any) Condition {
	return condFunc(func(w *writer) { w.expr(text, args) })
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, errors.New("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("select table is required")
	}

	var w writer
	w.sb.WriteString("SELECT ")
	w.sb.WriteString(strings.Join(b.columns, ", "))
	w.sb.WriteString(" FROM ")
	w.sb.WriteString(b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.sb.WriteString(" ORDER BY ")
		w.sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.sb.WriteString(" LIMIT ")
		w.sb.WriteString(strconv.Itoa(b.limit))
	}
	return w.sb.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("insert table is required")
	case len(b.columns) == 0:
		return "", nil, errors.New("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, errors.New("insert values are required")
	}

	var w writer
	w.sb.WriteString("INSERT INTO ")
	w.sb.WriteString(b.table)
	w.sb.WriteString(" (")
	w.sb.WriteString(strings.Join(b.columns, ", "))
	w.sb.WriteString(") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.sb.WriteString("(")
		for j, v := range row {
			if j > 0 {
				w.sb.WriteString(", ")
			}
			w.bind(v)
		}
		w.sb.WriteString(")")
	}
	if b.suffix != "" {
		w.sb.WriteString(" ")
		w.sb.WriteString(b.suffix)
	}
	return w.sb.String(), w.args, nil
}

type assignment struct {
	column string
	value  any
	raw    string
	args   []any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, raw: expr, args: args})
	return b
}

func (b *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, errors.New("update sets are required")
	}

	var w writer
	w.sb.WriteString("UPDATE ")
	w.sb.WriteString(b.table)
	w.sb.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		w.sb.WriteString(s.column)
		w.sb.WriteString(" = ")
		if s.raw != "" {
			w.expr(s.raw, s.args)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)
	return w.sb.String(), w.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conds ...Condition) *DeleteBuilder {
	b.where = append(b.where, conds...)
	return b
}

// ToSQL refuses an unconditioned delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, errors.New("delete requires a where clause")
	}
	var w writer
	w.sb.WriteString("DELETE FROM ")
	w.sb.WriteString(b.table)
	w.where(b.where)
	return w.sb.String(), w.args, nil
}
