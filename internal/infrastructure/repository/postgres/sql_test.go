package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation teams does not exist")) {
		t.Fatalf("expected unrelated error to be false")
	}
}

func TestSelectColumnsLeadsWithID(t *testing.T) {
	cols := selectColumns(teamInsertModel{})
	want := []string{"id", "name", "league", "position"}
	if len(cols) != len(want) {
		t.Fatalf("unexpected columns: %v", cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("column %d: expected %s, got %s", i, want[i], cols[i])
		}
	}
}

func TestBuildInsertBatchesRows(t *testing.T) {
	rows := []any{
		toMatchReportInsert(report.MatchReport{Scout: "ana", Player: "Pedri", Performance: 4}),
		toMatchReportInsert(report.MatchReport{Scout: "ana", Player: "Gavi", Performance: 5}),
	}

	query, args, err := buildInsert("match_reports", rows)
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	if len(args) != 28 {
		t.Fatalf("expected 28 args for two rows, got %d", len(args))
	}
	wantPrefix := "INSERT INTO match_reports (category, scout, player, team, match, "
	if len(query) < len(wantPrefix) || query[:len(wantPrefix)] != wantPrefix {
		t.Fatalf("unexpected query: %s", query)
	}
	if args[1] != "ana" || args[16] != "Gavi" {
		t.Fatalf("unexpected args: %v", args)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
