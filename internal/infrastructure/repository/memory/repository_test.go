package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/session"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
)

func TestReportRepositoryUpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository()
	first := report.MatchReport{Scout: "ana", Match: "A vs B", Player: "Pedri", Performance: 3}
	second := report.MatchReport{Scout: "ana", Match: "A vs B", Player: "Pedri", Performance: 4}
	_ = repo.AppendMatch(ctx, first, second)

	calls := 0
	_, err := repo.UpdateMatch(ctx, report.Key{Scout: "ana", Match: "A vs B", Player: "pedri"}, func(r report.MatchReport) (report.MatchReport, error) {
		calls++
		if calls == 2 {
			return r, errors.New("second fails")
		}
		r.Performance = 1
		return r, nil
	})
	if err == nil {
		t.Fatal("expected error")
	}

	got, _ := repo.ListMatch(ctx)
	if got[0].Performance != 3 || got[1].Performance != 4 {
		t.Fatalf("partial update leaked: %+v", got)
	}
}

func TestSquadRepositoryRenumbersRows(t *testing.T) {
	ctx := context.Background()
	repo := NewSquadRepository(SeedSquads())

	players, _ := repo.ListByTeam(ctx, "spain")
	if len(players) != 2 || players[1].Row != 1 || players[1].Team != "Spain" {
		t.Fatalf("unexpected players: %+v", players)
	}

	_ = repo.ReplaceTeam(ctx, "SPAIN", []squad.Player{{Name: "Solo", Row: 7}})
	players, _ = repo.ListByTeam(ctx, "Spain")
	if len(players) != 1 || players[0].Row != 0 {
		t.Fatalf("rows not renumbered: %+v", players)
	}

	teams, _ := repo.ListTeams(ctx)
	if len(teams) != 2 || teams[0] != "France" || teams[1] != "Spain" {
		t.Fatalf("unexpected teams: %v", teams)
	}
}

func TestSessionRepositoryDropsExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	s := session.Session{ID: "abc", Scout: "ana", ExpiresAt: now.Add(time.Minute)}
	s.Drafts = []report.MatchReport{{Player: "Pedri"}}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Drafts[0].Player = "mutated"

	got, ok, err := repo.Get(ctx, "abc")
	if err != nil || !ok {
		t.Fatalf("expected session, got ok=%v err=%v", ok, err)
	}
	if got.Drafts[0].Player != "Pedri" {
		t.Fatalf("stored session shares draft slice: %+v", got.Drafts)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := repo.Get(ctx, "abc"); ok {
		t.Fatal("expired session should not be returned")
	}
}
