package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
	"github.com/riskibarqy/football-scouting/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/football-scouting/internal/platform/cache"
)

type countingTeams struct {
	team.Repository
	lists int
}

func (c *countingTeams) List(ctx context.Context) ([]team.Team, error) {
	c.lists++
	return c.Repository.List(ctx)
}

func TestTeamRepositoryCachesUntilWrite(t *testing.T) {
	ctx := context.Background()
	next := &countingTeams{Repository: memory.NewTeamRepository(memory.SeedTeams())}
	repo := NewTeamRepository(next, basecache.NewStore[[]team.Team](time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := repo.List(ctx); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	if next.lists != 1 {
		t.Fatalf("expected one underlying read, got %d", next.lists)
	}

	if err := repo.ReplaceAll(ctx, []team.Team{{Name: "Italy", League: "U19"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if next.lists != 2 || len(items) != 1 || items[0].Name != "Italy" {
		t.Fatalf("stale cache after write: lists=%d items=%+v", next.lists, items)
	}
}

func TestReportRepositoryInvalidatesOnAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(
		memory.NewReportRepository(),
		basecache.NewStore[[]report.MatchReport](time.Minute),
		basecache.NewStore[[]report.IndividualReport](time.Minute),
	)

	if items, _ := repo.ListMatch(ctx); len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
	if err := repo.AppendMatch(ctx, report.MatchReport{Player: "Pedri"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	items, _ := repo.ListMatch(ctx)
	if len(items) != 1 {
		t.Fatalf("expected appended report to be visible, got %d", len(items))
	}
}
