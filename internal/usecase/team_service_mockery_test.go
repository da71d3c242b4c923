package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-scouting/internal/domain/team"
	teammock "github.com/riskibarqy/football-scouting/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_ListTeamsResolvesLogos(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	service := NewTeamService(repo, nil)

	repo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "Saudi Pro League").
		Return([]team.Team{
			{Name: "Al-Nassr", League: "Saudi Pro League"},
			{Name: "Unknown FC", League: "Saudi Pro League"},
		}, nil).
		Once()

	got, err := service.ListTeams(ctx, " Saudi Pro League ")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got) != 2 || got[0].Logo != "alnassr.png" || got[1].Logo != team.PlaceholderLogo {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestTeamService_ListLeagues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	service := NewTeamService(repo, nil)

	repo.On("List", ctx).Return([]team.Team{
		{Name: "Spain", League: "U17"},
		{Name: "France", League: "U17"},
		{Name: "Italy", League: "U19"},
	}, nil).Once()

	got, err := service.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != 2 || got[0] != "U17" || got[1] != "U19" {
		t.Fatalf("unexpected leagues: %v", got)
	}
}
