package usecase

import (
	"context"

	"github.com/riskibarqy/football-scouting/internal/domain/fixture"
	"github.com/riskibarqy/football-scouting/internal/domain/standing"
)

// ChampionshipSource loads league tables and schedules from championship
// pages. Errors wrap ErrScrapeFetch or ErrScrapeParse.
type ChampionshipSource interface {
	FetchStandings(ctx context.Context, pageURL, caption string) ([]standing.Standing, error)
	FetchSchedule(ctx context.Context, pageURL, container string) ([]fixture.Match, error)
}

// ExternalSquadMember is a player listed by the external squad provider.
type ExternalSquadMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Role        string `json:"role"`
	ShirtNumber string `json:"shirtNumber"`
	Country     string `json:"country"`
	Age         int    `json:"age"`
	HeightCM    int    `json:"heightCm"`
}

// ExternalSquadSource returns the current squad of a provider team id.
type ExternalSquadSource interface {
	TeamSquad(ctx context.Context, teamID int64) ([]ExternalSquadMember, error)
}
