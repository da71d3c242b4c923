package httpapi

import (
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/fixture"
	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/session"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	"github.com/riskibarqy/football-scouting/internal/domain/standing"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
	"github.com/riskibarqy/football-scouting/internal/usecase"
)

type loginRequest struct {
	Scout    string `json:"scout" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type preferencesRequest struct {
	Language *string `json:"language" validate:"omitempty,oneof=es en"`
	Page     *string `json:"page" validate:"omitempty,min=1,max=64"`
}

// matchReportRequest carries only size limits; report.MatchReport.Validate
// reports the field rules.
type matchReportRequest struct {
	Category      string `json:"category" validate:"max=100"`
	Scout         string `json:"scout" validate:"max=100"`
	Player        string `json:"player" validate:"max=200"`
	Team          string `json:"team" validate:"max=200"`
	Match         string `json:"match" validate:"max=200"`
	MatchDate     string `json:"matchDate" validate:"max=10"`
	ReportDate    string `json:"reportDate" validate:"max=10"`
	Position      string `json:"position" validate:"max=50"`
	Foot          string `json:"foot" validate:"max=20"`
	Performance   int    `json:"performance"`
	Potential     int    `json:"potential"`
	Narrative     string `json:"narrative" validate:"max=20000"`
	Conclusion    string `json:"conclusion" validate:"max=40"`
	ContractAgent string `json:"contractAgent" validate:"max=500"`
}

func (r matchReportRequest) toDomain(defaultScout string) report.MatchReport {
	scout := strings.TrimSpace(r.Scout)
	if scout == "" {
		scout = defaultScout
	}
	return report.MatchReport{
		Category:      r.Category,
		Scout:         scout,
		Player:        r.Player,
		Team:          r.Team,
		Match:         r.Match,
		MatchDate:     strings.TrimSpace(r.MatchDate),
		ReportDate:    strings.TrimSpace(r.ReportDate),
		Position:      r.Position,
		Foot:          report.Foot(r.Foot),
		Performance:   r.Performance,
		Potential:     r.Potential,
		Narrative:     r.Narrative,
		Conclusion:    report.Conclusion(r.Conclusion),
		ContractAgent: r.ContractAgent,
	}
}

type matchReportUpdateRequest struct {
	Scout         string  `json:"scout" validate:"max=100"`
	Match         string  `json:"match" validate:"required,max=200"`
	Player        string  `json:"player" validate:"required,max=200"`
	ReportDate    *string `json:"reportDate" validate:"omitempty,max=10"`
	Position      *string `json:"position" validate:"omitempty,max=50"`
	Foot          *string `json:"foot" validate:"omitempty,max=20"`
	Performance   *int    `json:"performance"`
	Potential     *int    `json:"potential"`
	Narrative     *string `json:"narrative" validate:"omitempty,max=20000"`
	Conclusion    *string `json:"conclusion" validate:"omitempty,max=40"`
	ContractAgent *string `json:"contractAgent" validate:"omitempty,max=500"`
}

func (r matchReportUpdateRequest) key(defaultScout string) report.Key {
	scout := strings.TrimSpace(r.Scout)
	if scout == "" {
		scout = defaultScout
	}
	return report.Key{Scout: scout, Match: r.Match, Player: r.Player}
}

func (r matchReportUpdateRequest) patch() report.MatchPatch {
	p := report.MatchPatch{
		ReportDate:    r.ReportDate,
		Position:      r.Position,
		Performance:   r.Performance,
		Potential:     r.Potential,
		Narrative:     r.Narrative,
		ContractAgent: r.ContractAgent,
	}
	if r.Foot != nil {
		foot := report.Foot(*r.Foot)
		p.Foot = &foot
	}
	if r.Conclusion != nil {
		c := report.Conclusion(*r.Conclusion)
		p.Conclusion = &c
	}
	return p
}

type individualReportRequest struct {
	Scout       string `json:"scout" validate:"max=100"`
	Player      string `json:"player" validate:"max=200"`
	Team        string `json:"team" validate:"max=200"`
	BirthYear   string `json:"birthYear" validate:"omitempty,numeric,len=4"`
	Date        string `json:"date" validate:"max=10"`
	Position    string `json:"position" validate:"max=50"`
	Foot        string `json:"foot" validate:"max=20"`
	ProfileTier int    `json:"profileTier"`
	Narrative   string `json:"narrative" validate:"max=20000"`
	Conclusion  string `json:"conclusion" validate:"max=40"`
	PhotoPath   string `json:"photoPath" validate:"max=500"`
}

func (r individualReportRequest) toDomain(defaultScout string) report.IndividualReport {
	scout := strings.TrimSpace(r.Scout)
	if scout == "" {
		scout = defaultScout
	}
	return report.IndividualReport{
		Scout:       scout,
		Player:      r.Player,
		Team:        r.Team,
		BirthYear:   strings.TrimSpace(r.BirthYear),
		Date:        strings.TrimSpace(r.Date),
		Position:    r.Position,
		Foot:        report.Foot(r.Foot),
		ProfileTier: r.ProfileTier,
		Narrative:   r.Narrative,
		Conclusion:  report.Conclusion(r.Conclusion),
		PhotoPath:   r.PhotoPath,
	}
}

type squadPlayerPatchRequest struct {
	Position   *string `json:"position" validate:"omitempty,max=50"`
	Evaluation *string `json:"evaluation" validate:"omitempty,max=40"`
	Notes      *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r squadPlayerPatchRequest) toDomain() squad.Patch {
	p := squad.Patch{Position: r.Position, Notes: r.Notes}
	if r.Evaluation != nil {
		eval := squad.Evaluation(*r.Evaluation)
		p.Evaluation = &eval
	}
	return p
}

type sessionDTO struct {
	Scout     string    `json:"scout"`
	Language  string    `json:"language"`
	Page      string    `json:"page"`
	Drafts    int       `json:"drafts"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type loginResponse struct {
	Token   string     `json:"token"`
	Session sessionDTO `json:"session"`
}

type squadPlayerDTO struct {
	Row         int    `json:"row"`
	Team        string `json:"team"`
	Name        string `json:"name"`
	ShirtNumber string `json:"shirtNumber"`
	Position    string `json:"position"`
	BirthYear   string `json:"birthYear"`
	Caps        string `json:"caps"`
	Evaluation  string `json:"evaluation"`
	Notes       string `json:"notes"`
}

type updatedDTO struct {
	Updated int `json:"updated"`
}

func sessionToDTO(s session.Session) sessionDTO {
	return sessionDTO{
		Scout:     s.Scout,
		Language:  string(s.Language),
		Page:      s.Page,
		Drafts:    len(s.Drafts),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func squadPlayerToDTO(p squad.Player) squadPlayerDTO {
	return squadPlayerDTO{
		Row:         p.Row,
		Team:        p.Team,
		Name:        p.Name,
		ShirtNumber: p.ShirtNumber,
		Position:    p.Position,
		BirthYear:   p.BirthYear,
		Caps:        p.Caps,
		Evaluation:  string(p.Evaluation),
		Notes:       p.Notes,
	}
}

func reportFilterFromQuery(q url.Values) report.Filter {
	return report.Filter{
		Category:   strings.TrimSpace(q.Get("category")),
		Scout:      strings.TrimSpace(q.Get("scout")),
		Team:       strings.TrimSpace(q.Get("team")),
		Player:     strings.TrimSpace(q.Get("player")),
		Position:   strings.TrimSpace(q.Get("position")),
		Conclusion: report.Conclusion(strings.TrimSpace(q.Get("conclusion"))),
	}
}

// standingsWithLogos fills the placeholder for rows whose team has no asset.
func standingsWithLogos(res usecase.ScrapeResult[standing.Standing]) usecase.ScrapeResult[standing.Standing] {
	items := make([]standing.Standing, len(res.Items))
	for i, s := range res.Items {
		if s.Logo == "" {
			s.Logo = team.PlaceholderLogo
		}
		items[i] = s
	}
	res.Items = items
	return res
}

func scheduleWithLogos(res usecase.ScrapeResult[fixture.Match]) usecase.ScrapeResult[fixture.Match] {
	items := make([]fixture.Match, len(res.Items))
	for i, m := range res.Items {
		if m.HomeLogo == "" {
			m.HomeLogo = team.PlaceholderLogo
		}
		if m.AwayLogo == "" {
			m.AwayLogo = team.PlaceholderLogo
		}
		items[i] = m
	}
	res.Items = items
	return res
}
