package postgres

import (
	"github.com/riskibarqy/football-scouting/internal/domain/player"
	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
)

// Insert models carry no id column; select models embed them and add it.

type teamInsertModel struct {
	Name     string `db:"name"`
	League   string `db:"league"`
	Position int    `db:"position"`
}

type teamTableModel struct {
	ID int64 `db:"id"`
	teamInsertModel
}

type squadPlayerInsertModel struct {
	Team        string `db:"team"`
	RowIndex    int    `db:"row_index"`
	Name        string `db:"name"`
	ShirtNumber string `db:"shirt_number"`
	Position    string `db:"position"`
	BirthYear   string `db:"birth_year"`
	Caps        string `db:"caps"`
	Evaluation  string `db:"evaluation"`
	Notes       string `db:"notes"`
}

type squadPlayerTableModel struct {
	ID int64 `db:"id"`
	squadPlayerInsertModel
}

type matchReportInsertModel struct {
	Category      string `db:"category"`
	Scout         string `db:"scout"`
	Player        string `db:"player"`
	Team          string `db:"team"`
	Match         string `db:"match"`
	MatchDate     string `db:"match_date"`
	ReportDate    string `db:"report_date"`
	Position      string `db:"position"`
	Foot          string `db:"foot"`
	Performance   int    `db:"performance"`
	Potential     int    `db:"potential"`
	Narrative     string `db:"narrative"`
	Conclusion    string `db:"conclusion"`
	ContractAgent string `db:"contract_agent"`
}

type matchReportTableModel struct {
	ID int64 `db:"id"`
	matchReportInsertModel
}

type individualReportInsertModel struct {
	Scout       string `db:"scout"`
	Player      string `db:"player"`
	Team        string `db:"team"`
	BirthYear   string `db:"birth_year"`
	Date        string `db:"report_date"`
	Position    string `db:"position"`
	Foot        string `db:"foot"`
	ProfileTier int    `db:"profile_tier"`
	Narrative   string `db:"narrative"`
	Conclusion  string `db:"conclusion"`
	PhotoPath   string `db:"photo_path"`
}

type individualReportTableModel struct {
	ID int64 `db:"id"`
	individualReportInsertModel
}

type playerInsertModel struct {
	Name      string `db:"name"`
	Country   string `db:"country"`
	Club      string `db:"club"`
	Position  string `db:"position"`
	BirthYear string `db:"birth_year"`
	Foot      string `db:"foot"`
	Agent     string `db:"agent"`
	Notes     string `db:"notes"`
}

type playerTableModel struct {
	ID int64 `db:"id"`
	playerInsertModel
}

func toTeamInsert(t team.Team, position int) teamInsertModel {
	return teamInsertModel{Name: t.Name, League: t.League, Position: position}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{Name: m.Name, League: m.League}
}

func toSquadPlayerInsert(teamName string, row int, p squad.Player) squadPlayerInsertModel {
	return squadPlayerInsertModel{
		Team:        teamName,
		RowIndex:    row,
		Name:        p.Name,
		ShirtNumber: p.ShirtNumber,
		Position:    p.Position,
		BirthYear:   p.BirthYear,
		Caps:        p.Caps,
		Evaluation:  string(p.Evaluation),
		Notes:       p.Notes,
	}
}

func (m squadPlayerTableModel) toDomain() squad.Player {
	return squad.Player{
		Row:         m.RowIndex,
		Team:        m.Team,
		Name:        m.Name,
		ShirtNumber: m.ShirtNumber,
		Position:    m.Position,
		BirthYear:   m.BirthYear,
		Caps:        m.Caps,
		Evaluation:  squad.Evaluation(m.Evaluation),
		Notes:       m.Notes,
	}
}

func toMatchReportInsert(r report.MatchReport) matchReportInsertModel {
	return matchReportInsertModel{
		Category:      r.Category,
		Scout:         r.Scout,
		Player:        r.Player,
		Team:          r.Team,
		Match:         r.Match,
		MatchDate:     r.MatchDate,
		ReportDate:    r.ReportDate,
		Position:      r.Position,
		Foot:          string(r.Foot),
		Performance:   r.Performance,
		Potential:     r.Potential,
		Narrative:     r.Narrative,
		Conclusion:    string(r.Conclusion),
		ContractAgent: r.ContractAgent,
	}
}

func (m matchReportTableModel) toDomain() report.MatchReport {
	return report.MatchReport{
		Category:      m.Category,
		Scout:         m.Scout,
		Player:        m.Player,
		Team:          m.Team,
		Match:         m.Match,
		MatchDate:     m.MatchDate,
		ReportDate:    m.ReportDate,
		Position:      m.Position,
		Foot:          report.Foot(m.Foot),
		Performance:   m.Performance,
		Potential:     m.Potential,
		Narrative:     m.Narrative,
		Conclusion:    report.Conclusion(m.Conclusion),
		ContractAgent: m.ContractAgent,
	}
}

func toIndividualReportInsert(r report.IndividualReport) individualReportInsertModel {
	return individualReportInsertModel{
		Scout:       r.Scout,
		Player:      r.Player,
		Team:        r.Team,
		BirthYear:   r.BirthYear,
		Date:        r.Date,
		Position:    r.Position,
		Foot:        string(r.Foot),
		ProfileTier: r.ProfileTier,
		Narrative:   r.Narrative,
		Conclusion:  string(r.Conclusion),
		PhotoPath:   r.PhotoPath,
	}
}

func (m individualReportTableModel) toDomain() report.IndividualReport {
	return report.IndividualReport{
		Scout:       m.Scout,
		Player:      m.Player,
		Team:        m.Team,
		BirthYear:   m.BirthYear,
		Date:        m.Date,
		Position:    m.Position,
		Foot:        report.Foot(m.Foot),
		ProfileTier: m.ProfileTier,
		Narrative:   m.Narrative,
		Conclusion:  report.Conclusion(m.Conclusion),
		PhotoPath:   m.PhotoPath,
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		Name:      m.Name,
		Country:   m.Country,
		Club:      m.Club,
		Position:  m.Position,
		BirthYear: m.BirthYear,
		Foot:      m.Foot,
		Agent:     m.Agent,
		Notes:     m.Notes,
	}
}
