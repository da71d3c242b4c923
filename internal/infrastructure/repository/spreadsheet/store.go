package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/domain/player"
	"github.com/riskibarqy/football-scouting/internal/domain/report"
	"github.com/riskibarqy/football-scouting/internal/domain/squad"
	"github.com/riskibarqy/football-scouting/internal/domain/team"
	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

// Store exposes the workbooks under one data directory as domain
// repositories.
type Store struct {
	teams      *Workbook
	squads     *Workbook
	matches    *Workbook
	individual *Workbook
	players    *Workbook
}

func NewStore(dataDir string) *Store {
	return &Store{
		teams:      OpenWorkbook(filepath.Join(dataDir, TeamsFile)),
		squads:     OpenWorkbook(filepath.Join(dataDir, SquadsFile)),
		matches:    OpenWorkbook(filepath.Join(dataDir, MatchReportsFile)),
		individual: OpenWorkbook(filepath.Join(dataDir, IndividualReportsFile)),
		players:    OpenWorkbook(filepath.Join(dataDir, PlayerDatabaseFile)),
	}
}

func (s *Store) Teams() team.Repository     { return &TeamRepository{wb: s.teams} }
func (s *Store) Squads() squad.Repository   { return &SquadRepository{wb: s.squads} }
func (s *Store) Reports() report.Repository { return &ReportRepository{matches: s.matches, individual: s.individual} }
func (s *Store) Players() player.Repository { return &PlayerRepository{wb: s.players} }

type TeamRepository struct {
	wb *Workbook
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	recs, err := ReadRecords(r.wb, teamSchema)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make([]team.Team, 0, len(recs))
	for _, rec := range recs {
		out = append(out, team.Team{Name: rec.Get("name"), League: rec.Get("league")})
	}
	return out, nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, league string) ([]team.Team, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]team.Team, 0, len(all))
	for _, t := range all {
		if textnorm.Equal(t.League, league) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TeamRepository) ReplaceAll(ctx context.Context, teams []team.Team) error {
	return RewriteRecords(r.wb, teamSchema, func(m *Mapping, _ []Record) ([]Record, error) {
		out := make([]Record, 0, len(teams))
		for _, t := range teams {
			rec := m.NewRecord()
			rec.Set("name", t.Name)
			rec.Set("league", t.League)
			out = append(out, rec)
		}
		return out, nil
	})
}

// SquadRepository keeps one sheet per team in the squads workbook.
type SquadRepository struct {
	wb *Workbook
}

func (r *SquadRepository) ListTeams(ctx context.Context) ([]string, error) {
	sheets, err := r.wb.Sheets()
	if err != nil {
		return nil, fmt.Errorf("list squad sheets: %w", err)
	}
	sort.Strings(sheets)
	return sheets, nil
}

func (r *SquadRepository) ListByTeam(ctx context.Context, teamName string) ([]squad.Player, error) {
	recs, err := ReadRecords(r.wb, squadSchema(teamName))
	if err != nil {
		return nil, fmt.Errorf("list squad %s: %w", teamName, err)
	}
	out := make([]squad.Player, 0, len(recs))
	for i, rec := range recs {
		eval, err := squad.ParseEvaluation(rec.Get("evaluation"))
		if err != nil {
			// keep unknown tags visible instead of dropping the row
			eval = squad.Evaluation(rec.Get("evaluation"))
		}
		out = append(out, squad.Player{
			Row:         i,
			Team:        teamName,
			Name:        rec.Get("name"),
			ShirtNumber: rec.Get("shirt"),
			Position:    rec.Get("position"),
			BirthYear:   rec.Get("birth_year"),
			Caps:        rec.Get("caps"),
			Evaluation:  eval,
			Notes:       rec.Get("notes"),
		})
	}
	return out, nil
}

// ReplaceTeam writes players back by row position, so columns the schema
// does not know about stay attached to their player.
func (r *SquadRepository) ReplaceTeam(ctx context.Context, teamName string, players []squad.Player) error {
	return RewriteRecords(r.wb, squadSchema(teamName), func(m *Mapping, existing []Record) ([]Record, error) {
		out := make([]Record, 0, len(players))
		for i, p := range players {
			rec := m.NewRecord()
			if i < len(existing) {
				rec = existing[i]
			}
			rec.Set("name", p.Name)
			rec.Set("shirt", p.ShirtNumber)
			rec.Set("position", p.Position)
			rec.Set("birth_year", p.BirthYear)
			rec.Set("caps", p.Caps)
			rec.Set("evaluation", string(p.Evaluation))
			rec.Set("notes", p.Notes)
			out = append(out, rec)
		}
		return out, nil
	})
}

type ReportRepository struct {
	matches    *Workbook
	individual *Workbook
}

func (r *ReportRepository) ListMatch(ctx context.Context) ([]report.MatchReport, error) {
	recs, err := ReadRecords(r.matches, matchReportSchema)
	if err != nil {
		return nil, fmt.Errorf("list match reports: %w", err)
	}
	out := make([]report.MatchReport, 0, len(recs))
	for _, rec := range recs {
		out = append(out, matchFromRecord(rec))
	}
	return out, nil
}

func (r *ReportRepository) AppendMatch(ctx context.Context, reports ...report.MatchReport) error {
	if len(reports) == 0 {
		return nil
	}
	err := AppendRecords(r.matches, matchReportSchema, func(m *Mapping) []Record {
		out := make([]Record, 0, len(reports))
		for _, rep := range reports {
			rec := m.NewRecord()
			matchToRecord(&rec, rep)
			out = append(out, rec)
		}
		return out
	})
	if err != nil {
		return fmt.Errorf("append match reports: %w", err)
	}
	return nil
}

func (r *ReportRepository) UpdateMatch(ctx context.Context, key report.Key, fn func(report.MatchReport) (report.MatchReport, error)) (int, error) {
	updated := 0
	err := RewriteRecords(r.matches, matchReportSchema, func(_ *Mapping, existing []Record) ([]Record, error) {
		for i := range existing {
			current := matchFromRecord(existing[i])
			if !key.Matches(current) {
				continue
			}
			next, err := fn(current)
			if err != nil {
				return nil, err
			}
			matchToRecord(&existing[i], next)
			updated++
		}
		if updated == 0 {
			return nil, errSkipWrite
		}
		return existing, nil
	})
	if err != nil {
		return 0, fmt.Errorf("update match reports: %w", err)
	}
	return updated, nil
}

func (r *ReportRepository) ListIndividual(ctx context.Context) ([]report.IndividualReport, error) {
	recs, err := ReadRecords(r.individual, individualReportSchema)
	if err != nil {
		return nil, fmt.Errorf("list individual reports: %w", err)
	}
	out := make([]report.IndividualReport, 0, len(recs))
	for _, rec := range recs {
		out = append(out, report.IndividualReport{
			Scout:       rec.Get("scout"),
			Player:      rec.Get("player"),
			Team:        rec.Get("team"),
			BirthYear:   rec.Get("birth_year"),
			Date:        rec.Get("date"),
			Position:    rec.Get("position"),
			Foot:        report.Foot(rec.Get("foot")),
			ProfileTier: atoi(rec.Get("profile")),
			Narrative:   rec.Get("narrative"),
			Conclusion:  conclusion(rec.Get("conclusion")),
			PhotoPath:   rec.Get("photo"),
		})
	}
	return out, nil
}

func (r *ReportRepository) AppendIndividual(ctx context.Context, reports ...report.IndividualReport) error {
	if len(reports) == 0 {
		return nil
	}
	err := AppendRecords(r.individual, individualReportSchema, func(m *Mapping) []Record {
		out := make([]Record, 0, len(reports))
		for _, rep := range reports {
			rec := m.NewRecord()
			rec.Set("scout", rep.Scout)
			rec.Set("player", rep.Player)
			rec.Set("team", rep.Team)
			rec.Set("birth_year", rep.BirthYear)
			rec.Set("date", rep.Date)
			rec.Set("position", rep.Position)
			rec.Set("foot", string(rep.Foot))
			rec.Set("profile", strconv.Itoa(rep.ProfileTier))
			rec.Set("narrative", rep.Narrative)
			rec.Set("conclusion", string(rep.Conclusion))
			rec.Set("photo", rep.PhotoPath)
			out = append(out, rec)
		}
		return out
	})
	if err != nil {
		return fmt.Errorf("append individual reports: %w", err)
	}
	return nil
}

type PlayerRepository struct {
	wb *Workbook
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	recs, err := ReadRecords(r.wb, playerSchema)
	if err != nil {
		return nil, fmt.Errorf("list player database: %w", err)
	}
	out := make([]player.Player, 0, len(recs))
	for _, rec := range recs {
		out = append(out, player.Player{
			Name:      rec.Get("name"),
			Country:   rec.Get("country"),
			Club:      rec.Get("club"),
			Position:  rec.Get("position"),
			BirthYear: rec.Get("birth_year"),
			Foot:      rec.Get("foot"),
			Agent:     rec.Get("agent"),
			Notes:     rec.Get("notes"),
		})
	}
	return out, nil
}

func matchFromRecord(rec Record) report.MatchReport {
	return report.MatchReport{
		Category:      rec.Get("category"),
		Scout:         rec.Get("scout"),
		Player:        rec.Get("player"),
		Team:          rec.Get("team"),
		Match:         rec.Get("match"),
		MatchDate:     rec.Get("match_date"),
		ReportDate:    rec.Get("report_date"),
		Position:      rec.Get("position"),
		Foot:          report.Foot(rec.Get("foot")),
		Performance:   atoi(rec.Get("performance")),
		Potential:     atoi(rec.Get("potential")),
		Narrative:     rec.Get("narrative"),
		Conclusion:    conclusion(rec.Get("conclusion")),
		ContractAgent: rec.Get("contract_agent"),
	}
}

func matchToRecord(rec *Record, rep report.MatchReport) {
	rec.Set("category", rep.Category)
	rec.Set("scout", rep.Scout)
	rec.Set("player", rep.Player)
	rec.Set("team", rep.Team)
	rec.Set("match", rep.Match)
	rec.Set("match_date", rep.MatchDate)
	rec.Set("report_date", rep.ReportDate)
	rec.Set("position", rep.Position)
	rec.Set("foot", string(rep.Foot))
	rec.Set("performance", strconv.Itoa(rep.Performance))
	rec.Set("potential", strconv.Itoa(rep.Potential))
	rec.Set("narrative", rep.Narrative)
	rec.Set("conclusion", string(rep.Conclusion))
	rec.Set("contract_agent", rep.ContractAgent)
}

// conclusion canonicalizes known labels and keeps unknown text as written.
func conclusion(raw string) report.Conclusion {
	if c, err := report.ParseConclusion(raw); err == nil {
		return c
	}
	return report.Conclusion(raw)
}

// atoi reads ratings that Excel may have stored as "4" or "4.0".
func atoi(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// IsSchemaError reports whether err came from an unresolvable header row.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
