package saff

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/football-scouting/internal/domain/team"
)

const standingsPage = `<html><head><title>Standing of Jawwy Elite League U-21</title></head><body>
<nav><a href="/standings">Standings</a></nav>
<section class="league">
  <div class="heading"><h3>Standing of Jawwy Elite League U-21</h3></div>
  <p>Updated weekly</p>
  <div class="table-wrap">
    <table>
      <thead><tr><th>#</th><th>Pos</th><th></th><th>Team</th><th>P</th><th>W</th><th>D</th><th>L</th><th>GF</th><th>GA</th><th>GD</th><th>Pts</th></tr></thead>
      <tbody>
        <tr><td><img src="up.png"></td><td>1</td><td><img src="nassr.png"></td><td> Al-Nassr </td><td>10</td><td>8</td><td>1</td><td>1</td><td>25</td><td>5</td><td>20</td><td>25</td></tr>
        <tr><td colspan="12">Promotion zone</td></tr>
        <tr><td><img></td><td>2</td><td><img></td><td>Al-Hilal</td><td>10</td><td>6</td><td>2</td><td>2</td><td>18</td><td>20</td><td>-2</td><td>20</td></tr>
        <tr><td>3</td><td>Al-Shabab</td><td>10</td></tr>
      </tbody>
    </table>
  </div>
</section>
<table><tr><td>unrelated</td></tr></table>
</body></html>`

func TestParseStandings_EndToEndRow(t *testing.T) {
	logos := team.NewLogoResolver(team.DefaultLogos)

	got, err := ParseStandings(strings.NewReader(standingsPage), "Standing of Jawwy Elite League U-21", logos)
	if err != nil {
		t.Fatalf("ParseStandings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 qualifying rows, got %d: %+v", len(got), got)
	}

	first := got[0]
	if first.Rank != "1" || first.Team != "Al-Nassr" || first.Played != "10" || first.Won != "8" ||
		first.Drawn != "1" || first.Lost != "1" || first.GoalsFor != "25" || first.GoalsAgainst != "5" ||
		first.GoalDifference != "20" || first.Points != "25" || first.Logo != "alnassr.png" {
		t.Fatalf("unexpected first standing: %+v", first)
	}
	if got[1].GoalDifference != "-2" || got[1].Team != "Al-Hilal" {
		t.Fatalf("expected displayed text preserved, got %+v", got[1])
	}
}

func TestParseStandings_CaptionIsCaseInsensitive(t *testing.T) {
	got, err := ParseStandings(strings.NewReader(standingsPage), "standing of jawwy", nil)
	if err != nil {
		t.Fatalf("ParseStandings: %v", err)
	}
	if len(got) != 2 || got[0].Logo != "" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestParseStandings_CaptionInsideTable(t *testing.T) {
	page := `<body><table><caption>Standing</caption>
<tr><td></td><td>1</td><td></td><td>Damac</td><td>1</td><td>1</td><td>0</td><td>0</td><td>2</td><td>0</td><td>2</td><td>3</td></tr>
</table></body>`
	got, err := ParseStandings(strings.NewReader(page), "", nil)
	if err != nil {
		t.Fatalf("ParseStandings: %v", err)
	}
	if len(got) != 1 || got[0].Team != "Damac" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestParseStandings_TableNestedAfterCaptionText(t *testing.T) {
	page := `<body><div class="league">Standing of Jawwy Elite League U-21
<table>
<tr><td></td><td>1</td><td></td><td>Al-Nassr</td><td>10</td><td>8</td><td>1</td><td>1</td><td>25</td><td>5</td><td>20</td><td>25</td></tr>
</table></div></body>`
	got, err := ParseStandings(strings.NewReader(page), "Standing of Jawwy Elite League U-21", team.NewLogoResolver(team.DefaultLogos))
	if err != nil {
		t.Fatalf("ParseStandings: %v", err)
	}
	if len(got) != 1 || got[0].Team != "Al-Nassr" || got[0].Logo != "alnassr.png" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestParseStandings_SkipsNestedTableBeforeCaptionText(t *testing.T) {
	page := `<body><div><table><tr><td></td><td>9</td><td></td><td>Old</td><td>1</td><td>0</td><td>0</td><td>1</td><td>0</td><td>1</td><td>-1</td><td>0</td></tr></table>
Standing<span>updated weekly</span></div>
<table><tr><td></td><td>1</td><td></td><td>Al-Hilal</td><td>10</td><td>6</td><td>2</td><td>2</td><td>18</td><td>20</td><td>-2</td><td>20</td></tr></table></body>`
	got, err := ParseStandings(strings.NewReader(page), "Standing", nil)
	if err != nil {
		t.Fatalf("ParseStandings: %v", err)
	}
	if len(got) != 1 || got[0].Team != "Al-Hilal" {
		t.Fatalf("expected the table after the caption, got %+v", got)
	}
}

func TestParseStandings_MissingCaptionIsParseFailure(t *testing.T) {
	_, err := ParseStandings(strings.NewReader(`<body><h3>Results</h3><table></table></body>`), "Standing of Jawwy", nil)
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}
}

func TestParseStandings_CaptionWithoutTableIsParseFailure(t *testing.T) {
	_, err := ParseStandings(strings.NewReader(`<body><table><tr><td>x</td></tr></table><h3>Standing</h3><p>soon</p></body>`), "Standing", nil)
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}
}

func TestParseStandings_Deterministic(t *testing.T) {
	logos := team.NewLogoResolver(team.DefaultLogos)
	a, errA := ParseStandings(strings.NewReader(standingsPage), "Standing of Jawwy", logos)
	b, errB := ParseStandings(strings.NewReader(standingsPage), "Standing of Jawwy", logos)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v %v", errA, errB)
	}
	if len(a) != len(b) {
		t.Fatalf("length differs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

const schedulePage = `<html><body>
<div class="mobile-view"><table><tr><td>mobile</td></tr></table></div>
<div class="desktop-view">
<table>
  <tr><th>Date</th><th>Time</th><th>Home</th><th>Score</th><th>Away</th><th>Week</th><th>Stadium</th></tr>
  <tr><td rowspan="2">2025-03-01</td><td>18:00</td><td>Al-Nassr</td><td>2-1</td><td>Al-Hilal</td><td>Week 5</td><td>King Fahd Stadium</td></tr>
  <tr><td>19:30</td><td>Al-Shabab</td><td>vs</td><td>Al-Ittihad</td><td>Week 5</td><td>Prince Faisal Stadium</td></tr>
</table>
</div>
</body></html>`

func TestParseSchedule_DateCarryForward(t *testing.T) {
	logos := team.NewLogoResolver(team.DefaultLogos)

	got, err := ParseSchedule(strings.NewReader(schedulePage), "", logos)
	if err != nil {
		t.Fatalf("ParseSchedule: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(got), got)
	}

	first := got[0]
	if first.Date != "2025-03-01" || first.Time != "18:00" || first.Home != "Al-Nassr" || first.Score != "2-1" ||
		first.Away != "Al-Hilal" || first.Week != "Week 5" || first.Stadium != "King Fahd Stadium" {
		t.Fatalf("unexpected date row: %+v", first)
	}
	if first.HomeLogo != "alnassr.png" || first.AwayLogo != "alhilal.png" {
		t.Fatalf("unexpected logos: %+v", first)
	}

	second := got[1]
	if second.Date != "2025-03-01" || second.Time != "19:30" || second.Home != "Al-Shabab" || second.Score != "vs" ||
		second.Away != "Al-Ittihad" || second.Week != "Week 5" || second.Stadium != "Prince Faisal Stadium" {
		t.Fatalf("unexpected continuation row: %+v", second)
	}
}

func buildSchedule(days, perDay int) string {
	var b strings.Builder
	b.WriteString(`<body><div class="desktop-view"><table>`)
	dates := []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04"}
	for d := 0; d < days; d++ {
		b.WriteString(`<tr><td rowspan="3">` + dates[d] + `</td><td>17:00</td><td>Abha</td><td>vs</td><td>Damac</td><td>W1</td><td>S1</td></tr>`)
		for k := 0; k < perDay; k++ {
			b.WriteString(`<tr><td>20:00</td><td>Al-Fateh</td><td>1-1</td><td>Al-Raed</td><td>W1</td><td>S2</td></tr>`)
		}
		// malformed rows are dropped without disturbing the running date
		b.WriteString(`<tr><td>21:00</td><td>Al-Fateh</td><td>1-1</td><td>Al-Raed</td><td>W1</td></tr>`)
		b.WriteString(`<tr><td rowspan="2">2099-01-01</td><td>10:00</td><td>A</td><td>vs</td><td>B</td><td>W9</td></tr>`)
	}
	b.WriteString(`</table></div></body>`)
	return b.String()
}

func TestParseSchedule_RowCountsAndCarry(t *testing.T) {
	const days, perDay = 3, 2
	got, err := ParseSchedule(strings.NewReader(buildSchedule(days, perDay)), ".desktop-view", nil)
	if err != nil {
		t.Fatalf("ParseSchedule: %v", err)
	}
	if len(got) != days*(1+perDay) {
		t.Fatalf("expected %d matches, got %d", days*(1+perDay), len(got))
	}
	for i := 0; i < days; i++ {
		block := got[i*(1+perDay) : (i+1)*(1+perDay)]
		for _, m := range block[1:] {
			if m.Date != block[0].Date {
				t.Fatalf("continuation date %q, want %q", m.Date, block[0].Date)
			}
		}
		if block[0].Date == "2099-01-01" {
			t.Fatalf("short rowspan row must not update the running date")
		}
	}
}

func TestParseSchedule_FallsBackToFirstTable(t *testing.T) {
	page := `<body><table>
<tr><td>19:30</td><td>Al-Shabab</td><td>vs</td><td>Al-Ittihad</td><td>Week 5</td><td>Prince Faisal Stadium</td></tr>
<tr><td rowspan="1">2025-03-02</td><td>18:00</td><td>Abha</td><td>0-0</td><td>Damac</td><td>Week 5</td><td>Abha Stadium</td></tr>
</table></body>`
	got, err := ParseSchedule(strings.NewReader(page), ".desktop-view", nil)
	if err != nil {
		t.Fatalf("ParseSchedule: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %+v", got)
	}
	if got[0].Date != "" {
		t.Fatalf("continuation before any date row must have empty date, got %q", got[0].Date)
	}
	if got[1].Date != "2025-03-02" {
		t.Fatalf("unexpected date %q", got[1].Date)
	}
}

func TestParseSchedule_NoTableIsParseFailure(t *testing.T) {
	_, err := ParseSchedule(strings.NewReader(`<body><p>maintenance</p></body>`), "", nil)
	if !errors.Is(err, ErrParseFailed) {
		t.Fatalf("expected ErrParseFailed, got %v", err)
	}
}
