package saff

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/football-scouting/internal/domain/fixture"
	"github.com/riskibarqy/football-scouting/internal/domain/standing"
)

const (
	DefaultCaption           = "Standing"
	DefaultScheduleContainer = ".desktop-view"

	standingMinCells = 12
	dateRowMinCells  = 7
	sameDayMinCells  = 6
)

// LogoResolver maps a team name to an asset filename, "" when unknown.
type LogoResolver interface {
	Resolve(name string) string
}

type noLogos struct{}

func (noLogos) Resolve(string) string { return "" }

// ParseStandings extracts the league table that follows the element whose
// text contains caption. Rows with fewer than 12 cells are skipped. A page
// without the caption or without a following table is ErrParseFailed.
func ParseStandings(r io.Reader, caption string, logos LogoResolver) ([]standing.Standing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read standings html: %w", ErrParseFailed, err)
	}
	if logos == nil {
		logos = noLogos{}
	}
	if strings.TrimSpace(caption) == "" {
		caption = DefaultCaption
	}

	label := findCaption(doc, caption)
	if label == nil {
		return nil, parseFailed("caption %q not found", caption)
	}
	table := followingTable(label, caption)
	if table == nil {
		return nil, parseFailed("no table follows caption %q", caption)
	}

	out := make([]standing.Standing, 0)
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) < standingMinCells {
			return
		}
		out = append(out, standing.Standing{
			Rank:           cells[1],
			Team:           cells[3],
			Logo:           logos.Resolve(cells[3]),
			Played:         cells[4],
			Won:            cells[5],
			Drawn:          cells[6],
			Lost:           cells[7],
			GoalsFor:       cells[8],
			GoalsAgainst:   cells[9],
			GoalDifference: cells[10],
			Points:         cells[11],
		})
	})
	return out, nil
}

// ParseSchedule extracts matches from the first table inside container,
// or the first table of the page when container is absent.
//
// A row whose first cell carries rowspan opens a new day and reads
// date/time/home/score/away/week/stadium; it needs at least 7 cells or it is
// dropped. Any other row with at least 6 cells continues the current day and
// reads time/home/score/away/week/stadium. Everything else is skipped.
// Continuation rows seen before any date row get an empty date.
func ParseSchedule(r io.Reader, container string, logos LogoResolver) ([]fixture.Match, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read schedule html: %w", ErrParseFailed, err)
	}
	if logos == nil {
		logos = noLogos{}
	}
	if strings.TrimSpace(container) == "" {
		container = DefaultScheduleContainer
	}

	table := doc.Find(container).First().Find("table").First()
	if table.Length() == 0 {
		table = doc.Find("table").First()
	}
	if table.Length() == 0 {
		return nil, parseFailed("no schedule table on page")
	}

	out := make([]fixture.Match, 0)
	currentDate := ""
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		tds := row.ChildrenFiltered("td")
		if tds.Length() == 0 {
			return
		}
		cells := cellTexts(row)
		_, opensDay := tds.First().Attr("rowspan")

		var m fixture.Match
		switch {
		case opensDay && len(cells) >= dateRowMinCells:
			currentDate = cells[0]
			m = fixture.Match{
				Date:    cells[0],
				Time:    cells[1],
				Home:    cells[2],
				Score:   cells[3],
				Away:    cells[4],
				Week:    cells[5],
				Stadium: cells[6],
			}
		case opensDay:
			return
		case len(cells) >= sameDayMinCells:
			m = fixture.Match{
				Date:    currentDate,
				Time:    cells[0],
				Home:    cells[1],
				Score:   cells[2],
				Away:    cells[3],
				Week:    cells[4],
				Stadium: cells[5],
			}
		default:
			return
		}
		m.HomeLogo = logos.Resolve(m.Home)
		m.AwayLogo = logos.Resolve(m.Away)
		out = append(out, m)
	})
	return out, nil
}

// findCaption returns the deepest body element whose text contains caption,
// case-insensitively, taking the first in document order.
func findCaption(doc *goquery.Document, caption string) *goquery.Selection {
	needle := strings.ToLower(strings.TrimSpace(caption))
	var found *goquery.Selection
	doc.Find("body *").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "script" || goquery.NodeName(s) == "style" {
			return true
		}
		if !strings.Contains(strings.ToLower(s.Text()), needle) {
			return true
		}
		deeper := false
		s.Children().EachWithBreak(func(_ int, c *goquery.Selection) bool {
			if strings.Contains(strings.ToLower(c.Text()), needle) {
				deeper = true
				return false
			}
			return true
		})
		if deeper {
			return true
		}
		found = s
		return false
	})
	return found
}

// followingTable returns the first table after the caption text in document
// order. A caption inside a table (a <caption> or a header cell) resolves to
// that table. Otherwise the caption element's own content after the text is
// searched first, then later siblings of it and of each ancestor.
func followingTable(label *goquery.Selection, caption string) *goquery.Selection {
	if own := label.Closest("table"); own.Length() > 0 {
		return own.First()
	}
	if inner := tableAfterText(label, caption); inner != nil {
		return inner
	}
	for cur := label; cur.Length() > 0 && goquery.NodeName(cur) != "body"; cur = cur.Parent() {
		var found *goquery.Selection
		cur.NextAll().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
			if goquery.NodeName(sib) == "table" {
				found = sib
				return false
			}
			if t := sib.Find("table").First(); t.Length() > 0 {
				found = t
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// tableAfterText scans the children of label in order and returns the first
// table that starts once the accumulated text contains caption.
func tableAfterText(label *goquery.Selection, caption string) *goquery.Selection {
	needle := strings.ToLower(strings.TrimSpace(caption))
	var (
		seen  strings.Builder
		found *goquery.Selection
	)
	label.Contents().EachWithBreak(func(_ int, node *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(seen.String()), needle) {
			if goquery.NodeName(node) == "table" {
				found = node
				return false
			}
			if t := node.Find("table").First(); t.Length() > 0 {
				found = t
				return false
			}
		}
		seen.WriteString(node.Text())
		return true
	})
	return found
}

func cellTexts(row *goquery.Selection) []string {
	tds := row.ChildrenFiltered("td")
	out := make([]string, 0, tds.Length())
	tds.Each(func(_ int, td *goquery.Selection) {
		out = append(out, strings.Join(strings.Fields(td.Text()), " "))
	})
	return out
}
