package player

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

// Player is one row of the player database browsed by scouts.
type Player struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	Club      string `json:"club"`
	Position  string `json:"position"`
	BirthYear string `json:"birthYear"`
	Foot      string `json:"foot"`
	Agent     string `json:"agent"`
	Notes     string `json:"notes"`
}

// Column names a filterable player database column.
type Column string

const (
	ColumnName      Column = "name"
	ColumnCountry   Column = "country"
	ColumnClub      Column = "club"
	ColumnPosition  Column = "position"
	ColumnBirthYear Column = "birth_year"
	ColumnFoot      Column = "foot"
	ColumnAgent     Column = "agent"
)

var columns = []Column{ColumnName, ColumnCountry, ColumnClub, ColumnPosition, ColumnBirthYear, ColumnFoot, ColumnAgent}

func Columns() []Column {
	return append([]Column(nil), columns...)
}

func ParseColumn(raw string) (Column, error) {
	key := strings.ReplaceAll(textnorm.Fold(raw), " ", "_")
	for _, c := range columns {
		if string(c) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown player column %q", raw)
}

func (p Player) Value(c Column) string {
	switch c {
	case ColumnName:
		return p.Name
	case ColumnCountry:
		return p.Country
	case ColumnClub:
		return p.Club
	case ColumnPosition:
		return p.Position
	case ColumnBirthYear:
		return p.BirthYear
	case ColumnFoot:
		return p.Foot
	case ColumnAgent:
		return p.Agent
	}
	return ""
}

// Filter holds column-equality constraints chosen from dropdowns.
type Filter map[Column]string

func (f Filter) Matches(p Player) bool {
	for col, want := range f {
		if strings.TrimSpace(want) == "" {
			continue
		}
		if !textnorm.Equal(want, p.Value(col)) {
			return false
		}
	}
	return true
}

func Apply(players []Player, f Filter) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Options returns the distinct non-empty values of column, sorted, keeping
// the first spelling seen for values that fold together.
func Options(players []Player, c Column) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range players {
		v := strings.TrimSpace(p.Value(c))
		if v == "" {
			continue
		}
		k := textnorm.Fold(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
