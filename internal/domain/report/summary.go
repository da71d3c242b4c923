package report

import (
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

// PlayerSummary aggregates the match reports written about one player of
// one team.
type PlayerSummary struct {
	Player          string             `json:"player"`
	Team            string             `json:"team"`
	Reports         int                `json:"reports"`
	AvgPerformance  float64            `json:"avgPerformance"`
	AvgPotential    float64            `json:"avgPotential"`
	Conclusions     map[Conclusion]int `json:"conclusions"`
	Scouts          []string           `json:"scouts"`
	LatestMatchDate string             `json:"latestMatchDate"`
}

// Summarize groups reports by folded (player, team) and orders the result by
// report count descending, then player and team.
func Summarize(reports []MatchReport) []PlayerSummary {
	type acc struct {
		sum       PlayerSummary
		perf, pot int
		scouts    map[string]struct{}
	}

	groups := make(map[string]*acc)
	order := make([]string, 0)
	for _, r := range reports {
		key := textnorm.Fold(r.Player) + "\x00" + textnorm.Fold(r.Team)
		a, ok := groups[key]
		if !ok {
			a = &acc{
				sum: PlayerSummary{
					Player:      strings.TrimSpace(r.Player),
					Team:        strings.TrimSpace(r.Team),
					Conclusions: make(map[Conclusion]int),
				},
				scouts: make(map[string]struct{}),
			}
			groups[key] = a
			order = append(order, key)
		}
		a.sum.Reports++
		a.perf += r.Performance
		a.pot += r.Potential
		if c, err := ParseConclusion(string(r.Conclusion)); err == nil {
			a.sum.Conclusions[c]++
		}
		if scout := strings.TrimSpace(r.Scout); scout != "" {
			if _, seen := a.scouts[scout]; !seen {
				a.scouts[scout] = struct{}{}
				a.sum.Scouts = append(a.sum.Scouts, scout)
			}
		}
		if r.MatchDate > a.sum.LatestMatchDate {
			a.sum.LatestMatchDate = r.MatchDate
		}
	}

	out := make([]PlayerSummary, 0, len(order))
	for _, key := range order {
		a := groups[key]
		n := float64(a.sum.Reports)
		a.sum.AvgPerformance = round2(float64(a.perf) / n)
		a.sum.AvgPotential = round2(float64(a.pot) / n)
		sort.Strings(a.sum.Scouts)
		out = append(out, a.sum)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Reports != out[j].Reports {
			return out[i].Reports > out[j].Reports
		}
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].Team < out[j].Team
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
