package report

import "github.com/riskibarqy/football-scouting/internal/platform/textnorm"

// Filter is a set of column-equality constraints. Empty fields match
// everything; comparisons ignore case and accents.
type Filter struct {
	Category   string
	Scout      string
	Team       string
	Player     string
	Position   string
	Conclusion Conclusion
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f Filter) MatchesMatch(r MatchReport) bool {
	return eq(f.Category, r.Category) &&
		eq(f.Scout, r.Scout) &&
		eq(f.Team, r.Team) &&
		eq(f.Player, r.Player) &&
		eq(f.Position, r.Position) &&
		eqConclusion(f.Conclusion, r.Conclusion)
}

// MatchesIndividual ignores Category, which individual reports lack.
func (f Filter) MatchesIndividual(r IndividualReport) bool {
	return eq(f.Scout, r.Scout) &&
		eq(f.Team, r.Team) &&
		eq(f.Player, r.Player) &&
		eq(f.Position, r.Position) &&
		eqConclusion(f.Conclusion, r.Conclusion)
}

func FilterMatch(reports []MatchReport, f Filter) []MatchReport {
	out := make([]MatchReport, 0, len(reports))
	for _, r := range reports {
		if f.MatchesMatch(r) {
			out = append(out, r)
		}
	}
	return out
}

func FilterIndividual(reports []IndividualReport, f Filter) []IndividualReport {
	out := make([]IndividualReport, 0, len(reports))
	for _, r := range reports {
		if f.MatchesIndividual(r) {
			out = append(out, r)
		}
	}
	return out
}

func eq(want, got string) bool {
	return want == "" || textnorm.Equal(want, got)
}

func eqConclusion(want, got Conclusion) bool {
	if want == "" {
		return true
	}
	w, err := ParseConclusion(string(want))
	if err != nil {
		return false
	}
	g, err := ParseConclusion(string(got))
	return err == nil && w == g
}
