package standing

// Standing is one row of a scraped league table. Numeric columns keep the
// text shown on the page ("10", "-2") so nothing is lost to coercion.
type Standing struct {
	Rank           string `json:"rank"`
	Team           string `json:"team"`
	Logo           string `json:"logo"`
	Played         string `json:"played"`
	Won            string `json:"won"`
	Drawn          string `json:"drawn"`
	Lost           string `json:"lost"`
	GoalsFor       string `json:"goalsFor"`
	GoalsAgainst   string `json:"goalsAgainst"`
	GoalDifference string `json:"goalDifference"`
	Points         string `json:"points"`
}
