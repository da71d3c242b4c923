package fixture

import "strings"

// Match is one scraped schedule row. Score holds the result or "vs" when
// the match has not been played.
type Match struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Home     string `json:"home"`
	Away     string `json:"away"`
	Score    string `json:"score"`
	Week     string `json:"week"`
	Stadium  string `json:"stadium"`
	HomeLogo string `json:"homeLogo"`
	AwayLogo string `json:"awayLogo"`
}

func (m Match) Played() bool {
	s := strings.ToLower(strings.TrimSpace(m.Score))
	return s != "" && s != "vs" && s != "v"
}

// Label is the "Home vs Away" text scouts use as the match reference.
func (m Match) Label() string {
	return strings.TrimSpace(m.Home) + " vs " + strings.TrimSpace(m.Away)
}
