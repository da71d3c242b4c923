package team

import (
	"fmt"
	"strings"
)

// Team is a club registered under a league or age category. The pair
// (Name, League) identifies it.
type Team struct {
	Name   string
	League string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.League) == "" {
		return fmt.Errorf("team league is required")
	}
	return nil
}

// Leagues returns the distinct league names of teams in first-seen order.
func Leagues(teams []Team) []string {
	seen := make(map[string]struct{}, len(teams))
	out := make([]string, 0)
	for _, t := range teams {
		league := strings.TrimSpace(t.League)
		if league == "" {
			continue
		}
		if _, ok := seen[league]; ok {
			continue
		}
		seen[league] = struct{}{}
		out = append(out, league)
	}
	return out
}
