package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

const (
	MinRating      = 1
	MaxRating      = 5
	MinProfileTier = 1
	MaxProfileTier = 6

	DateLayout = "2006-01-02"
)

// Conclusion is the scout's recommendation for a player.
type Conclusion string

const (
	ConclusionSign         Conclusion = "sign"
	ConclusionFollowToSign Conclusion = "follow_to_sign"
	ConclusionFollow       Conclusion = "follow"
	ConclusionDiscard      Conclusion = "discard"
)

func Conclusions() []Conclusion {
	return []Conclusion{ConclusionSign, ConclusionFollowToSign, ConclusionFollow, ConclusionDiscard}
}

// ParseConclusion accepts the canonical values, display labels and the
// Spanish labels stored by older sheets. "monitor" is read as follow.
func ParseConclusion(raw string) (Conclusion, error) {
	switch strings.ReplaceAll(textnorm.Fold(raw), "_", " ") {
	case "sign", "fichar":
		return ConclusionSign, nil
	case "follow to sign", "follow-to-sign", "seguir para fichar":
		return ConclusionFollowToSign, nil
	case "follow", "monitor", "seguir":
		return ConclusionFollow, nil
	case "discard", "descartar":
		return ConclusionDiscard, nil
	}
	return "", fmt.Errorf("unknown conclusion %q", raw)
}

type Foot string

const (
	FootRight Foot = "right"
	FootLeft  Foot = "left"
	FootBoth  Foot = "both"
)

func ParseFoot(raw string) (Foot, error) {
	switch textnorm.Fold(raw) {
	case "right", "derecho", "diestro":
		return FootRight, nil
	case "left", "izquierdo", "zurdo":
		return FootLeft, nil
	case "both", "ambidiestro", "ambos":
		return FootBoth, nil
	}
	return "", fmt.Errorf("unknown foot %q", raw)
}

// MatchReport is one scout's evaluation of a player in a specific match.
// Reports are append-only rows; duplicates are allowed.
type MatchReport struct {
	Category      string     `json:"category"`
	Scout         string     `json:"scout"`
	Player        string     `json:"player"`
	Team          string     `json:"team"`
	Match         string     `json:"match"`
	MatchDate     string     `json:"matchDate"`
	ReportDate    string     `json:"reportDate"`
	Position      string     `json:"position"`
	Foot          Foot       `json:"foot"`
	Performance   int        `json:"performance"`
	Potential     int        `json:"potential"`
	Narrative     string     `json:"narrative"`
	Conclusion    Conclusion `json:"conclusion"`
	ContractAgent string     `json:"contractAgent,omitempty"`
}

// IndividualReport is a standalone profile of a player.
type IndividualReport struct {
	Scout       string     `json:"scout"`
	Player      string     `json:"player"`
	Team        string     `json:"team"`
	BirthYear   string     `json:"birthYear"`
	Date        string     `json:"date"`
	Position    string     `json:"position"`
	Foot        Foot       `json:"foot"`
	ProfileTier int        `json:"profileTier"`
	Narrative   string     `json:"narrative"`
	Conclusion  Conclusion `json:"conclusion"`
	PhotoPath   string     `json:"photoPath,omitempty"`
}

// ValidationError lists every problem found on a report.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid report: " + strings.Join(e.Problems, "; ")
}

type checker struct {
	problems []string
}

func (c *checker) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.problems = append(c.problems, field+" is required")
	}
}

func (c *checker) within(field string, v, lo, hi int) {
	if v < lo || v > hi {
		c.problems = append(c.problems, fmt.Sprintf("%s must be between %d and %d", field, lo, hi))
	}
}

func (c *checker) date(field, value string, required bool) {
	if strings.TrimSpace(value) == "" {
		if required {
			c.problems = append(c.problems, field+" is required")
		}
		return
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		c.problems = append(c.problems, field+" must be YYYY-MM-DD")
	}
}

func (c *checker) conclusion(v Conclusion) {
	if _, err := ParseConclusion(string(v)); err != nil {
		c.problems = append(c.problems, "conclusion must be one of sign, follow_to_sign, follow, discard")
	}
}

func (c *checker) foot(v Foot) {
	if v == "" {
		return
	}
	if _, err := ParseFoot(string(v)); err != nil {
		c.problems = append(c.problems, "foot must be right, left or both")
	}
}

func (c *checker) err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: c.problems}
}

func (r MatchReport) Validate() error {
	var c checker
	c.required("category", r.Category)
	c.required("scout", r.Scout)
	c.required("player", r.Player)
	c.required("team", r.Team)
	c.required("match", r.Match)
	c.required("position", r.Position)
	c.required("narrative", r.Narrative)
	c.date("matchDate", r.MatchDate, true)
	c.date("reportDate", r.ReportDate, false)
	c.within("performance", r.Performance, MinRating, MaxRating)
	c.within("potential", r.Potential, MinRating, MaxRating)
	c.conclusion(r.Conclusion)
	c.foot(r.Foot)
	return c.err()
}

func (r IndividualReport) Validate() error {
	var c checker
	c.required("scout", r.Scout)
	c.required("player", r.Player)
	c.required("team", r.Team)
	c.required("position", r.Position)
	c.required("narrative", r.Narrative)
	c.date("date", r.Date, true)
	c.within("profileTier", r.ProfileTier, MinProfileTier, MaxProfileTier)
	c.conclusion(r.Conclusion)
	c.foot(r.Foot)
	return c.err()
}

// Normalize trims text and canonicalizes enums; call after Validate.
func (r MatchReport) Normalize() MatchReport {
	r.Category = strings.TrimSpace(r.Category)
	r.Scout = strings.TrimSpace(r.Scout)
	r.Player = strings.TrimSpace(r.Player)
	r.Team = strings.TrimSpace(r.Team)
	r.Match = strings.TrimSpace(r.Match)
	r.Position = strings.TrimSpace(r.Position)
	if c, err := ParseConclusion(string(r.Conclusion)); err == nil {
		r.Conclusion = c
	}
	if f, err := ParseFoot(string(r.Foot)); err == nil {
		r.Foot = f
	}
	return r
}

func (r IndividualReport) Normalize() IndividualReport {
	r.Scout = strings.TrimSpace(r.Scout)
	r.Player = strings.TrimSpace(r.Player)
	r.Team = strings.TrimSpace(r.Team)
	r.Position = strings.TrimSpace(r.Position)
	if c, err := ParseConclusion(string(r.Conclusion)); err == nil {
		r.Conclusion = c
	}
	if f, err := ParseFoot(string(r.Foot)); err == nil {
		r.Foot = f
	}
	return r
}

// Key addresses match reports for in-place updates. Player names are free
// text, so two different players sharing a name in the same match written
// by the same scout are indistinguishable and are updated together.
type Key struct {
	Scout  string
	Match  string
	Player string
}

var ErrIncompleteKey = errors.New("scout, match and player are required to address a report")

func (k Key) Validate() error {
	if strings.TrimSpace(k.Scout) == "" || strings.TrimSpace(k.Match) == "" || strings.TrimSpace(k.Player) == "" {
		return ErrIncompleteKey
	}
	return nil
}

func (k Key) Matches(r MatchReport) bool {
	return textnorm.Equal(k.Scout, r.Scout) &&
		textnorm.Equal(k.Match, r.Match) &&
		textnorm.Equal(k.Player, r.Player)
}

// MatchPatch holds editable match report fields; nil means unchanged.
type MatchPatch struct {
	ReportDate    *string
	Position      *string
	Foot          *Foot
	Performance   *int
	Potential     *int
	Narrative     *string
	Conclusion    *Conclusion
	ContractAgent *string
}

func (p MatchPatch) Empty() bool {
	return p.ReportDate == nil && p.Position == nil && p.Foot == nil &&
		p.Performance == nil && p.Potential == nil && p.Narrative == nil &&
		p.Conclusion == nil && p.ContractAgent == nil
}

func (p MatchPatch) Apply(r MatchReport) MatchReport {
	if p.ReportDate != nil {
		r.ReportDate = *p.ReportDate
	}
	if p.Position != nil {
		r.Position = *p.Position
	}
	if p.Foot != nil {
		r.Foot = *p.Foot
	}
	if p.Performance != nil {
		r.Performance = *p.Performance
	}
	if p.Potential != nil {
		r.Potential = *p.Potential
	}
	if p.Narrative != nil {
		r.Narrative = *p.Narrative
	}
	if p.Conclusion != nil {
		r.Conclusion = *p.Conclusion
	}
	if p.ContractAgent != nil {
		r.ContractAgent = *p.ContractAgent
	}
	return r
}

// Validate checks only the fields the patch sets, so rows imported from
// older sheets with gaps can still be edited.
func (p MatchPatch) Validate() error {
	var c checker
	if p.ReportDate != nil {
		c.date("reportDate", *p.ReportDate, false)
	}
	if p.Performance != nil {
		c.within("performance", *p.Performance, MinRating, MaxRating)
	}
	if p.Potential != nil {
		c.within("potential", *p.Potential, MinRating, MaxRating)
	}
	if p.Conclusion != nil {
		c.conclusion(*p.Conclusion)
	}
	if p.Foot != nil {
		c.foot(*p.Foot)
	}
	return c.err()
}
