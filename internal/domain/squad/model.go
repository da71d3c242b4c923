package squad

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-scouting/internal/platform/textnorm"
)

// Evaluation is the scout's quick tag on a squad player.
type Evaluation string

const (
	EvaluationNone           Evaluation = ""
	EvaluationTop            Evaluation = "Top"
	EvaluationInteresting    Evaluation = "Interesting"
	EvaluationFollow         Evaluation = "Follow"
	EvaluationNotInteresting Evaluation = "Not interesting"
)

var evaluations = []Evaluation{
	EvaluationNone,
	EvaluationTop,
	EvaluationInteresting,
	EvaluationFollow,
	EvaluationNotInteresting,
}

func Evaluations() []Evaluation {
	return append([]Evaluation(nil), evaluations...)
}

// ParseEvaluation matches case- and accent-insensitively. The Spanish labels
// written by the original sheets are accepted as aliases.
func ParseEvaluation(raw string) (Evaluation, error) {
	switch textnorm.Fold(raw) {
	case "":
		return EvaluationNone, nil
	case "top":
		return EvaluationTop, nil
	case "interesting", "interesante":
		return EvaluationInteresting, nil
	case "follow", "seguir":
		return EvaluationFollow, nil
	case "not interesting", "no interesante":
		return EvaluationNotInteresting, nil
	}
	return EvaluationNone, fmt.Errorf("unknown evaluation %q", raw)
}

// Player is one row of a team's squad sheet. Row is the 0-based position
// among data rows and is the only identity a player has.
type Player struct {
	Row         int
	Team        string
	Name        string
	ShirtNumber string
	Position    string
	BirthYear   string
	Caps        string
	Evaluation  Evaluation
	Notes       string
}

// Patch carries the fields a scout may edit in place. Nil means unchanged.
type Patch struct {
	Position   *string
	Evaluation *Evaluation
	Notes      *string
}

func (p Patch) Empty() bool {
	return p.Position == nil && p.Evaluation == nil && p.Notes == nil
}

func (p Patch) Apply(pl Player) Player {
	if p.Position != nil {
		pl.Position = strings.TrimSpace(*p.Position)
	}
	if p.Evaluation != nil {
		pl.Evaluation = *p.Evaluation
	}
	if p.Notes != nil {
		pl.Notes = *p.Notes
	}
	return pl
}
