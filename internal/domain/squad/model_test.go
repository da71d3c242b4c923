package squad

import "testing"

func TestParseEvaluation(t *testing.T) {
	cases := map[string]Evaluation{
		"":                EvaluationNone,
		"TOP":             EvaluationTop,
		"interesante":     EvaluationInteresting,
		" Follow ":        EvaluationFollow,
		"No Interesante":  EvaluationNotInteresting,
		"not interesting": EvaluationNotInteresting,
	}
	for raw, want := range cases {
		got, err := ParseEvaluation(raw)
		if err != nil {
			t.Fatalf("ParseEvaluation(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseEvaluation(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseEvaluation("superstar"); err == nil {
		t.Fatalf("expected error for unknown tag")
	}
}

func TestPatch_Apply(t *testing.T) {
	notes := "strong in the air"
	eval := EvaluationTop
	p := Patch{Evaluation: &eval, Notes: &notes}

	got := p.Apply(Player{Row: 3, Name: "Salem", Position: "CB"})
	if got.Evaluation != EvaluationTop || got.Notes != notes || got.Position != "CB" || got.Row != 3 {
		t.Fatalf("unexpected patched player: %+v", got)
	}
	if (Patch{}).Empty() != true {
		t.Fatalf("expected zero patch to be empty")
	}
}
