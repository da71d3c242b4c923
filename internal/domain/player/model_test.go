package player

import "testing"

func samplePlayers() []Player {
	return []Player{
		{Name: "Salem", Country: "Saudi Arabia", Position: "RW", Foot: "Left"},
		{Name: "Pedro", Country: "España", Position: "CB", Foot: "Right"},
		{Name: "Iker", Country: "Espana", Position: "GK", Foot: "Right"},
		{Name: "Youssef", Country: "Morocco", Position: "CB"},
	}
}

func TestApply_ColumnEquality(t *testing.T) {
	got := Apply(samplePlayers(), Filter{ColumnCountry: "espana", ColumnPosition: "cb"})
	if len(got) != 1 || got[0].Name != "Pedro" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if got := Apply(samplePlayers(), Filter{ColumnFoot: ""}); len(got) != 4 {
		t.Fatalf("empty constraint must match all, got %d", len(got))
	}
}

func TestOptions(t *testing.T) {
	got := Options(samplePlayers(), ColumnCountry)
	want := []string{"España", "Morocco", "Saudi Arabia"}
	if len(got) != len(want) {
		t.Fatalf("unexpected options: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("options[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseColumn(t *testing.T) {
	c, err := ParseColumn("Birth Year")
	if err != nil || c != ColumnBirthYear {
		t.Fatalf("ParseColumn: %q %v", c, err)
	}
	if _, err := ParseColumn("salary"); err == nil {
		t.Fatalf("expected unknown column error")
	}
}
