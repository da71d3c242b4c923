package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("scout", "player").
		From("match_reports").
		Where(EqFold("scout", "Ana"), Eq("category", "U-21")).
		OrderBy("id").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT scout, player FROM match_reports WHERE lower(scout) = lower($1) AND category = $2 ORDER BY id LIMIT 50"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != "Ana" || args[1] != "U-21" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Team    string `db:"team"`
		Name    string `db:"name"`
		Skipped string `db:"-"`
		hidden  string
	}
	query, args, err := InsertModel("squad_players", row{Team: "Al-Nassr", Name: "Salem", hidden: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	want := "INSERT INTO squad_players (team, name) VALUES ($1, $2) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != "Al-Nassr" || args[1] != "Salem" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("match_reports").
		Set("narrative", "sharp").
		SetExpr("performance", "LEAST(?, 5)", 4).
		Where(Eq("scout", "Ana"), In("player", []any{"Salem", "Fahad"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}
	want := "UPDATE match_reports SET narrative = $1, performance = LEAST($2, 5) WHERE scout = $3 AND player IN ($4, $5)"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("squad_players").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditioned delete")
	}
	query, args, err := DeleteFrom("squad_players").Where(Eq("team", "Al-Hilal")).ToSQL()
	if err != nil {
		t.Fatalf("build delete: %v", err)
	}
	if query != "DELETE FROM squad_players WHERE team = $1" || len(args) != 1 {
		t.Fatalf("unexpected delete: %s %+v", query, args)
	}
}

func TestIn_EmptyMatchesNothing(t *testing.T) {
	query, _, err := Select("name").From("teams").Where(In("league", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}
	if query != "SELECT name FROM teams WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}
