package competition

import "testing"

func TestCompetition_ScheduleURL(t *testing.T) {
	c := Competition{ID: "u21", URL: "https://saff.example/championships/u21?lang=en"}

	if got := c.ScheduleURL("all=1"); got != "https://saff.example/championships/u21?all=1&lang=en" {
		t.Fatalf("unexpected schedule url %q", got)
	}
	if got := c.ScheduleURL(""); got != c.URL {
		t.Fatalf("expected url unchanged, got %q", got)
	}
}

func TestNewCatalog(t *testing.T) {
	cat, err := NewCatalog([]Competition{
		{ID: "u21", Caption: "Standing of Jawwy Elite League U-21", URL: "https://saff.example/u21"},
		{ID: "u19", URL: "https://saff.example/u19"},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if got, ok := cat.Get("u19"); !ok || got.Name != "u19" {
		t.Fatalf("expected name to default to id, got %+v", got)
	}
	if len(cat.List()) != 2 {
		t.Fatalf("unexpected list size")
	}

	if _, err := NewCatalog([]Competition{{ID: "x", URL: "ftp://nope"}}); err == nil {
		t.Fatalf("expected invalid url error")
	}
	if _, err := NewCatalog([]Competition{{ID: "x", URL: "https://a"}, {ID: "x", URL: "https://b"}}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}
