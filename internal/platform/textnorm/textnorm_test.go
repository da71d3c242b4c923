package textnorm

import "testing"

func TestKey(t *testing.T) {
	cases := map[string]string{
		"Al-Nassr":      "alnassr",
		"  AL NASSR. ":  "alnassr",
		"País":          "pais",
		"Atlético Club": "atleticoclub",
		"U-21":          "u21",
		"":              "",
	}
	for in, want := range cases {
		if got := Key(in); got != want {
			t.Fatalf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("  Fecha   de  Nacimiento "); got != "fecha de nacimiento" {
		t.Fatalf("unexpected fold: %q", got)
	}
	if !Equal("Posición", "posicion") {
		t.Fatalf("expected accent-insensitive equality")
	}
}
