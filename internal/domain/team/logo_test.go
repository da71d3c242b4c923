package team

import "testing"

func TestLogoResolver_Resolve(t *testing.T) {
	r := NewLogoResolver(DefaultLogos)

	cases := []struct {
		name string
		want string
	}{
		{name: "Al-Nassr", want: "alnassr.png"},
		{name: "AL NASSR", want: "alnassr.png"},
		{name: "Al-Hilal U-21", want: "alhilal.png"},
		{name: "España", want: "spain.png"},
		{name: "Unknown FC", want: ""},
		{name: "  ", want: ""},
	}
	for _, tc := range cases {
		if got := r.Resolve(tc.name); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestLogoResolver_ExactBeatsPartial(t *testing.T) {
	r := NewLogoResolver(map[string]string{
		"Nassr":    "partial.png",
		"Al Nassr": "exact.png",
	})
	if got := r.Resolve("al-nassr"); got != "exact.png" {
		t.Fatalf("expected exact match, got %q", got)
	}
	if got := r.Resolve("nassr"); got != "partial.png" {
		t.Fatalf("expected exact short key, got %q", got)
	}
}

func TestLogoResolver_PartialIsDeterministic(t *testing.T) {
	r := NewLogoResolver(map[string]string{
		"ahli":   "ahli.png",
		"alahli": "alahli.png",
		"abcd":   "abcd.png",
		"bcde":   "bcde.png",
	})
	for i := 0; i < 20; i++ {
		if got := r.Resolve("Al-Ahli Saudi"); got != "alahli.png" {
			t.Fatalf("expected longest key to win, got %q", got)
		}
		if got := r.Resolve("abcde"); got != "abcd.png" {
			t.Fatalf("expected alphabetical tie-break, got %q", got)
		}
	}
}

func TestLogoResolver_ResolveOrPlaceholder(t *testing.T) {
	r := NewLogoResolver(DefaultLogos)
	if got := r.ResolveOrPlaceholder("Nowhere United"); got != PlaceholderLogo {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestLeagues(t *testing.T) {
	got := Leagues([]Team{
		{Name: "Al-Nassr", League: "U-21"},
		{Name: "Al-Hilal", League: "U-21"},
		{Name: "Al-Nassr", League: "U-19"},
		{Name: "Orphan"},
	})
	if len(got) != 2 || got[0] != "U-21" || got[1] != "U-19" {
		t.Fatalf("unexpected leagues: %v", got)
	}
}
