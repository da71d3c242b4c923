package fixture

import "testing"

func TestMatch_Played(t *testing.T) {
	if (Match{Score: "vs"}).Played() {
		t.Fatalf("vs must not count as played")
	}
	if !(Match{Score: "2-1"}).Played() {
		t.Fatalf("2-1 must count as played")
	}
	if got := (Match{Home: "Al-Nassr ", Away: "Al-Hilal"}).Label(); got != "Al-Nassr vs Al-Hilal" {
		t.Fatalf("unexpected label %q", got)
	}
}
