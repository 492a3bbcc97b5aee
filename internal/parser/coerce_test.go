package parser

import "testing"

func TestUnits_StripsNoise(t *testing.T) {
	if got := Units("1.500 und"); got != 1500 {
		t.Fatalf("Units() = %d, want 1500", got)
	}
}

func TestUnits_UnparsableDefaultsToZero(t *testing.T) {
	if got := Units("agotado"); got != 0 {
		t.Fatalf("Units() = %d, want 0", got)
	}
}

func TestPrice_StripsCurrencyNoise(t *testing.T) {
	if got := Price("$1,200,000"); got.IntPart() != 1200000 {
		t.Fatalf("Price() = %s, want 1200000", got)
	}
}

func TestPrice_UnparsableDefaultsToZero(t *testing.T) {
	if got := Price("consultar"); !got.IsZero() {
		t.Fatalf("Price() = %s, want 0", got)
	}
}

func TestCleanMaterial(t *testing.T) {
	if got := CleanMaterial("A-2002"); got != "2002" {
		t.Fatalf("CleanMaterial() = %q, want %q", got, "2002")
	}
}
