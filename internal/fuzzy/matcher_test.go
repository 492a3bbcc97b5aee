package fuzzy

import "testing"

func TestSearch_TypoRanksIntendedBrandFirst(t *testing.T) {
	ix := NewIndex([]string{"Samsung", "Apple", "Motorola"}, Options{})
	got := ix.Search("sansung")
	if len(got) != 1 {
		t.Fatalf("len(Search()) = %d, want 1", len(got))
	}
	if got[0].Candidate != "Samsung" {
		t.Fatalf("Search()[0] = %q, want %q", got[0].Candidate, "Samsung")
	}
}

func TestSearch_ExactSubstringScoresZero(t *testing.T) {
	ix := NewIndex([]string{"Smart TV", "Smartwatch"}, Options{})
	got := ix.Search("smart")
	if len(got) != 2 {
		t.Fatalf("len(Search()) = %d, want 2", len(got))
	}
	if got[0].Score != 0 || got[1].Score != 0 {
		t.Fatalf("scores = %v %v, want 0 0", got[0].Score, got[1].Score)
	}
	// Empate total: se conserva el orden del diccionario.
	if got[0].Candidate != "Smart TV" {
		t.Fatalf("Search()[0] = %q, want orden estable", got[0].Candidate)
	}
}

func TestSearch_LongCandidateMatchesByWindow(t *testing.T) {
	ix := NewIndex([]string{"huawei watch gt6 pro", "samsung galaxy fit4"}, Options{})
	got := ix.Search("gt6pro")
	if len(got) == 0 {
		t.Fatal("Search() vacío, want match por ventana")
	}
	if got[0].Candidate != "huawei watch gt6 pro" {
		t.Fatalf("Search()[0] = %q", got[0].Candidate)
	}
}

func TestSearch_ThresholdExcludesFarCandidates(t *testing.T) {
	ix := NewIndex([]string{"Apple"}, Options{})
	if got := ix.Search("patineta"); len(got) != 0 {
		t.Fatalf("Search() = %v, want vacío", got)
	}
}

func TestSearch_EmptyInputs(t *testing.T) {
	if got := NewIndex(nil, Options{}).Search("tv"); got != nil {
		t.Fatalf("Search() con diccionario vacío = %v, want nil", got)
	}
	if got := NewIndex([]string{"TV"}, Options{}).Search(""); got != nil {
		t.Fatalf("Search() con query vacía = %v, want nil", got)
	}
}

func TestSearch_NegativeThresholdMeansExactOnly(t *testing.T) {
	ix := NewIndex([]string{"Samsung", "Apple"}, Options{Threshold: -1})

	if got := ix.Search("sansung"); len(got) != 0 {
		t.Fatalf("Search() = %v, want vacío con umbral exacto", got)
	}
	got := ix.Search("samsung")
	if len(got) != 1 || got[0].Candidate != "Samsung" {
		t.Fatalf("Search() = %v, want solo Samsung", got)
	}
	if got[0].Score != 0 {
		t.Fatalf("Score = %v, want 0", got[0].Score)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	ix := NewIndex([]string{"Celular", "Parlante", "Reloj", "Laptop"}, Options{})
	a := ix.Search("celulr")
	b := ix.Search("celulr")
	if len(a) != len(b) {
		t.Fatalf("búsquedas idénticas difieren: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("resultado %d difiere: %+v vs %+v", i, a[i], b[i])
		}
	}
}
