package inventory

import (
	"testing"

	"cleo/internal/model"
)

func TestKeywords_StopWordsAndSynonyms(t *testing.T) {
	got := Keywords("un laptop de hp para la casa")
	want := []string{"prt", "hewp", "casa"}
	if len(got) != len(want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeywords_TVNumbersBecomeInches(t *testing.T) {
	got := Keywords("televisor 55")
	if len(got) != 2 || got[0] != "tv" || got[1] != `55"` {
		t.Fatalf("Keywords() = %v, want [tv 55\"]", got)
	}
}

func TestKeywords_PulgadasRewrite(t *testing.T) {
	got := Keywords("tv 50 pulgadas")
	for _, k := range got {
		if k == "pulgadas" {
			t.Fatalf("Keywords() = %v, la palabra pulgadas debió reescribirse", got)
		}
	}
}

func TestFilter_EveryKeywordMustHit(t *testing.T) {
	items := []model.InventoryItem{
		{Material: "1001", Subproducto: "PRT HEWP 15 RZN", Categoria: "prt"},
		{Material: "2002", Subproducto: "CEL SAMS GALAXY", Categoria: "celular"},
	}
	got := Filter(items, []string{"prt", "hewp"})
	if len(got) != 1 || got[0].Material != "1001" {
		t.Fatalf("Filter() = %v, want solo el portátil", got)
	}
}

func TestFilter_QuotedKeywordOnlyAgainstSubproducto(t *testing.T) {
	items := []model.InventoryItem{
		{Material: "1001", Subproducto: `TV SAMS 55"`, Especificaciones: "smart"},
		{Material: "2002", Subproducto: "TV SAMS 40", Especificaciones: `55" compat`},
	}
	got := Filter(items, []string{`55"`})
	if len(got) != 1 || got[0].Material != "1001" {
		t.Fatalf("Filter() = %v, want solo el de 55 pulgadas", got)
	}
}

func TestFilter_EmptyKeywords(t *testing.T) {
	items := []model.InventoryItem{{Material: "1001"}}
	if got := Filter(items, nil); got != nil {
		t.Fatalf("Filter() = %v, want nil sin keywords", got)
	}
}
