package inventory

import (
	"testing"

	"cleo/internal/model"
)

func TestApplyIntent_CategoryAndBrand(t *testing.T) {
	items := []model.InventoryItem{
		{Material: "1", Subproducto: "TV UN50U8200", Marca: "Samsung", Categoria: "TV"},
		{Material: "2", Subproducto: "IPHONE 15", Marca: "Apple", Categoria: "Celular"},
		{Material: "3", Subproducto: "TV 55Q70", Marca: "LG", Categoria: "TV"},
	}

	got := ApplyIntent(items, Intent{Categoria: "tv", Marca: "samsung"})
	if len(got) != 1 || got[0].Material != "1" {
		t.Fatalf("ApplyIntent() = %v, want solo el material 1", got)
	}
}

func TestApplyIntent_UnclassifiedCategoryFallsBackToName(t *testing.T) {
	items := []model.InventoryItem{
		{Material: "1", Subproducto: "PATINETA ELECTRICA X7", Categoria: "Otro"},
		{Material: "2", Subproducto: "TV UN50U8200", Categoria: "Otro"},
	}

	got := ApplyIntent(items, Intent{Categoria: "patineta"})
	if len(got) != 1 || got[0].Material != "1" {
		t.Fatalf("ApplyIntent() = %v, want solo la patineta", got)
	}
}

func TestApplyIntent_ModelKeywordsMustAllHit(t *testing.T) {
	items := []model.InventoryItem{
		{Material: "1", Subproducto: "TV UN50U8200 50\"", Categoria: "TV"},
		{Material: "2", Subproducto: "TV 55Q70 55\"", Categoria: "TV"},
	}

	got := ApplyIntent(items, Intent{Modelo: "un50u8200 50 pulgadas"})
	if len(got) != 1 || got[0].Material != "1" {
		t.Fatalf("ApplyIntent() = %v, want solo el UN50U8200", got)
	}
}

func TestApplyIntent_EmptyIntentKeepsEverything(t *testing.T) {
	items := []model.InventoryItem{
		{Material: "1"}, {Material: "2"},
	}
	if got := ApplyIntent(items, Intent{}); len(got) != 2 {
		t.Fatalf("ApplyIntent() dejó %d items, want 2", len(got))
	}
}
