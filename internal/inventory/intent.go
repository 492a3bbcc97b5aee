package inventory

import (
	"strings"

	"cleo/internal/model"
)

// Intent es el resultado del análisis de intención de búsqueda hecho por
// la IA cuando el filtrado directo por keywords no encontró nada útil.
type Intent struct {
	Categoria string `json:"categoria"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
}

var categorySynonyms = map[string][]string{
	"tv":        {"tv", "televis", "smart"},
	"audífonos": {"aud", "auric", "buds"},
	"celular":   {"cel", "tel", "phone", "iphone", "galaxy"},
	"tablet":    {"tablet", "tab", "ipad"},
	"patineta":  {"patine", "ptnta", "ptneta", "scter", "scooter"},
}

// ApplyIntent filtra el inventario con los campos extraídos por la IA.
// Cada filtro es progresivo; un filtro vacío no descarta nada.
func ApplyIntent(items []model.InventoryItem, intent Intent) []model.InventoryItem {
	results := items

	if intent.Categoria != "" {
		catFilter := strings.ToLower(intent.Categoria)
		var kept []model.InventoryItem
		for _, it := range results {
			if matchesCategory(it, catFilter) {
				kept = append(kept, it)
			}
		}
		results = kept
	}

	if intent.Marca != "" && len(results) > 0 {
		brand := strings.ToLower(intent.Marca)
		var kept []model.InventoryItem
		for _, it := range results {
			itemBrand := normalize(it.Marca)
			if strings.Contains(itemBrand, brand) || strings.Contains(brand, itemBrand) {
				kept = append(kept, it)
			}
		}
		results = kept
	}

	if intent.Modelo != "" && len(results) > 0 {
		raw := normalize(intent.Modelo)
		raw = strings.ReplaceAll(raw, "pulgadas", `"`)
		raw = strings.ReplaceAll(raw, "pulgada", `"`)
		raw = strings.ReplaceAll(raw, "pulgs", `"`)

		var modKeywords []string
		for _, w := range strings.Fields(raw) {
			if len(w) > 1 && w != `"` {
				modKeywords = append(modKeywords, w)
			}
		}
		if len(modKeywords) > 0 {
			var kept []model.InventoryItem
			for _, it := range results {
				if matchesModel(it, modKeywords) {
					kept = append(kept, it)
				}
			}
			results = kept
		}
	}

	return results
}

func matchesCategory(it model.InventoryItem, catFilter string) bool {
	itemCat := normalize(it.Categoria)
	if strings.Contains(itemCat, catFilter) || strings.Contains(catFilter, itemCat) {
		return true
	}
	// Categorías sin clasificar se rescatan buscando en el nombre.
	switch itemCat {
	case "n/a", "otro", "", "none":
		itemName := normalize(it.Subproducto)
		for _, s := range append([]string{catFilter}, categorySynonyms[catFilter]...) {
			if strings.Contains(itemName, s) {
				return true
			}
		}
	}
	return false
}

func matchesModel(it model.InventoryItem, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(normalize(it.Subproducto), k) &&
			!strings.Contains(normalize(it.Material), k) &&
			!strings.Contains(normalize(it.Especificaciones), k) {
			return false
		}
	}
	return true
}
