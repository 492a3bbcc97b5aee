package inventory

import (
	"fmt"
	"sort"
	"strings"

	"cleo/internal/model"
	"cleo/internal/specs"
)

// Máximo de productos que entran al contexto de la IA por consulta.
const maxContextProducts = 20

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// FormatContext arma el bloque de inventario que se inyecta al prompt:
// una línea por producto con ficha, imagen, stock, precio y tip. El orden
// prioriza stock alto y luego precio, deduplicando por material.
func FormatContext(items []model.InventoryItem, cat *model.SpecCatalog, tips map[string]string) string {
	if len(items) == 0 {
		return "No se encontraron productos que coincidan exactamente con la búsqueda."
	}

	sorted := make([]model.InventoryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].CantDisponible != sorted[b].CantDisponible {
			return sorted[a].CantDisponible > sorted[b].CantDisponible
		}
		return sorted[a].PrecioContado.GreaterThan(sorted[b].PrecioContado)
	})

	seen := make(map[string]bool)
	var b strings.Builder
	count := 0
	for _, item := range sorted {
		if seen[item.Material] {
			continue
		}
		seen[item.Material] = true
		if count >= maxContextProducts {
			break
		}
		count++

		fichaTag, imgTag := "NO", "NO"
		if found := specs.Resolve(item.Material, item.Subproducto, cat); len(found) > 0 {
			fichaTag = "SI"
			if isImage(found[0]) {
				imgTag = "SI"
			}
		}

		tip := tips[item.Material]
		if tip == "" {
			tip = item.Tip
		}
		if tip == "" {
			tip = "-"
		}

		fmt.Fprintf(&b,
			"- [ID: %s] MODELO: %s | FICHA: %s | IMG: %s | CATEGORIA: %s | MARCA: %s | DESC: %s | STOCK: %d | PRECIO CONTADO: $%s | TIP: %s\n",
			item.Material, item.Subproducto, fichaTag, imgTag,
			orDash(item.Categoria), orDash(item.Marca), orDash(item.Especificaciones),
			item.CantDisponible, item.PrecioContado.StringFixed(0), tip,
		)
	}
	return b.String()
}

func isImage(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
