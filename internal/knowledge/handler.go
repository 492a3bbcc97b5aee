package knowledge

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"cleo/internal/inventory"
)

type autoTipRequest struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
}

// ListHandler atiende GET /knowledge con la memoria experta completa.
func ListHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := repo.List()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		json.NewEncoder(w).Encode(entries)
	}
}

// UpdateHandler atiende POST /update-knowledge. Las descripciones pegadas
// desde páginas de producto llegan como HTML; se reducen a texto antes de
// guardarse.
func UpdateHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e Entry
		json.NewDecoder(r.Body).Decode(&e)

		if e.SKU == "" {
			http.Error(w, "Falta el SKU.", 400)
			return
		}
		e.Specs = ExtractText(e.Specs)

		if err := repo.Upsert(e); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Conocimiento actualizado correctamente.",
		})
	}
}

// AutoTipsHandler atiende POST /apply-auto-tips: aplica el tip a todos los
// materiales de la categoría que aún no tengan uno curado.
func AutoTipsHandler(repo *Repository, invRepo *inventory.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req autoTipRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.Category == "" || req.Tip == "" {
			http.Error(w, "Categoría y tip son obligatorios.", 400)
			return
		}

		items, err := invRepo.List()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		var targets []Entry
		for _, it := range items {
			if !strings.EqualFold(it.Categoria, req.Category) {
				continue
			}
			specs := it.Especificaciones
			if specs == "" {
				specs = "-"
			}
			targets = append(targets, Entry{
				SKU:   it.Material,
				Model: it.Subproducto,
				Specs: specs,
			})
		}

		applied, err := repo.ApplyAutoTip(targets, req.Tip)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		log.Printf("[Knowledge] Tip automático aplicado a %d equipos de %s", applied, req.Category)

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Tips aplicados.",
			"applied": applied,
		})
	}
}
