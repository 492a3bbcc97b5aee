package inventory

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"cleo/internal/specs"
)

type uploadResponse struct {
	Message string `json:"message"`
	Items   int    `json:"items"`
}

// UploadHandler atiende POST /upload-inventory: recibe el xlsx y reemplaza
// el snapshot completo de inventario.
func UploadHandler(repo *Repository, mapping *specs.MappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Falta el archivo.", 400)
			return
		}
		defer file.Close()

		if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
			http.Error(w, "Solo se acepta inventario en formato xlsx.", 400)
			return
		}

		items, err := LoadXLSX(file)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}

		if err := repo.Replace(items, header.Filename); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		mapping.Invalidate()

		log.Printf("[Inventory] Inventario cargado: %s (%d items)", header.Filename, len(items))

		json.NewEncoder(w).Encode(uploadResponse{
			Message: "Inventario procesado.",
			Items:   len(items),
		})
	}
}

// MetadataHandler atiende GET /inventory-metadata con los datos de la
// última carga.
func MetadataHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := repo.LastUpload()
		if err == pgx.ErrNoRows {
			http.Error(w, "Sin inventario cargado.", 404)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		json.NewEncoder(w).Encode(info)
	}
}

// FindHandler atiende GET /find-product?material= con el lookup exacto.
func FindHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		material := r.URL.Query().Get("material")
		if material == "" {
			http.Error(w, "Falta el parámetro material.", 400)
			return
		}

		item, err := repo.FindByMaterial(material)
		if err == pgx.ErrNoRows {
			http.Error(w, "Producto no encontrado.", 404)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		json.NewEncoder(w).Encode(item)
	}
}
