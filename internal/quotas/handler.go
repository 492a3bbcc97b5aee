package quotas

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

type uploadResponse struct {
	Message string `json:"message"`
	Equipos int    `json:"equipos"`
}

// MappingHandler atiende GET /quotas con el mapeo material -> planes.
func MappingHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mapping, err := repo.Mapping()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		json.NewEncoder(w).Encode(mapping)
	}
}

// UploadHandler atiende POST /upload-quotas: parsea cuotas.xlsx y
// reemplaza todos los planes.
func UploadHandler(repo *Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Falta el archivo.", 400)
			return
		}
		defer file.Close()

		if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
			http.Error(w, "Solo se acepta el archivo de cuotas en formato xlsx.", 400)
			return
		}

		mapping, err := LoadXLSX(file)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}

		if err := repo.ReplaceAll(mapping); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		log.Printf("[Quotas] Planes cargados: %d equipos", len(mapping))

		json.NewEncoder(w).Encode(uploadResponse{
			Message: "Planes de cuotas procesados.",
			Equipos: len(mapping),
		})
	}
}
