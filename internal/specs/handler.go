package specs

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type linkRequest struct {
	MaterialID string `json:"material_id"`
	Filename   string `json:"filename"`
}

type searchResponse struct {
	Files []string `json:"files"`
	Total int      `json:"total"`
}

// ListHandler atiende GET /specs-list con los filenames conocidos.
func ListHandler(svc *MappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := ListFiles(svc.SpecsDir)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if files == nil {
			files = []string{}
		}
		json.NewEncoder(w).Encode(files)
	}
}

// SearchHandler atiende GET /specs-search?q= con búsqueda difusa sobre el
// catálogo de fichas.
func SearchHandler(svc *MappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := ListFiles(svc.SpecsDir)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		matches, total := NewSearcher(files).Search(r.URL.Query().Get("q"))
		if matches == nil {
			matches = []string{}
		}
		json.NewEncoder(w).Encode(searchResponse{Files: matches, Total: total})
	}
}

// MappingHandler atiende GET /specs-mapping con el mapeo resuelto
// material -> filename para todo el inventario.
func MappingHandler(svc *MappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resolved, err := svc.Resolved()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		json.NewEncoder(w).Encode(resolved)
	}
}

// FileHandler sirve GET /specs/{filename} desde el directorio de fichas.
func FileHandler(specsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := filepath.Base(strings.TrimPrefix(r.URL.Path, "/specs/"))
		path := filepath.Join(specsDir, filename)
		if _, err := os.Stat(path); err != nil {
			http.Error(w, "Imagen no encontrada.", 404)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// UploadHandler atiende POST /upload-spec (multipart) y guarda la ficha en
// el directorio local.
func UploadHandler(svc *MappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Falta el archivo.", 400)
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".pdf", ".jpg", ".jpeg", ".png":
		default:
			http.Error(w, "Formato no soportado.", 400)
			return
		}

		path := filepath.Join(svc.SpecsDir, filepath.Base(header.Filename))
		dst, err := os.Create(path)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		svc.Invalidate()
		log.Printf("[Specs] Ficha recibida: %s", header.Filename)

		json.NewEncoder(w).Encode(map[string]string{
			"message": "Ficha técnica recibida.",
		})
	}
}

// LinkHandler atiende POST /link-spec registrando un vínculo manual
// material -> ficha.
func LinkHandler(svc *MappingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.MaterialID == "" || req.Filename == "" {
			http.Error(w, "Faltan material_id o filename.", 400)
			return
		}

		if err := svc.Repo.Link(req.MaterialID, req.Filename); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		svc.Invalidate()

		json.NewEncoder(w).Encode(map[string]string{
			"message": "Vínculo registrado.",
		})
	}
}
