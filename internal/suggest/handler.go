package suggest

import (
	"encoding/json"
	"net/http"

	"cleo/internal/observability"
	"cleo/internal/specs"
)

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
}

// Handler atiende GET /suggest?input=. El diccionario incluye los nombres
// de ficha, así que se reconstruye con el listado vigente en cada llamada.
func Handler(specsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := specs.ListFiles(specsDir)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		suggestion := New(files).Suggest(r.URL.Query().Get("input"))
		if suggestion != "" {
			observability.SuggestionsTotal.Inc()
		}

		json.NewEncoder(w).Encode(suggestResponse{Suggestion: suggestion})
	}
}
