package specs

import (
	"cleo/internal/fuzzy"
)

// Tope de fichas mostradas por búsqueda; el total real se reporta aparte.
const maxSearchResults = 100

// Searcher resuelve búsquedas libres de fichas sobre nombres normalizados.
type Searcher struct {
	filenames []string
	index     *fuzzy.Index
}

// NewSearcher indexa los filenames del catálogo por su CleanName.
func NewSearcher(filenames []string) *Searcher {
	normalized := make([]string, len(filenames))
	for i, f := range filenames {
		normalized[i] = CleanName(f)
	}
	return &Searcher{
		filenames: filenames,
		index: fuzzy.NewIndex(normalized, fuzzy.Options{
			Threshold: 0.4,
			Distance:  100,
		}),
	}
}

// Search devuelve los filenames originales rankeados y el total de matches
// antes del tope de despliegue.
func (s *Searcher) Search(query string) ([]string, int) {
	matches := s.index.Search(query)
	total := len(matches)

	shown := matches
	if len(shown) > maxSearchResults {
		shown = shown[:maxSearchResults]
	}
	files := make([]string, len(shown))
	for i, m := range shown {
		files[i] = s.filenames[m.Index]
	}
	return files, total
}
