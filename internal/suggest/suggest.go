package suggest

import (
	"strings"

	"cleo/internal/fuzzy"
	"cleo/internal/specs"
)

// Vocabulario fijo del asistente; se complementa con los nombres de
// producto derivados de las fichas disponibles.
var (
	brands = []string{
		"Samsung", "Apple", "Motorola", "Huawei", "TCL", "Panasonic",
		"HP", "Lenovo", "Asus", "Acer", "Honor", "Xiaomi",
	}
	categories = []string{
		"TV", "Smart TV", "Celular", "Laptop", "Portátil", "Reloj",
		"Smartwatch", "Audífonos", "Parlante", "Patineta", "Tablet",
	}
)

// Solo palabras de al menos este largo disparan sugerencias.
const minTokenLen = 3

// Suggester autocompleta la última palabra que el usuario está tipeando.
type Suggester struct {
	index *fuzzy.Index
}

// New arma el diccionario: marcas + categorías + stems de fichas,
// deduplicado conservando la primera aparición.
func New(specFilenames []string) *Suggester {
	seen := make(map[string]bool)
	var dict []string
	add := func(term string) {
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		dict = append(dict, term)
	}

	for _, b := range brands {
		add(b)
	}
	for _, c := range categories {
		add(c)
	}
	for _, f := range specFilenames {
		add(specs.Stem(f))
	}

	return &Suggester{
		index: fuzzy.NewIndex(dict, fuzzy.Options{
			Threshold: 0.3,
			Distance:  10,
		}),
	}
}

// Suggest devuelve la corrección para la última palabra de input, o "" si
// no hay nada que sugerir. Solo se considera el mejor match, y se descarta
// cuando coincide (case-insensitive) con lo ya tipeado: sugerir la misma
// palabra de vuelta no aporta. No hay fallback al segundo puesto.
func (s *Suggester) Suggest(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	if len([]rune(last)) < minTokenLen {
		return ""
	}

	matches := s.index.Search(last)
	if len(matches) == 0 {
		return ""
	}
	if strings.EqualFold(matches[0].Candidate, last) {
		return ""
	}
	return matches[0].Candidate
}

// Apply reemplaza la última palabra de input por la sugerencia aceptada.
func Apply(input, suggestion string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return suggestion + " "
	}
	words[len(words)-1] = suggestion
	return strings.Join(words, " ") + " "
}
