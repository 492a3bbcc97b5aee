package fuzzy

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// Defaults calcados de la configuración del buscador original.
const (
	DefaultThreshold = 0.3
	DefaultDistance  = 10
)

// Options controla la tolerancia del matcher. Threshold es el score máximo
// aceptado en escala 0 (exacto) a 1; Distance es la ventana máxima de
// edición permitida. El valor cero de cada campo toma el default; un
// Threshold negativo pide solo matches exactos (score 0).
type Options struct {
	Threshold float64
	Distance  int
}

// Match es un candidato aceptado, con su posición original en el
// diccionario para desempates estables.
type Match struct {
	Candidate string
	Index     int
	Score     float64
	Distance  int
}

// Index es un diccionario preparado para búsquedas repetidas. Inmutable
// después de construido, puede compartirse entre goroutines.
type Index struct {
	candidates []string
	lowered    []string
	opts       Options
}

// NewIndex construye el índice sobre los candidatos en el orden dado.
func NewIndex(candidates []string, opts Options) *Index {
	if opts.Threshold < 0 {
		opts.Threshold = 0
	} else if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Distance <= 0 {
		opts.Distance = DefaultDistance
	}

	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}
	return &Index{candidates: candidates, lowered: lowered, opts: opts}
}

// Search devuelve los candidatos que pasan el umbral, mejor primero.
// Empates: menor distancia de edición, luego orden original. Query o
// diccionario vacíos producen un resultado vacío, nunca un error.
func (ix *Index) Search(query string) []Match {
	if query == "" || len(ix.candidates) == 0 {
		return nil
	}
	q := strings.ToLower(query)

	var out []Match
	for i, cand := range ix.lowered {
		dist, score := ix.score(q, cand)
		if score > ix.opts.Threshold || dist > ix.opts.Distance {
			continue
		}
		out = append(out, Match{
			Candidate: ix.candidates[i],
			Index:     i,
			Score:     score,
			Distance:  dist,
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score < out[b].Score
		}
		return out[a].Distance < out[b].Distance
	})
	return out
}

// score mide qué tan lejos está query de candidate. Substring exacto cuenta
// como match perfecto; si no, se toma la mejor ventana del candidato contra
// la query (búsqueda aproximada de substring, misma familia Levenshtein).
func (ix *Index) score(query, candidate string) (int, float64) {
	if strings.Contains(candidate, query) {
		return 0, 0
	}

	qr := []rune(query)
	cr := []rune(candidate)
	if len(cr) <= len(qr)+2 {
		d := matchr.Levenshtein(query, candidate)
		return d, normalize(d, len(qr), len(cr))
	}

	// Candidato largo: la query debe parecerse a algún tramo, no al
	// candidato entero. Ventanas de largo len(q)-2 .. len(q)+2.
	best := -1
	bestLen := 0
	for w := len(qr) - 2; w <= len(qr)+2; w++ {
		if w < 1 || w > len(cr) {
			continue
		}
		for start := 0; start+w <= len(cr); start++ {
			d := matchr.Levenshtein(query, string(cr[start:start+w]))
			if best == -1 || d < best {
				best = d
				bestLen = w
			}
		}
	}
	return best, normalize(best, len(qr), bestLen)
}

func normalize(dist, qlen, clen int) float64 {
	longer := qlen
	if clen > longer {
		longer = clen
	}
	if longer == 0 {
		return 0
	}
	return float64(dist) / float64(longer)
}
