package specs

import (
	"strings"

	"cleo/internal/model"
)

// Una estrategia devuelve las fichas que logró resolver, nil si ninguna.
type strategy func(materialID, modelName string, cat *model.SpecCatalog) []string

// Orden estricto: el mapeo curado por backend es autoritativo; los pasos
// siguientes son heurísticos y pueden dar falsos positivos con nombres
// cortos, por eso nunca se evalúan antes.
var strategies = []struct {
	name string
	fn   strategy
}{
	{"mapping", matchMapping},
	{"material_substring", matchMaterialSubstring},
	{"normalized_model", matchNormalizedModel},
	{"keywords", matchKeywords},
}

// Resolve aplica la cadena de resolución de fichas: mapeo -> material como
// substring del filename -> contención del nombre normalizado -> overlap de
// keywords. Gana el primer paso con resultado; nil significa "sin ficha",
// que es un desenlace normal y no un error.
func Resolve(materialID, modelName string, cat *model.SpecCatalog) []string {
	found, _ := ResolveStrategy(materialID, modelName, cat)
	return found
}

// ResolveStrategy es Resolve reportando además qué paso de la cadena ganó,
// "" cuando ninguno resolvió.
func ResolveStrategy(materialID, modelName string, cat *model.SpecCatalog) ([]string, string) {
	if cat == nil {
		return nil, ""
	}
	for _, s := range strategies {
		if found := s.fn(materialID, modelName, cat); len(found) > 0 {
			return found, s.name
		}
	}
	return nil, ""
}

// HasSpec es el chequeo rápido por card: mapeo directo o, como fallback,
// overlap de keywords del modelo. Los pasos intermedios de Resolve no
// participan aquí.
func HasSpec(materialID, modelName string, cat *model.SpecCatalog) bool {
	if cat == nil {
		return false
	}
	if len(cat.IDToFilename[materialID]) > 0 {
		return true
	}
	return len(matchKeywords(materialID, modelName, cat)) > 0
}

func matchMapping(materialID, _ string, cat *model.SpecCatalog) []string {
	return cat.IDToFilename[materialID]
}

func matchMaterialSubstring(materialID, _ string, cat *model.SpecCatalog) []string {
	if materialID == "" {
		return nil
	}
	for _, f := range cat.Filenames {
		if strings.Contains(f, materialID) {
			return []string{f}
		}
	}
	return nil
}

func matchNormalizedModel(_, modelName string, cat *model.SpecCatalog) []string {
	if modelName == "" {
		return nil
	}
	search := compact(modelName)
	for _, f := range cat.Filenames {
		clean := compact(Stem(f))
		if clean == "" {
			continue
		}
		if strings.Contains(clean, search) || strings.Contains(search, clean) {
			return []string{f}
		}
	}
	return nil
}

func matchKeywords(_, modelName string, cat *model.SpecCatalog) []string {
	if modelName == "" {
		return nil
	}
	var keywords []string
	for _, k := range strings.Fields(strings.ToLower(modelName)) {
		if len(k) > 2 {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	for _, f := range cat.Filenames {
		lower := strings.ToLower(f)
		all := true
		for _, k := range keywords {
			if !strings.Contains(lower, k) {
				all = false
				break
			}
		}
		if all {
			return []string{f}
		}
	}
	return nil
}

// compact baja a minúsculas y elimina espacios y guiones, la forma usada
// para comparar modelos contra nombres de archivo.
func compact(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.ReplaceAll(s, "-", "")
}
