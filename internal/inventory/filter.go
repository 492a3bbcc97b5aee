package inventory

import (
	"strings"

	"cleo/internal/model"
)

// Mapeo de sinónimos: términos del usuario -> códigos internos del
// inventario. Tiene que coincidir con los códigos normalizados que produce
// el procesamiento del inventario.
var synonyms = map[string]string{
	"port": "portatil", "portatil": "prt", "portatiles": "prt", "laptop": "prt", "laptops": "prt",
	"hp": "hewp", "hewlett": "hewp", "packard": "hewp", "ng": "negro", "ngr": "negro",
	"bl": "blanco", "blnc": "blanco", "cel": "celular", "celulares": "celular",
	"tel": "telefono", "telefonos": "celular", "aud": "audifonos", "audifono": "audifonos",
	"smrt": "smart", "watch": "reloj", "sw": "reloj",
	"ryzen": "rzn", "intel": "ic", "core": "ic", "ram": "g", "gb": "g",
}

var stopWords = map[string]bool{
	"de": true, "con": true, "el": true, "la": true, "los": true, "las": true,
	"un": true, "una": true, "en": true, "para": true, "por": true,
}

var shortCodes = map[string]bool{"tv": true, "sw": true, "bt": true, "tab": true, "ptn": true}

// Keywords reduce la consulta del usuario a los términos con los que se
// filtra el inventario: sin stop words, con sinónimos aplicados y con las
// reescrituras de categoría del asistente.
func Keywords(query string) []string {
	clean := strings.ToLower(query)
	for _, p := range []string{" pulgadas", " pulgada", " pulgs", "pulgadas", "pulgada", "pulgs"} {
		clean = strings.ReplaceAll(clean, p, `"`)
	}
	clean = strings.ReplaceAll(clean, "ram", "g")
	clean = strings.ReplaceAll(clean, "gb", "g")

	var valid []string
	for _, k := range strings.Fields(clean) {
		if stopWords[k] || k == `"` {
			continue
		}
		switch k {
		case "televisor", "televisores", "television", "televisiones":
			valid = append(valid, "tv")
			continue
		case "tablet", "tablets", "tableta", "tabletas":
			valid = append(valid, "tab")
			continue
		case "patineta", "patinetas", "scooter", "scooters":
			valid = append(valid, "ptn")
			continue
		}

		norm := k
		if strings.HasSuffix(norm, "s") && len(norm) >= 3 {
			norm = strings.TrimSuffix(norm, "s")
		}
		if s, ok := synonyms[norm]; ok {
			norm = s
		} else if s, ok := synonyms[k]; ok {
			norm = s
		}
		if len(norm) >= 2 || isDigits(norm) || strings.Contains(norm, `"`) || shortCodes[norm] {
			valid = append(valid, norm)
		}
	}

	// En búsquedas de TV los números sueltos son pulgadas.
	if contains(valid, "tv") {
		for i, k := range valid {
			if isDigits(k) && !strings.Contains(k, `"`) {
				valid[i] = k + `"`
			}
		}
	}
	return valid
}

// Filter devuelve los items donde cada keyword aparece en algún campo
// normalizado. Las keywords con comillas (pulgadas) solo se comparan contra
// el nombre del producto.
func Filter(items []model.InventoryItem, keywords []string) []model.InventoryItem {
	if len(keywords) == 0 {
		return nil
	}
	var out []model.InventoryItem
	for _, item := range items {
		if matches(item, keywords) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item model.InventoryItem, keywords []string) bool {
	sub := normalize(item.Subproducto)
	mat := normalize(item.Material)
	cat := normalize(item.Categoria)
	esp := normalize(item.Especificaciones)

	for _, k := range keywords {
		if strings.Contains(k, `"`) {
			if !strings.Contains(sub, k) {
				return false
			}
			continue
		}
		if strings.Contains(sub, k) || strings.Contains(mat, k) ||
			strings.Contains(cat, k) || strings.Contains(esp, k) {
			continue
		}
		if k == "ptn" && containsAny(sub, "ptn", "ptnet", "patinet", "scter") {
			continue
		}
		return false
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
