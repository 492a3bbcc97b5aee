package parser

import (
	"strings"

	"cleo/internal/model"
)

// Parse localiza la primera tabla markdown (header + separador "---") dentro
// del texto de una respuesta y la convierte en filas de producto. Devuelve
// nil cuando no hay tabla válida; el caller debe renderizar el texto crudo.
//
// Solo la primera tabla se parsea: una segunda tabla más adelante queda
// intacta dentro de AfterTable. Comportamiento heredado a propósito.
func Parse(text string) *model.ParsedMessage {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 3 {
		return nil
	}

	headerIdx := -1
	for i := 0; i < len(lines)-1; i++ {
		if strings.Contains(lines[i], "|") &&
			strings.Contains(lines[i+1], "|") &&
			strings.Contains(lines[i+1], "---") {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil
	}

	var headers []string
	for _, h := range strings.Split(lines[headerIdx], "|") {
		h = strings.TrimSpace(h)
		if h != "" {
			headers = append(headers, h)
		}
	}

	rows := []model.ProductRow{}
	next := headerIdx + 2
	for ; next < len(lines); next++ {
		if !strings.Contains(lines[next], "|") {
			break
		}
		rows = append(rows, parseRow(lines[next], headers))
	}

	return &model.ParsedMessage{
		BeforeTable: strings.Join(lines[:headerIdx], "\n"),
		Products:    rows,
		AfterTable:  strings.Join(lines[next:], "\n"),
	}
}

func parseRow(line string, headers []string) model.ProductRow {
	clean := strings.TrimSpace(line)
	clean = strings.TrimPrefix(clean, "|")
	clean = strings.TrimSuffix(clean, "|")

	values := strings.Split(clean, "|")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	row := model.ProductRow{Fields: make(map[string]string, len(headers))}
	for i, header := range headers {
		val := ""
		if i < len(values) {
			val = values[i]
		}

		key := strings.ToLower(header)
		switch {
		case strings.Contains(key, "ref") || strings.Contains(key, "material"):
			row.Fields["Material"] = val
		case strings.Contains(key, "mod"):
			row.Fields["Subproducto"] = val
		case strings.Contains(key, "pre"):
			row.Fields["Precio Contado"] = val
		case strings.Contains(key, "uni") || strings.Contains(key, "stoc") || strings.Contains(key, "cant"):
			row.Fields["CantDisponible"] = val
		case strings.Contains(key, "marc"):
			row.Fields["Marca"] = val
		case strings.Contains(key, "caract"):
			row.Fields["Caracteristicas"] = val
		case strings.Contains(key, "fich"):
			row.HasSpec = strings.ToUpper(val) == "SI"
		case strings.Contains(key, "imag"):
			row.HasImage = strings.ToUpper(val) == "VER"
		case strings.Contains(key, "tip"):
			row.Fields["tip"] = val
		default:
			// Header desconocido: se conserva tal cual.
			row.Fields[header] = val
		}
	}
	return row
}
