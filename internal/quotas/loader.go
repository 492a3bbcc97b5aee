package quotas

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cleo/internal/model"
	"cleo/internal/parser"
)

var headerNumber = regexp.MustCompile(`\d+`)

// LoadXLSX procesa un cuotas.xlsx: la primera columna reconocible como
// material identifica el equipo y cada columna cuyo encabezado contiene un
// número de plan válido (6, 12, 18, 24 o 36) aporta el valor de esa cuota.
// Montos con ruido se toleran igual que en el resto del sistema: 0 si no
// se pueden leer, y una fila sin ningún plan se descarta.
func LoadXLSX(r io.Reader) (map[string]model.QuotaPlan, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir cuotas.xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("cuotas.xlsx sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("cuotas.xlsx sin filas de datos")
	}

	materialCol := -1
	planCols := make(map[int]int) // columna -> meses
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if materialCol == -1 && (strings.Contains(key, "material") || strings.Contains(key, "ref") ||
			strings.Contains(key, "equipo") || strings.Contains(key, "codigo") || strings.Contains(key, "código")) {
			materialCol = i
			continue
		}
		if num := headerNumber.FindString(key); num != "" {
			if months, _ := strconv.Atoi(num); validMonths(months) {
				planCols[i] = months
			}
		}
	}
	if materialCol == -1 {
		return nil, fmt.Errorf("cuotas.xlsx sin columna de material")
	}
	if len(planCols) == 0 {
		return nil, fmt.Errorf("cuotas.xlsx sin columnas de cuotas")
	}

	mapping := make(map[string]model.QuotaPlan)
	for _, row := range rows[1:] {
		if materialCol >= len(row) {
			continue
		}
		material := parser.CleanMaterial(row[materialCol])
		if material == "" {
			continue
		}

		plan := model.QuotaPlan{}
		for col, months := range planCols {
			if col >= len(row) {
				continue
			}
			amount := parser.Price(row[col])
			if !amount.IsZero() {
				plan[months] = amount
			}
		}
		if len(plan) > 0 {
			mapping[material] = plan
		}
	}
	return mapping, nil
}

func validMonths(months int) bool {
	for _, m := range model.InstallmentMonths {
		if m == months {
			return true
		}
	}
	return false
}
