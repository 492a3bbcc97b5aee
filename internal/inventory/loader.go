package inventory

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"cleo/internal/model"
	"cleo/internal/parser"
)

// LoadXLSX lee un inventario desde un .xlsx. La primera fila es el header;
// las columnas se reconocen con los mismos alias tolerantes que usa el
// parser de tablas, porque los archivos llegan con encabezados informales
// ("Ref", "Unidades", "Precio").
func LoadXLSX(r io.Reader) ([]model.InventoryItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("xlsx sin filas de datos")
	}

	cols := mapColumns(rows[0])
	if _, ok := cols["material"]; !ok {
		return nil, fmt.Errorf("el xlsx no tiene columna de material")
	}

	var items []model.InventoryItem
	for _, row := range rows[1:] {
		cell := func(field string) string {
			idx, ok := cols[field]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		material := cell("material")
		if material == "" {
			continue
		}
		items = append(items, model.InventoryItem{
			Material:         material,
			Subproducto:      cell("subproducto"),
			Marca:            cell("marca"),
			Categoria:        cell("categoria"),
			Especificaciones: cell("especificaciones"),
			CantDisponible:   parser.Units(cell("cantidad")),
			PrecioContado:    parser.Price(cell("precio")),
			Tip:              cell("tip"),
		})
	}
	return items, nil
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	assign := func(field string, idx int) {
		if _, taken := cols[field]; !taken {
			cols[field] = idx
		}
	}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(key, "ref") || strings.Contains(key, "material"):
			assign("material", i)
		case strings.Contains(key, "mod") || strings.Contains(key, "subprod"):
			assign("subproducto", i)
		case strings.Contains(key, "pre"):
			assign("precio", i)
		case strings.Contains(key, "uni") || strings.Contains(key, "stoc") || strings.Contains(key, "cant"):
			assign("cantidad", i)
		case strings.Contains(key, "marc"):
			assign("marca", i)
		case strings.Contains(key, "categ"):
			assign("categoria", i)
		case strings.Contains(key, "espec") || strings.Contains(key, "caract"):
			assign("especificaciones", i)
		case strings.Contains(key, "tip"):
			assign("tip", i)
		}
	}
	return cols
}
