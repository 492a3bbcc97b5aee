package inventory

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildInventoryFile(t *testing.T, header []string, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

func TestLoadXLSX_ReadsItemsWithLooseHeaders(t *testing.T) {
	buf := buildInventoryFile(t,
		[]string{"Ref", "Subproducto", "Marca", "Categoria", "Caracteristicas", "Unidades", "Precio Contado", "Tip"},
		[][]string{
			{"8810", "TV SAMSUNG UN50U8200 50\"", "Samsung", "TV", "4K UHD", "12", "$1.200.000", "Pantalla Crystal"},
			{"", "FILA SIN MATERIAL", "", "", "", "1", "$10", ""},
		},
	)

	items, err := LoadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, items, 1, "las filas sin material se descartan")

	it := items[0]
	require.Equal(t, "8810", it.Material)
	require.Equal(t, "TV SAMSUNG UN50U8200 50\"", it.Subproducto)
	require.Equal(t, "Samsung", it.Marca)
	require.Equal(t, "TV", it.Categoria)
	require.Equal(t, "4K UHD", it.Especificaciones)
	require.Equal(t, 12, it.CantDisponible)
	require.True(t, it.PrecioContado.Equal(decimal.NewFromInt(1200000)))
	require.Equal(t, "Pantalla Crystal", it.Tip)
}

func TestLoadXLSX_MissingMaterialColumn(t *testing.T) {
	buf := buildInventoryFile(t,
		[]string{"Producto", "Precio"},
		[][]string{{"TV", "$100"}},
	)

	_, err := LoadXLSX(buf)
	require.Error(t, err)
}
