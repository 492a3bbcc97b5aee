package chat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"cleo/internal/model"
)

func TestEnrichBuildsProductCards(t *testing.T) {
	answer := `Estas son las opciones disponibles:

| Referencia | Modelo | Precio Contado | Unidades | Marca |
| --- | --- | --- | --- | --- |
| 8810 | TV SAMSUNG UN50U8200 50" | $1.200.000 | 5 | Samsung |
|  | FILA SIN REFERENCIA | $10 | 1 | X |

¿Deseas ver la ficha técnica?`

	cat := &model.SpecCatalog{
		Filenames:    []string{"tv-samsung-un50u8200.png"},
		IDToFilename: map[string][]string{"8810": {"tv-samsung-un50u8200.png"}},
	}
	plans := map[string]model.QuotaPlan{
		"8810": {12: decimal.NewFromInt(110000)},
	}

	reply := Enrich(answer, cat, plans)

	require.Equal(t, answer, reply.Answer)
	require.Len(t, reply.Products, 1, "la fila sin Material debe descartarse")

	p := reply.Products[0]
	require.Equal(t, "8810", p.Material)
	require.Equal(t, `TV SAMSUNG UN50U8200 50"`, p.Subproducto)
	require.Equal(t, 5, p.CantDisponible)
	require.True(t, p.PrecioContado.Equal(decimal.NewFromInt(1200000)))
	require.Equal(t, "Samsung", p.Marca)
	require.True(t, p.HasSpec, "el mapeo del catálogo confirma la ficha")
	require.True(t, p.Quotas[12].Equal(decimal.NewFromInt(110000)))
	require.Equal(t, "STOCK BAJO", p.StockStatus)

	require.Contains(t, reply.Before, "Estas son las opciones")
	require.Contains(t, reply.After, "¿Deseas ver la ficha técnica?")
}

func TestEnrichWithoutTableReturnsRawAnswer(t *testing.T) {
	answer := "No encontré equipos con esa descripción en Bogotá. ¿Deseas buscar otra categoría?"

	reply := Enrich(answer, &model.SpecCatalog{}, nil)

	require.Equal(t, answer, reply.Answer)
	require.Nil(t, reply.Products)
	require.Empty(t, reply.Before)
	require.Empty(t, reply.After)
}

func TestEnrichKeepsRawMaterialAndLooksUpQuotasByCleanID(t *testing.T) {
	answer := `| Material | Modelo | Unidades | Precio |
| --- | --- | --- | --- |
| MAT-7755 | RELOJ HUAWEI WATCH GT6 PRO | 0 | $890.000 |`

	reply := Enrich(answer, &model.SpecCatalog{}, map[string]model.QuotaPlan{
		"7755": {6: decimal.NewFromInt(160000)},
	})

	require.Len(t, reply.Products, 1)
	p := reply.Products[0]
	require.Equal(t, "MAT-7755", p.Material, "el Material del card conserva la forma cruda")
	require.Equal(t, "AGOTADO", p.StockStatus)
	require.True(t, p.Quotas[6].Equal(decimal.NewFromInt(160000)),
		"las cuotas se encuentran por la forma solo-dígitos")
	require.False(t, p.HasSpec)
}

func TestEnrichQuotasFallBackToRawMaterial(t *testing.T) {
	answer := `| Material | Modelo | Unidades | Precio |
| --- | --- | --- | --- |
| A-99 | PARLANTE JBL GO4 | 8 | $230.000 |
| ABC | CABLE USB-C | 20 | $40.000 |`

	reply := Enrich(answer, &model.SpecCatalog{}, map[string]model.QuotaPlan{
		"A-99": {12: decimal.NewFromInt(21000)},
	})

	require.Len(t, reply.Products, 2, "un Material sin dígitos sigue siendo un Material")

	require.Equal(t, "A-99", reply.Products[0].Material)
	require.True(t, reply.Products[0].Quotas[12].Equal(decimal.NewFromInt(21000)),
		"plan registrado bajo el id crudo: el fallback debe encontrarlo")

	require.Equal(t, "ABC", reply.Products[1].Material)
	require.Nil(t, reply.Products[1].Quotas)
}

func TestEnrichIgnoresTableFichaColumn(t *testing.T) {
	answer := `| Material | Modelo | Ficha | Unidades | Precio |
| --- | --- | --- | --- | --- |
| 8810 | TV SAMSUNG UN50U8200 50" | SI | 5 | $1.200.000 |`

	// Catálogo vacío: aunque la tabla diga SI, no hay ficha que servir.
	reply := Enrich(answer, &model.SpecCatalog{}, nil)

	require.Len(t, reply.Products, 1)
	require.False(t, reply.Products[0].HasSpec,
		"la columna Ficha de la tabla no basta sin respaldo del catálogo")
}
