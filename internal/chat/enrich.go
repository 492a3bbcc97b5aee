package chat

import (
	"strings"

	"cleo/internal/inventory"
	"cleo/internal/model"
	"cleo/internal/parser"
	"cleo/internal/quotas"
	"cleo/internal/specs"
)

// Reply es el cuerpo de la respuesta de /chat. Cuando la IA no devolvió
// una tabla, Products queda nil y Answer lleva el texto crudo.
type Reply struct {
	Answer   string                `json:"answer"`
	Products []model.ProductRecord `json:"products,omitempty"`
	Before   string                `json:"before,omitempty"`
	After    string                `json:"after,omitempty"`
}

// Enrich convierte la respuesta de la IA en cards de producto: parsea la
// tabla markdown, descarta filas sin Material, coerce números, confirma
// fichas contra el catálogo y adjunta cuotas y estado de stock.
func Enrich(
	answer string,
	cat *model.SpecCatalog,
	plans map[string]model.QuotaPlan,
) *Reply {

	parsed := parser.Parse(answer)
	if parsed == nil {
		return &Reply{Answer: answer}
	}

	records := []model.ProductRecord{}
	for _, row := range parsed.Products {
		// El Material se muestra crudo; la forma solo-dígitos es únicamente
		// para lookups y la aplican los propios mapeos.
		material := strings.TrimSpace(row.Material())
		if material == "" {
			continue
		}

		modelName := row.Field("Subproducto")

		rec := model.ProductRecord{
			Material:        material,
			Subproducto:     modelName,
			CantDisponible:  parser.Units(row.Field("CantDisponible")),
			PrecioContado:   parser.Price(row.Field("Precio Contado")),
			Marca:           row.Field("Marca"),
			Caracteristicas: row.Field("Caracteristicas"),
			HasImage:        row.HasImage,
			Tip:             row.Field("tip"),
		}

		// La columna "Ficha" de la tabla es solo una pista de la IA y se
		// ignora; la confirmación viene del catálogo de fichas.
		rec.HasSpec = specs.HasSpec(material, modelName, cat)
		rec.Quotas = quotas.ForMaterial(plans, material)
		rec.StockStatus = inventory.StockStatus(rec.CantDisponible)

		records = append(records, rec)
	}

	return &Reply{
		Answer:   answer,
		Products: records,
		Before:   parsed.BeforeTable,
		After:    parsed.AfterTable,
	}
}
