package model

import "github.com/shopspring/decimal"

// InstallmentMonths son los planes de cuotas presentes en cuotas.xlsx.
var InstallmentMonths = []int{6, 12, 18, 24, 36}

// QuotaPlan mapea meses -> valor de la cuota.
type QuotaPlan map[int]decimal.Decimal

// ProductRow es una fila cruda extraída de la tabla markdown de una
// respuesta del bot. Los valores numéricos (CantDisponible, Precio
// Contado) quedan como texto; la coerción ocurre al construir el
// ProductRecord.
type ProductRow struct {
	Fields   map[string]string
	HasSpec  bool
	HasImage bool
}

// Field devuelve la celda cruda del header normalizado, "" si falta.
func (r ProductRow) Field(name string) string {
	return r.Fields[name]
}

// Material es el identificador del item en el inventario.
func (r ProductRow) Material() string {
	return r.Fields["Material"]
}

// ParsedMessage es la salida del parser de tablas: prosa antes, filas de
// producto en orden de tabla, prosa después.
type ParsedMessage struct {
	BeforeTable string
	Products    []ProductRow
	AfterTable  string
}

// ProductRecord es el producto ya enriquecido que la API devuelve por card.
type ProductRecord struct {
	Material        string          `json:"material"`
	Subproducto     string          `json:"subproducto"`
	CantDisponible  int             `json:"cant_disponible"`
	PrecioContado   decimal.Decimal `json:"precio_contado"`
	Marca           string          `json:"marca,omitempty"`
	Caracteristicas string          `json:"caracteristicas,omitempty"`
	HasSpec         bool            `json:"has_spec"`
	HasImage        bool            `json:"has_image"`
	Tip             string          `json:"tip,omitempty"`
	Quotas          QuotaPlan       `json:"quotas,omitempty"`
	StockStatus     string          `json:"stock_status"`
}

// InventoryItem es una fila del inventario procesado en Postgres.
type InventoryItem struct {
	Material         string
	Subproducto      string
	Marca            string
	Categoria        string
	Especificaciones string
	CantDisponible   int
	PrecioContado    decimal.Decimal
	Tip              string
}

// SpecCatalog es el snapshot de fichas técnicas conocidas. Inmutable por
// llamada; el servidor lo renueva por completo después de cada upload.
type SpecCatalog struct {
	Filenames    []string
	IDToFilename map[string][]string
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
