package inventory

// Etiquetas de estado de stock tal como las muestran los cards.
const (
	StatusAgotado = "AGOTADO"
	StatusCritico = "STOCK CRÍTICO"
	StatusBajo    = "STOCK BAJO"
	StatusEnStock = "EN STOCK"
)

// StockStatus clasifica unidades disponibles. Límites inclusivos:
// 0 agotado, 1-3 crítico, 4-9 bajo, 10 o más en stock.
func StockStatus(units int) string {
	switch {
	case units <= 0:
		return StatusAgotado
	case units <= 3:
		return StatusCritico
	case units <= 9:
		return StatusBajo
	default:
		return StatusEnStock
	}
}
