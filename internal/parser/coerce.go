package parser

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// Units convierte un conteo de stock con ruido ("1.500 und", "$ 15") a
// entero. Ante cualquier falla devuelve 0: la calidad del dato upstream no
// está garantizada y un card con 0 unidades es preferible a un error.
func Units(s string) int {
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(s, ""))
	if err != nil {
		return 0
	}
	return n
}

// Price convierte un precio con ruido ("$1,200,000") a decimal, 0 si falla.
func Price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(nonDigits.ReplaceAllString(s, ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CleanMaterial deja solo los dígitos del identificador de material, que es
// la forma usada como clave en los mapeos de cuotas y fichas.
func CleanMaterial(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
