package importer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// nonNumericRe todo lo que no sea dígito o punto decimal.
	nonNumericRe = regexp.MustCompile(`[^0-9.]`)
	// leadingNumberRe número inicial tras la limpieza; "1.2.3" produce "1.2".
	leadingNumberRe = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// extractNumber limpia el texto dejando solo dígitos y puntos y toma el número inicial.
// Sin manejo de configuración regional: "1,000" es 1000 y "1.000,5" es 1.0005.
// ok=false si no queda ningún número.
func extractNumber(s string) (decimal.Decimal, bool) {
	cleaned := nonNumericRe.ReplaceAllString(s, "")
	m := leadingNumberRe.FindString(cleaned)
	if m == "" {
		return decimal.Zero, false
	}
	m = strings.TrimSuffix(m, ".")
	if strings.HasPrefix(m, ".") {
		m = "0" + m
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
