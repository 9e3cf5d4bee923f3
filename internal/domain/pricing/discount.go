package pricing

import "github.com/shopspring/decimal"

// MaxDiscount porcentaje máximo aceptado en una rebaja por categoría.
var MaxDiscount = decimal.NewFromInt(100)

var hundred = decimal.NewFromInt(100)

// ApplyDiscount devuelve price * (1 - percent/100) redondeado a 2 decimales
// (misma precisión que la columna numeric(12,2)).
func ApplyDiscount(price, percent decimal.Decimal) decimal.Decimal {
	if percent.IsZero() {
		return price
	}
	factor := decimal.NewFromInt(1).Sub(percent.Div(hundred))
	return price.Mul(factor).Round(2)
}

// ValidDiscount indica si percent está en [0, 100].
func ValidDiscount(percent decimal.Decimal) bool {
	return !percent.IsNegative() && percent.LessThanOrEqual(MaxDiscount)
}
