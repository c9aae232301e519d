package dto

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney redondea a centavos y agrupa miles con comas sin pasar por float64.
// Ej: 1234567.5 → "1,234,567.50", -12 → "-12.00"
func FormatMoney(d decimal.Decimal) string {
	rounded := d.Round(2)
	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	n, _ := new(big.Int).SetString(intPart, 10)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + humanize.BigComma(n) + "." + frac
}
