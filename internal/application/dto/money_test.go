package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-report/internal/application/dto"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "0.00",
		"-0.001":     "0.00",
		"305.14":     "305.14",
		"1000":       "1,000.00",
		"1234567.5":  "1,234,567.50",
		"-12":        "-12.00",
		"-4321.5":    "-4,321.50",
		"999999.999": "1,000,000.00",
		// más allá de la precisión de float64
		"90071992547409.93":       "90,071,992,547,409.93",
		"12345678901234567890.01": "12,345,678,901,234,567,890.01",
	}
	for in, want := range cases {
		assert.Equal(t, want, dto.FormatMoney(decimal.RequireFromString(in)), in)
	}
}
