package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/domain"
	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// ValidationResult salida del validador: registros tipados, coerciones aplicadas y filas rechazadas.
type ValidationResult struct {
	Records  []entity.InventoryRecord
	Warnings []entity.ValidationWarning
	Rejected []*domain.InvalidRecordError
}

// ValidateRows convierte filas crudas en InventoryRecord.
//
// Reglas:
//   - product_name y category vacíos: la fila se rechaza con InvalidRecordError.
//   - current_stock ilegible o negativo: 0 con advertencia; fraccionario: se trunca con advertencia.
//   - price ilegible o negativo: 0.00 con advertencia.
//   - last_updated ilegible: nil con advertencia.
//
// Nunca devuelve error: todo problema queda en Warnings o Rejected.
func ValidateRows(rows []entity.RawRow) ValidationResult {
	res := ValidationResult{
		Records:  make([]entity.InventoryRecord, 0, len(rows)),
		Warnings: []entity.ValidationWarning{},
		Rejected: []*domain.InvalidRecordError{},
	}

	for _, row := range rows {
		name := cleanCell(row.Get(entity.ColumnProductName))
		if name == "" {
			res.Rejected = append(res.Rejected, &domain.InvalidRecordError{Row: row.Number, Field: entity.ColumnProductName})
			continue
		}
		category := cleanCell(row.Get(entity.ColumnCategory))
		if category == "" {
			res.Rejected = append(res.Rejected, &domain.InvalidRecordError{Row: row.Number, Field: entity.ColumnCategory})
			continue
		}

		warn := func(field, value, msg string) {
			res.Warnings = append(res.Warnings, entity.ValidationWarning{
				Row:         row.Number,
				ProductName: name,
				Field:       field,
				Value:       value,
				Message:     msg,
			})
		}

		rec := entity.InventoryRecord{
			ProductName:  name,
			Category:     category,
			CurrentStock: parseStock(row.Get(entity.ColumnCurrentStock), warn),
			Price:        parsePrice(row.Get(entity.ColumnPrice), warn),
			Supplier:     cleanCell(row.Get(entity.ColumnSupplier)),
		}

		if raw := cleanCell(row.Get(entity.ColumnLastUpdated)); raw != "" {
			if t, ok := parseDate(raw); ok {
				rec.LastUpdated = &t
			} else {
				warn(entity.ColumnLastUpdated, raw, "fecha ilegible, se deja vacía")
			}
		}

		res.Records = append(res.Records, rec)
	}
	return res
}

// maxStock mayor stock representable en int64.
var maxStock = decimal.NewFromInt(math.MaxInt64)

func parseStock(raw string, warn func(field, value, msg string)) int64 {
	s, ok := cleanNumeric(raw)
	if !ok {
		warn(entity.ColumnCurrentStock, raw, "stock ilegible, se usa 0")
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		warn(entity.ColumnCurrentStock, raw, "stock ilegible, se usa 0")
		return 0
	}
	if d.IsNegative() {
		warn(entity.ColumnCurrentStock, raw, "stock negativo, se usa 0")
		return 0
	}
	if d.Truncate(0).GreaterThan(maxStock) {
		warn(entity.ColumnCurrentStock, raw, "stock fuera de rango, se usa 0")
		return 0
	}
	if !d.Equal(d.Truncate(0)) {
		warn(entity.ColumnCurrentStock, raw, "stock fraccionario, se trunca")
	}
	return d.Truncate(0).IntPart()
}

func parsePrice(raw string, warn func(field, value, msg string)) decimal.Decimal {
	s, ok := cleanNumeric(raw)
	if !ok {
		warn(entity.ColumnPrice, raw, "precio ilegible, se usa 0.00")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		warn(entity.ColumnPrice, raw, "precio ilegible, se usa 0.00")
		return decimal.Zero
	}
	if d.IsNegative() {
		warn(entity.ColumnPrice, raw, "precio negativo, se usa 0.00")
		return decimal.Zero
	}
	return d
}
