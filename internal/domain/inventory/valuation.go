package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// InventoryValue valor de inventario de un registro: CurrentStock * Price.
func InventoryValue(rec entity.InventoryRecord) decimal.Decimal {
	return decimal.NewFromInt(rec.CurrentStock).Mul(rec.Price)
}

// ValueRecords devuelve una colección nueva con el valor de cada registro.
func ValueRecords(records []entity.InventoryRecord) []entity.ValuedRecord {
	valued := make([]entity.ValuedRecord, 0, len(records))
	for _, rec := range records {
		valued = append(valued, entity.ValuedRecord{
			InventoryRecord: rec,
			InventoryValue:  InventoryValue(rec),
		})
	}
	return valued
}

// TotalValue suma los valores de inventario; 0 para una colección vacía.
func TotalValue(valued []entity.ValuedRecord) decimal.Decimal {
	total := decimal.Zero
	for _, v := range valued {
		total = total.Add(v.InventoryValue)
	}
	return total
}
