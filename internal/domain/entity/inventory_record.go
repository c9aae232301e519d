package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nombres normalizados de columna (encabezado en minúsculas, espacios → "_").
const (
	ColumnProductName  = "product_name"
	ColumnCategory     = "category"
	ColumnCurrentStock = "current_stock"
	ColumnPrice        = "price"
	ColumnSupplier     = "supplier"
	ColumnLastUpdated  = "last_updated"
)

// RequiredColumns columnas que debe traer todo dataset de inventario.
var RequiredColumns = []string{ColumnProductName, ColumnCategory, ColumnCurrentStock, ColumnPrice}

// RawRow fila sin tipar tal como llega de la fuente (CSV o generador).
// Values usa los nombres normalizados de columna.
type RawRow struct {
	Number int // 1 = primera fila de datos
	Values map[string]string
}

// Get devuelve el valor de la columna o "" si no existe.
func (r RawRow) Get(column string) string {
	if r.Values == nil {
		return ""
	}
	return r.Values[column]
}

// InventoryRecord registro validado de inventario.
// Invariante: CurrentStock >= 0 y Price >= 0.
type InventoryRecord struct {
	ProductName  string
	Category     string
	CurrentStock int64
	Price        decimal.Decimal // precio unitario
	Supplier     string          // opcional
	LastUpdated  *time.Time      // opcional
}

// ValuedRecord registro con su valor de inventario (CurrentStock * Price).
type ValuedRecord struct {
	InventoryRecord
	InventoryValue decimal.Decimal
}

// ValidationWarning coerción aplicada a una fila (stock o precio inválido, fecha ilegible).
type ValidationWarning struct {
	Row         int
	ProductName string
	Field       string
	Value       string
	Message     string
}
