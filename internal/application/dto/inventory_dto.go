package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Reporte completo ──────────────────────────────────────────────────────────

// AnalysisReport resultado de una ejecución del análisis; lo consumen los exportadores.
type AnalysisReport struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Source      string           `json:"source"` // ruta del CSV o "sample"
	Settings    SettingsDTO      `json:"settings"`
	Overview    OverviewDTO      `json:"overview"`
	Alerts      []StockAlertDTO  `json:"alerts"`       // CRITICAL primero, stock ascendente
	Reorder     []ReorderLineDTO `json:"reorder"`      // mismo orden que Alerts
	ReorderSum  ReorderSumDTO    `json:"reorder_summary"`
	Categories  []CategoryDTO    `json:"categories"`   // valor total descendente
	Records     []RecordDTO      `json:"records"`      // inventario limpio y valorizado
	Warnings    []WarningDTO     `json:"warnings"`     // coerciones aplicadas
	Rejected    []RejectedDTO    `json:"rejected"`     // filas excluidas
}

// SettingsDTO parámetros efectivos usados en el análisis.
type SettingsDTO struct {
	LowStockThreshold int64           `json:"low_stock_threshold"`
	CriticalRatio     decimal.Decimal `json:"critical_ratio"`
	CriticalCutoff    int64           `json:"critical_cutoff"` // floor(umbral * ratio), mínimo 1
	ReorderTarget     int64           `json:"reorder_target"`
}

// OverviewDTO cifras generales del inventario.
type OverviewDTO struct {
	ProductCount         int             `json:"product_count"`
	TotalValue           decimal.Decimal `json:"total_value"`
	AverageValue         decimal.Decimal `json:"average_value"` // TotalValue / ProductCount
	CriticalCount        int             `json:"critical_count"`
	LowCount             int             `json:"low_count"`
	WarningCount         int             `json:"warning_count"`
	RejectedCount        int             `json:"rejected_count"`
	HighestValueCategory string          `json:"highest_value_category"`
	LowestStockCategory  string          `json:"lowest_stock_category"`
}

// ── Detalle ───────────────────────────────────────────────────────────────────

// RecordDTO registro validado con su valor de inventario.
type RecordDTO struct {
	ProductName    string          `json:"product_name"`
	Category       string          `json:"category"`
	CurrentStock   int64           `json:"current_stock"`
	Price          decimal.Decimal `json:"price"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Supplier       string          `json:"supplier,omitempty"`
	LastUpdated    string          `json:"last_updated,omitempty"` // YYYY-MM-DD
}

// StockAlertDTO producto bajo el umbral.
type StockAlertDTO struct {
	ProductName    string          `json:"product_name"`
	Category       string          `json:"category"`
	CurrentStock   int64           `json:"current_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Urgency        string          `json:"urgency"` // CRITICAL | LOW
	Threshold      int64           `json:"threshold"`
}

// ReorderLineDTO fila del reporte de reposición.
type ReorderLineDTO struct {
	ProductName       string          `json:"product_name"`
	Category          string          `json:"category"`
	CurrentStock      int64           `json:"current_stock"`
	SuggestedQuantity int64           `json:"suggested_quantity"` // objetivo - stock, mínimo 0
	UnitPrice         decimal.Decimal `json:"unit_price"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"` // SuggestedQuantity * UnitPrice
	Supplier          string          `json:"supplier,omitempty"`
	Urgency           string          `json:"urgency"`
}

// ReorderSumDTO totales de la reposición.
type ReorderSumDTO struct {
	ItemCount   int             `json:"item_count"`
	TotalUnits  int64           `json:"total_units"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	AverageCost decimal.Decimal `json:"average_cost"`
}

// CategoryDTO resumen por categoría.
type CategoryDTO struct {
	Category     string          `json:"category"`
	ItemCount    int             `json:"item_count"`
	TotalStock   int64           `json:"total_stock"`
	TotalValue   decimal.Decimal `json:"total_value"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// WarningDTO coerción aplicada por el validador.
type WarningDTO struct {
	Row         int    `json:"row"`
	ProductName string `json:"product_name"`
	Field       string `json:"field"`
	Value       string `json:"value"`
	Message     string `json:"message"`
}

// RejectedDTO fila descartada por falta de un campo obligatorio.
type RejectedDTO struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}
