package entity

import "github.com/shopspring/decimal"

// Urgency nivel de urgencia de una alerta de stock bajo.
type Urgency string

const (
	UrgencyCritical Urgency = "CRITICAL"
	UrgencyLow      Urgency = "LOW"
)

// StockAlert producto con stock <= umbral.
type StockAlert struct {
	Record    ValuedRecord
	Urgency   Urgency
	Threshold int64 // umbral usado en la clasificación
}

// ReorderSuggestion cantidad sugerida de pedido y su costo para un producto en alerta.
type ReorderSuggestion struct {
	Record            ValuedRecord
	Urgency           Urgency
	SuggestedQuantity int64           // max(0, objetivo - stock)
	EstimatedCost     decimal.Decimal // SuggestedQuantity * Price
}

// ReorderSummary totales de la lista de reposición.
type ReorderSummary struct {
	ItemCount   int
	TotalUnits  int64
	TotalCost   decimal.Decimal
	AverageCost decimal.Decimal // TotalCost / ItemCount; 0 si no hay ítems
}

// CategorySummary agregados por categoría (coincidencia exacta del nombre).
type CategorySummary struct {
	Category     string
	ItemCount    int
	TotalStock   int64
	TotalValue   decimal.Decimal
	AveragePrice decimal.Decimal // TotalValue / TotalStock; 0 si TotalStock = 0
}
