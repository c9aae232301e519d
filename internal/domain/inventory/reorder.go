package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// PlanReorder sugerencia para una alerta: cantidad = max(0, objetivo - stock), costo = cantidad * precio.
func PlanReorder(alert entity.StockAlert, target int64) entity.ReorderSuggestion {
	qty := target - alert.Record.CurrentStock
	if qty < 0 {
		qty = 0
	}
	return entity.ReorderSuggestion{
		Record:            alert.Record,
		Urgency:           alert.Urgency,
		SuggestedQuantity: qty,
		EstimatedCost:     decimal.NewFromInt(qty).Mul(alert.Record.Price),
	}
}

// PlanReorders aplica PlanReorder a cada alerta con el objetivo efectivo de settings.
// Mantiene el orden de las alertas.
func PlanReorders(alerts []entity.StockAlert, settings Settings) ([]entity.ReorderSuggestion, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	target := settings.EffectiveReorderTarget()
	suggestions := make([]entity.ReorderSuggestion, 0, len(alerts))
	for _, a := range alerts {
		suggestions = append(suggestions, PlanReorder(a, target))
	}
	return suggestions, nil
}

// SummarizeReorders totales de inversión; AverageCost = TotalCost / ItemCount redondeado a centavos.
func SummarizeReorders(suggestions []entity.ReorderSuggestion) entity.ReorderSummary {
	summary := entity.ReorderSummary{
		ItemCount:   len(suggestions),
		TotalCost:   decimal.Zero,
		AverageCost: decimal.Zero,
	}
	for _, s := range suggestions {
		summary.TotalUnits += s.SuggestedQuantity
		summary.TotalCost = summary.TotalCost.Add(s.EstimatedCost)
	}
	if summary.ItemCount > 0 {
		summary.AverageCost = summary.TotalCost.Div(decimal.NewFromInt(int64(summary.ItemCount))).Round(2)
	}
	return summary
}
