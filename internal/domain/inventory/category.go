package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// AggregateByCategory agrupa por nombre exacto de categoría (sensible a mayúsculas y espacios;
// "Sports" y "sports " son categorías distintas).
// AveragePrice = TotalValue / TotalStock redondeado a centavos; 0 si TotalStock = 0.
// Orden: TotalValue descendente, empate por nombre ascendente.
func AggregateByCategory(valued []entity.ValuedRecord) []entity.CategorySummary {
	byName := make(map[string]*entity.CategorySummary)
	for _, v := range valued {
		s, ok := byName[v.Category]
		if !ok {
			s = &entity.CategorySummary{Category: v.Category, TotalValue: decimal.Zero}
			byName[v.Category] = s
		}
		s.ItemCount++
		s.TotalStock += v.CurrentStock
		s.TotalValue = s.TotalValue.Add(v.InventoryValue)
	}

	summaries := make([]entity.CategorySummary, 0, len(byName))
	for _, s := range byName {
		s.AveragePrice = decimal.Zero
		if s.TotalStock > 0 {
			s.AveragePrice = s.TotalValue.Div(decimal.NewFromInt(s.TotalStock)).Round(2)
		}
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if !a.TotalValue.Equal(b.TotalValue) {
			return a.TotalValue.GreaterThan(b.TotalValue)
		}
		return a.Category < b.Category
	})
	return summaries
}

// HighestValueCategory categoría con mayor valor total; "" si no hay categorías.
func HighestValueCategory(summaries []entity.CategorySummary) string {
	if len(summaries) == 0 {
		return ""
	}
	return summaries[0].Category
}

// LowestStockCategory categoría con menor stock total (empate por nombre); "" si no hay categorías.
func LowestStockCategory(summaries []entity.CategorySummary) string {
	lowest := ""
	var lowestStock int64
	for i, s := range summaries {
		if i == 0 || s.TotalStock < lowestStock || (s.TotalStock == lowestStock && s.Category < lowest) {
			lowest = s.Category
			lowestStock = s.TotalStock
		}
	}
	return lowest
}
