package inventory

import (
	"sort"

	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// ClassifyLowStock devuelve una alerta por cada registro con stock <= umbral.
//
// Urgencia: CRITICAL si stock <= CriticalCutoff(), LOW en otro caso.
// Orden: CRITICAL primero, luego LOW; dentro de cada grupo stock ascendente y nombre ascendente.
// Con settings inválidos devuelve *domain.ConfigurationError y ninguna alerta.
func ClassifyLowStock(valued []entity.ValuedRecord, settings Settings) ([]entity.StockAlert, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	cutoff := settings.CriticalCutoff()
	alerts := make([]entity.StockAlert, 0)
	for _, v := range valued {
		if v.CurrentStock > settings.LowStockThreshold {
			continue
		}
		urgency := entity.UrgencyLow
		if v.CurrentStock <= cutoff {
			urgency = entity.UrgencyCritical
		}
		alerts = append(alerts, entity.StockAlert{
			Record:    v,
			Urgency:   urgency,
			Threshold: settings.LowStockThreshold,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Urgency != b.Urgency {
			return a.Urgency == entity.UrgencyCritical
		}
		if a.Record.CurrentStock != b.Record.CurrentStock {
			return a.Record.CurrentStock < b.Record.CurrentStock
		}
		return a.Record.ProductName < b.Record.ProductName
	})
	return alerts, nil
}

// CountByUrgency cuenta alertas por nivel.
func CountByUrgency(alerts []entity.StockAlert) (critical, low int) {
	for _, a := range alerts {
		if a.Urgency == entity.UrgencyCritical {
			critical++
		} else {
			low++
		}
	}
	return critical, low
}
