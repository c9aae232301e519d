package inventory

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/domain"
)

// Valores por defecto del análisis.
const (
	DefaultLowStockThreshold int64 = 20
	reorderTargetFactor      int64 = 2
)

// DefaultCriticalRatio fracción del umbral bajo la cual la alerta es CRITICAL.
var DefaultCriticalRatio = decimal.NewFromFloat(0.25)

// Settings parámetros de un análisis. Se pasan explícitamente a cada función;
// no hay estado compartido entre llamadas.
type Settings struct {
	LowStockThreshold int64           // > 0
	CriticalRatio     decimal.Decimal // 0 < x <= 1
	ReorderTarget     int64           // 0 = 2 * LowStockThreshold; si se define, > LowStockThreshold
}

// DefaultSettings umbral 20, ratio 0.25, objetivo 40.
func DefaultSettings() Settings {
	return Settings{
		LowStockThreshold: DefaultLowStockThreshold,
		CriticalRatio:     DefaultCriticalRatio,
	}
}

// Validate devuelve *domain.ConfigurationError si algún parámetro es inválido.
func (s Settings) Validate() error {
	if s.LowStockThreshold <= 0 {
		return &domain.ConfigurationError{
			Field:  "low_stock_threshold",
			Value:  strconv.FormatInt(s.LowStockThreshold, 10),
			Reason: "debe ser un entero positivo",
		}
	}
	if !s.CriticalRatio.IsPositive() || s.CriticalRatio.GreaterThan(decimal.NewFromInt(1)) {
		return &domain.ConfigurationError{
			Field:  "critical_ratio",
			Value:  s.CriticalRatio.String(),
			Reason: "debe estar en el rango (0, 1]",
		}
	}
	if s.ReorderTarget != 0 && s.ReorderTarget <= s.LowStockThreshold {
		return &domain.ConfigurationError{
			Field:  "reorder_target",
			Value:  strconv.FormatInt(s.ReorderTarget, 10),
			Reason: "debe ser mayor que low_stock_threshold",
		}
	}
	return nil
}

// CriticalCutoff stock máximo de una alerta CRITICAL: floor(umbral * ratio), mínimo 1.
func (s Settings) CriticalCutoff() int64 {
	cutoff := decimal.NewFromInt(s.LowStockThreshold).Mul(s.CriticalRatio).Floor().IntPart()
	if cutoff < 1 {
		return 1
	}
	return cutoff
}

// EffectiveReorderTarget nivel de stock que busca restaurar una sugerencia de pedido.
func (s Settings) EffectiveReorderTarget() int64 {
	if s.ReorderTarget > 0 {
		return s.ReorderTarget
	}
	return s.LowStockThreshold * reorderTargetFactor
}
