package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/application/dto"
	"github.com/jhoicas/inventory-report/internal/domain/entity"
	"github.com/jhoicas/inventory-report/internal/domain/inventory"
	"github.com/jhoicas/inventory-report/pkg/logger"
)

// AnalysisUseCase ejecuta un análisis completo de salud de inventario:
// valida la configuración, carga y limpia las filas, calcula alertas, reposición
// y resumen por categoría, y entrega el reporte a cada exportador.
type AnalysisUseCase struct {
	source    RecordSource
	exporters []ReportExporter
	log       *logger.Logger
	now       func() time.Time
}

// NewAnalysisUseCase construye el caso de uso. Los exportadores se ejecutan en el orden recibido.
func NewAnalysisUseCase(source RecordSource, log *logger.Logger, exporters ...ReportExporter) *AnalysisUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AnalysisUseCase{
		source:    source,
		exporters: exporters,
		log:       log,
		now:       time.Now,
	}
}

// WithClock fija el reloj usado para GeneratedAt (tests).
func (uc *AnalysisUseCase) WithClock(now func() time.Time) *AnalysisUseCase {
	uc.now = now
	return uc
}

// Run devuelve el reporte generado. Un error de configuración se devuelve antes de leer datos;
// el primer error de un exportador corta la ejecución.
func (uc *AnalysisUseCase) Run(ctx context.Context, settings inventory.Settings) (*dto.AnalysisReport, error) {
	// 1. Configuración: falla rápido, sin resultados parciales
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	runID := uuid.NewString()
	log := uc.log.WithStr("run_id", runID)

	// 2. Carga de filas crudas
	rows, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("analysis: cargar %s: %w", uc.source.Name(), err)
	}
	log.Info().Str("source", uc.source.Name()).Int("rows", len(rows)).Msg("datos cargados")

	// 3. Validación: coerciones y rechazos quedan registrados
	validation := inventory.ValidateRows(rows)
	for _, w := range validation.Warnings {
		log.Warn().
			Int("row", w.Row).
			Str("product", w.ProductName).
			Str("field", w.Field).
			Str("value", w.Value).
			Msg(w.Message)
	}
	for _, r := range validation.Rejected {
		log.Warn().Err(r).Int("row", r.Row).Str("field", r.Field).Msg("fila descartada")
	}

	// 4. Análisis
	valued := inventory.ValueRecords(validation.Records)
	categories := inventory.AggregateByCategory(valued)
	alerts, err := inventory.ClassifyLowStock(valued, settings)
	if err != nil {
		return nil, fmt.Errorf("analysis: clasificar: %w", err)
	}
	suggestions, err := inventory.PlanReorders(alerts, settings)
	if err != nil {
		return nil, fmt.Errorf("analysis: reposición: %w", err)
	}

	report := buildReport(runID, uc.now(), uc.source.Name(), settings, validation, valued, categories, alerts, suggestions)
	log.Info().
		Int("products", report.Overview.ProductCount).
		Str("total_value", report.Overview.TotalValue.StringFixed(2)).
		Int("critical", report.Overview.CriticalCount).
		Int("low", report.Overview.LowCount).
		Str("reorder_cost", report.ReorderSum.TotalCost.StringFixed(2)).
		Msg("análisis completado")

	// 5. Exportación
	for _, exp := range uc.exporters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := exp.Export(ctx, report); err != nil {
			return nil, fmt.Errorf("analysis: exportar %s: %w", exp.Name(), err)
		}
		log.Debug().Str("exporter", exp.Name()).Msg("artefacto generado")
	}

	return report, nil
}

func buildReport(
	runID string,
	now time.Time,
	source string,
	settings inventory.Settings,
	validation inventory.ValidationResult,
	valued []entity.ValuedRecord,
	categories []entity.CategorySummary,
	alerts []entity.StockAlert,
	suggestions []entity.ReorderSuggestion,
) *dto.AnalysisReport {
	total := inventory.TotalValue(valued)
	average := decimal.Zero
	if len(valued) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(valued)))).Round(2)
	}
	critical, low := inventory.CountByUrgency(alerts)
	summary := inventory.SummarizeReorders(suggestions)

	report := &dto.AnalysisReport{
		RunID:       runID,
		GeneratedAt: now,
		Source:      source,
		Settings: dto.SettingsDTO{
			LowStockThreshold: settings.LowStockThreshold,
			CriticalRatio:     settings.CriticalRatio,
			CriticalCutoff:    settings.CriticalCutoff(),
			ReorderTarget:     settings.EffectiveReorderTarget(),
		},
		Overview: dto.OverviewDTO{
			ProductCount:         len(valued),
			TotalValue:           total,
			AverageValue:         average,
			CriticalCount:        critical,
			LowCount:             low,
			WarningCount:         len(validation.Warnings),
			RejectedCount:        len(validation.Rejected),
			HighestValueCategory: inventory.HighestValueCategory(categories),
			LowestStockCategory:  inventory.LowestStockCategory(categories),
		},
		ReorderSum: dto.ReorderSumDTO{
			ItemCount:   summary.ItemCount,
			TotalUnits:  summary.TotalUnits,
			TotalCost:   summary.TotalCost,
			AverageCost: summary.AverageCost,
		},
		Alerts:     make([]dto.StockAlertDTO, 0, len(alerts)),
		Reorder:    make([]dto.ReorderLineDTO, 0, len(suggestions)),
		Categories: make([]dto.CategoryDTO, 0, len(categories)),
		Records:    make([]dto.RecordDTO, 0, len(valued)),
		Warnings:   make([]dto.WarningDTO, 0, len(validation.Warnings)),
		Rejected:   make([]dto.RejectedDTO, 0, len(validation.Rejected)),
	}

	for _, v := range valued {
		rec := dto.RecordDTO{
			ProductName:    v.ProductName,
			Category:       v.Category,
			CurrentStock:   v.CurrentStock,
			Price:          v.Price,
			InventoryValue: v.InventoryValue,
			Supplier:       v.Supplier,
		}
		if v.LastUpdated != nil {
			rec.LastUpdated = v.LastUpdated.Format("2006-01-02")
		}
		report.Records = append(report.Records, rec)
	}
	for _, a := range alerts {
		report.Alerts = append(report.Alerts, dto.StockAlertDTO{
			ProductName:    a.Record.ProductName,
			Category:       a.Record.Category,
			CurrentStock:   a.Record.CurrentStock,
			InventoryValue: a.Record.InventoryValue,
			Urgency:        string(a.Urgency),
			Threshold:      a.Threshold,
		})
	}
	for _, s := range suggestions {
		report.Reorder = append(report.Reorder, dto.ReorderLineDTO{
			ProductName:       s.Record.ProductName,
			Category:          s.Record.Category,
			CurrentStock:      s.Record.CurrentStock,
			SuggestedQuantity: s.SuggestedQuantity,
			UnitPrice:         s.Record.Price,
			EstimatedCost:     s.EstimatedCost,
			Supplier:          s.Record.Supplier,
			Urgency:           string(s.Urgency),
		})
	}
	for _, c := range categories {
		report.Categories = append(report.Categories, dto.CategoryDTO{
			Category:     c.Category,
			ItemCount:    c.ItemCount,
			TotalStock:   c.TotalStock,
			TotalValue:   c.TotalValue,
			AveragePrice: c.AveragePrice,
		})
	}
	for _, w := range validation.Warnings {
		report.Warnings = append(report.Warnings, dto.WarningDTO{
			Row:         w.Row,
			ProductName: w.ProductName,
			Field:       w.Field,
			Value:       w.Value,
			Message:     w.Message,
		})
	}
	for _, r := range validation.Rejected {
		report.Rejected = append(report.Rejected, dto.RejectedDTO{
			Row:     r.Row,
			Field:   r.Field,
			Message: r.Error(),
		})
	}
	return report
}
