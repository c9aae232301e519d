package inventory

import (
	"context"

	"github.com/jhoicas/inventory-report/internal/application/dto"
	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// RecordSource entrega las filas crudas del inventario (CSV, generador de ejemplo).
type RecordSource interface {
	Load(ctx context.Context) ([]entity.RawRow, error)
	Name() string
}

// ReportExporter escribe un artefacto a partir del reporte (CSV, gráficos, PDF, XML, consola).
type ReportExporter interface {
	Export(ctx context.Context, report *dto.AnalysisReport) error
	Name() string
}
