// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fuente  │  Ejecución + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / valor total / alertas / parámetros    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: Urgencia | Producto | Categoría | Stock | Valor   │
//	│  REPOSICIÓN: Producto | Stock | Sugerido | P.Unit | Costo   │
//	│  TOTALES de reposición                                      │
//	│  CATEGORÍAS: Categoría | Items | Stock | Valor | P.Prom     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRÁFICOS: análisis por categoría + stock bajo              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventory-report/internal/application/dto"
)

// ReportFile nombre del PDF dentro del directorio de salida.
const ReportFile = "inventory_report.pdf"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 214, Green: 39, Blue: 40}
)

// ChartSource provee los PNG que se incrustan al final del reporte.
type ChartSource interface {
	CategoryAnalysis(report *dto.AnalysisReport) ([]byte, error)
	LowStock(report *dto.AnalysisReport) ([]byte, error)
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator arma el reporte PDF. charts puede ser nil.
type MarotoReportGenerator struct {
	charts ChartSource
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(charts ChartSource) *MarotoReportGenerator {
	return &MarotoReportGenerator{charts: charts}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(report *dto.AnalysisReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor("inventory-report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(overviewRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Alertas
	m.AddRows(sectionTitle(fmt.Sprintf("ALERTAS DE STOCK BAJO (%d)", len(report.Alerts))))
	if len(report.Alerts) == 0 {
		m.AddRows(emptyRow("Ningún producto por debajo del umbral."))
	} else {
		m.AddRows(tableHeaderRow([]headerCell{
			{"Urgencia", 2, align.Center}, {"Producto", 4, align.Left}, {"Categoría", 2, align.Left},
			{"Stock", 2, align.Right}, {"Valor", 2, align.Right},
		}))
		m.AddRows(alertRows(report.Alerts)...)
	}

	// Reposición
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("REPOSICIÓN SUGERIDA"))
	if len(report.Reorder) > 0 {
		m.AddRows(tableHeaderRow([]headerCell{
			{"Producto", 4, align.Left}, {"Stock", 1, align.Right}, {"Sugerido", 2, align.Right},
			{"P.Unit", 2, align.Right}, {"Costo", 3, align.Right},
		}))
		m.AddRows(reorderRows(report.Reorder)...)
	}
	m.AddRows(reorderTotalsRow(report.ReorderSum))

	// Categorías
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("RESUMEN POR CATEGORÍA"))
	m.AddRows(tableHeaderRow([]headerCell{
		{"Categoría", 4, align.Left}, {"Items", 1, align.Right}, {"Stock", 2, align.Right},
		{"Valor total", 3, align.Right}, {"P.Prom", 2, align.Right},
	}))
	m.AddRows(categoryRows(report.Categories)...)

	chartRows, err := g.chartRows(report)
	if err != nil {
		return nil, err
	}
	m.AddRows(chartRows...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fuente (izq) y ejecución + fecha (der).
func headerRow(report *dto.AnalysisReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fuente: "+nonEmpty(report.Source, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("EJECUCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(report.RunID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// overviewRows: cifras generales y parámetros del análisis.
func overviewRows(report *dto.AnalysisReport) []core.Row {
	o, s := report.Overview, report.Settings
	kv := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)
	}
	return []core.Row{
		row.New(12).Add(
			kv("Productos", strconv.Itoa(o.ProductCount)),
			kv("Valor total", "$"+dto.FormatMoney(o.TotalValue)),
			kv("Valor promedio", "$"+dto.FormatMoney(o.AverageValue)),
			kv("Alertas (críticas / bajas)", fmt.Sprintf("%d / %d", o.CriticalCount, o.LowCount)),
		),
		row.New(12).Add(
			kv("Categoría de mayor valor", nonEmpty(o.HighestValueCategory, "—")),
			kv("Categoría de menor stock", nonEmpty(o.LowestStockCategory, "—")),
			kv("Advertencias / rechazos", fmt.Sprintf("%d / %d", o.WarningCount, o.RejectedCount)),
			kv("Umbral / crítico / objetivo", fmt.Sprintf("%d / %d / %d", s.LowStockThreshold, s.CriticalCutoff, s.ReorderTarget)),
		),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow: cabecera de tabla con fondo azul.
func tableHeaderRow(cells []headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func cell(size int, value string, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func alertRows(alerts []dto.StockAlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		urgency := props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1}
		if a.Urgency == "CRITICAL" {
			urgency.Color = colorCritical
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(a.Urgency, urgency)),
			cell(4, a.ProductName, align.Left),
			cell(2, a.Category, align.Left),
			cell(2, strconv.FormatInt(a.CurrentStock, 10), align.Right),
			cell(2, "$"+dto.FormatMoney(a.InventoryValue), align.Right),
		))
	}
	return result
}

func reorderRows(lines []dto.ReorderLineDTO) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			cell(4, l.ProductName, align.Left),
			cell(1, strconv.FormatInt(l.CurrentStock, 10), align.Right),
			cell(2, strconv.FormatInt(l.SuggestedQuantity, 10), align.Right),
			cell(2, "$"+dto.FormatMoney(l.UnitPrice), align.Right),
			cell(3, "$"+dto.FormatMoney(l.EstimatedCost), align.Right),
		))
	}
	return result
}

// reorderTotalsRow: bloque de totales alineado a la derecha.
func reorderTotalsRow(sum dto.ReorderSumDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 10,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 10,
		})
	}

	return row.New(18).Add(
		col.New(3),
		col.New(3).Add(
			label("Productos / unidades:"),
			grandLabel("COSTO TOTAL:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d / %d", sum.ItemCount, sum.TotalUnits)),
			grandValue("$"+dto.FormatMoney(sum.TotalCost)),
		),
		col.New(3).Add(
			text.New("Promedio: $"+dto.FormatMoney(sum.AverageCost), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 11,
			}),
		),
	)
}

func categoryRows(categories []dto.CategoryDTO) []core.Row {
	result := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		result = append(result, row.New(6).Add(
			cell(4, c.Category, align.Left),
			cell(1, strconv.Itoa(c.ItemCount), align.Right),
			cell(2, strconv.FormatInt(c.TotalStock, 10), align.Right),
			cell(3, "$"+dto.FormatMoney(c.TotalValue), align.Right),
			cell(2, "$"+dto.FormatMoney(c.AveragePrice), align.Right),
		))
	}
	return result
}

// chartRows: gráficos incrustados; el de stock bajo se omite si no hay alertas.
func (g *MarotoReportGenerator) chartRows(report *dto.AnalysisReport) ([]core.Row, error) {
	if g.charts == nil {
		return nil, nil
	}
	rows := []core.Row{
		line.NewRow(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		sectionTitle("GRÁFICOS"),
	}

	categoryPNG, err := g.charts.CategoryAnalysis(report)
	if err != nil {
		return nil, fmt.Errorf("pdf: gráfico de categorías: %w", err)
	}
	rows = append(rows, row.New(95).Add(col.New(12).Add(
		image.NewFromBytes(categoryPNG, extension.Png, props.Rect{Center: true, Percent: 95}),
	)))

	if len(report.Alerts) == 0 {
		return rows, nil
	}
	lowPNG, err := g.charts.LowStock(report)
	if err != nil {
		return nil, fmt.Errorf("pdf: gráfico de stock bajo: %w", err)
	}
	rows = append(rows, row.New(110).Add(col.New(12).Add(
		image.NewFromBytes(lowPNG, extension.Png, props.Rect{Center: true, Percent: 95}),
	)))
	return rows, nil
}

// ── Exporter ──────────────────────────────────────────────────────────────────

// Exporter implementa inventory.ReportExporter escribiendo inventory_report.pdf.
type Exporter struct {
	dir       string
	generator *MarotoReportGenerator
}

// NewExporter crea el exportador PDF.
func NewExporter(dir string, generator *MarotoReportGenerator) *Exporter {
	return &Exporter{dir: dir, generator: generator}
}

func (e *Exporter) Name() string { return "pdf" }

func (e *Exporter) Export(_ context.Context, report *dto.AnalysisReport) error {
	if report == nil {
		return errors.New("pdf: reporte nil")
	}
	b, err := e.generator.Generate(report)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("pdf: crear directorio: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.dir, ReportFile), b, 0o644); err != nil {
		return fmt.Errorf("pdf: guardar %s: %w", ReportFile, err)
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return nonEmpty(id, "—")
}
