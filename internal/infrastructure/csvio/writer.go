package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jhoicas/inventory-report/internal/application/dto"
	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// Archivos generados por ReportWriter dentro del directorio de salida.
const (
	ReorderFile  = "reorder_report.csv"
	CategoryFile = "category_summary.csv"
	AlertsFile   = "low_stock_alerts.csv"
	CleanedFile  = "cleaned_inventory.csv"
)

// SampleHeader encabezado canónico del dataset de entrada.
var SampleHeader = []string{"Product Name", "Category", "Current Stock", "Price", "Supplier", "Last Updated"}

// ReportWriter implementa inventory.ReportExporter escribiendo los reportes tabulares.
type ReportWriter struct {
	dir string
}

// NewReportWriter crea el exportador sobre dir (se crea si no existe).
func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir}
}

// Name identifica el exportador en logs y errores.
func (w *ReportWriter) Name() string { return "csv" }

// Export escribe reorder_report.csv, category_summary.csv, low_stock_alerts.csv y cleaned_inventory.csv.
func (w *ReportWriter) Export(_ context.Context, report *dto.AnalysisReport) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("csvio: crear directorio: %w", err)
	}
	files := []struct {
		name  string
		write func(io.Writer, *dto.AnalysisReport) error
	}{
		{ReorderFile, WriteReorderReport},
		{CategoryFile, WriteCategorySummary},
		{AlertsFile, WriteAlerts},
		{CleanedFile, WriteCleanedInventory},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(w.dir, f.name), report, f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, report *dto.AnalysisReport, write func(io.Writer, *dto.AnalysisReport) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: crear %s: %w", filepath.Base(path), err)
	}
	if err := write(out, report); err != nil {
		out.Close()
		return fmt.Errorf("csvio: escribir %s: %w", filepath.Base(path), err)
	}
	return out.Close()
}

// WriteReorderReport una fila por sugerencia y una fila TOTAL al final.
func WriteReorderReport(out io.Writer, report *dto.AnalysisReport) error {
	cw := csv.NewWriter(out)
	rows := [][]string{{"Product", "Category", "Current_Stock", "Suggested_Reorder", "Unit_Price", "Estimated_Cost", "Supplier", "Urgency"}}
	for _, l := range report.Reorder {
		rows = append(rows, []string{
			safeCell(l.ProductName),
			safeCell(l.Category),
			strconv.FormatInt(l.CurrentStock, 10),
			strconv.FormatInt(l.SuggestedQuantity, 10),
			l.UnitPrice.StringFixed(2),
			l.EstimatedCost.StringFixed(2),
			safeCell(l.Supplier),
			l.Urgency,
		})
	}
	rows = append(rows, []string{
		"TOTAL", "", "",
		strconv.FormatInt(report.ReorderSum.TotalUnits, 10),
		"",
		report.ReorderSum.TotalCost.StringFixed(2),
		"", "",
	})
	return flush(cw, rows)
}

// WriteCategorySummary tabla por categoría en el orden del reporte.
func WriteCategorySummary(out io.Writer, report *dto.AnalysisReport) error {
	cw := csv.NewWriter(out)
	rows := [][]string{{"Category", "Product_Count", "Total_Stock", "Total_Value", "Avg_Price"}}
	for _, c := range report.Categories {
		rows = append(rows, []string{
			safeCell(c.Category),
			strconv.Itoa(c.ItemCount),
			strconv.FormatInt(c.TotalStock, 10),
			c.TotalValue.StringFixed(2),
			c.AveragePrice.StringFixed(2),
		})
	}
	return flush(cw, rows)
}

// WriteAlerts lista de alertas de stock bajo.
func WriteAlerts(out io.Writer, report *dto.AnalysisReport) error {
	cw := csv.NewWriter(out)
	rows := [][]string{{"Urgency", "Product", "Category", "Current_Stock", "Threshold", "Inventory_Value"}}
	for _, a := range report.Alerts {
		rows = append(rows, []string{
			a.Urgency,
			safeCell(a.ProductName),
			safeCell(a.Category),
			strconv.FormatInt(a.CurrentStock, 10),
			strconv.FormatInt(a.Threshold, 10),
			a.InventoryValue.StringFixed(2),
		})
	}
	return flush(cw, rows)
}

// WriteCleanedInventory dataset validado con el valor de inventario por fila.
func WriteCleanedInventory(out io.Writer, report *dto.AnalysisReport) error {
	cw := csv.NewWriter(out)
	rows := [][]string{append(append([]string{}, SampleHeader...), "Inventory Value")}
	for _, r := range report.Records {
		rows = append(rows, []string{
			safeCell(r.ProductName),
			safeCell(r.Category),
			strconv.FormatInt(r.CurrentStock, 10),
			r.Price.StringFixed(2),
			safeCell(r.Supplier),
			r.LastUpdated,
			r.InventoryValue.StringFixed(2),
		})
	}
	return flush(cw, rows)
}

// WriteRawRows escribe filas crudas con el encabezado canónico (usado por el generador de ejemplo).
func WriteRawRows(out io.Writer, rows []entity.RawRow) error {
	cw := csv.NewWriter(out)
	columns := []string{
		entity.ColumnProductName, entity.ColumnCategory, entity.ColumnCurrentStock,
		entity.ColumnPrice, entity.ColumnSupplier, entity.ColumnLastUpdated,
	}
	records := [][]string{SampleHeader}
	for _, r := range rows {
		rec := make([]string, len(columns))
		for i, c := range columns {
			rec[i] = r.Get(c)
		}
		records = append(records, rec)
	}
	return flush(cw, records)
}

// safeCell antepone ' a los textos que una hoja de cálculo interpretaría como fórmula.
func safeCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func flush(cw *csv.Writer, rows [][]string) error {
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
