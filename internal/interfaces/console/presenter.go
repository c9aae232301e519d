// Package console imprime el resumen legible del análisis en la terminal.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/jhoicas/inventory-report/internal/application/dto"
)

const rule = "============================================================"

// Presenter implementa inventory.ReportExporter sobre un io.Writer.
type Presenter struct {
	out   io.Writer
	files []string
}

// NewPresenter crea el presentador. files son las rutas esperadas; al final se listan las que existen.
func NewPresenter(out io.Writer, files ...string) *Presenter {
	return &Presenter{out: out, files: files}
}

func (p *Presenter) Name() string { return "console" }

// Export escribe resumen, alertas, categorías y reposición.
func (p *Presenter) Export(_ context.Context, report *dto.AnalysisReport) error {
	w := &errWriter{w: p.out}

	o := report.Overview
	w.printf("ANÁLISIS DE INVENTARIO  (ejecución %s)\n", report.RunID)
	w.printf("%s\n", rule)
	w.printf("Fuente:               %s\n", report.Source)
	w.printf("Productos:            %s\n", humanize.Comma(int64(o.ProductCount)))
	w.printf("Valor total:          $%s\n", dto.FormatMoney(o.TotalValue))
	w.printf("Valor promedio:       $%s\n", dto.FormatMoney(o.AverageValue))
	w.printf("Stock crítico (≤%d):   %d\n", report.Settings.CriticalCutoff, o.CriticalCount)
	if o.WarningCount > 0 || o.RejectedCount > 0 {
		w.printf("Advertencias:         %d  |  Filas rechazadas: %d\n", o.WarningCount, o.RejectedCount)
	}
	if o.HighestValueCategory != "" {
		w.printf("Mayor valor:          %s\n", o.HighestValueCategory)
		w.printf("Menor stock:          %s\n", o.LowestStockCategory)
	}

	w.printf("\nALERTAS DE STOCK BAJO: %d productos (umbral %d)\n", len(report.Alerts), report.Settings.LowStockThreshold)
	w.printf("%s\n", rule)
	if len(report.Alerts) == 0 {
		w.printf("Todos los productos tienen stock suficiente.\n")
	}
	for _, a := range report.Alerts {
		w.printf("[%-8s] %s\n", a.Urgency, a.ProductName)
		w.printf("   Stock: %d | Valor: $%s | Categoría: %s\n", a.CurrentStock, dto.FormatMoney(a.InventoryValue), a.Category)
	}

	w.printf("\nINVENTARIO POR CATEGORÍA\n")
	w.printf("%s\n", rule)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Categoría\tItems\tStock\tValor total\tP.Prom\t\n")
	for _, c := range report.Categories {
		fmt.Fprintf(tw, "%s\t%d\t%s\t$%s\t$%s\t\n",
			c.Category, c.ItemCount, humanize.Comma(c.TotalStock), dto.FormatMoney(c.TotalValue), dto.FormatMoney(c.AveragePrice))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	if s := report.ReorderSum; s.ItemCount > 0 {
		w.printf("\nANÁLISIS DE REPOSICIÓN\n")
		w.printf("%s\n", rule)
		w.printf("Productos a reponer:  %d (%s unidades)\n", s.ItemCount, humanize.Comma(s.TotalUnits))
		w.printf("Inversión total:      $%s\n", dto.FormatMoney(s.TotalCost))
		w.printf("Costo promedio:       $%s\n", dto.FormatMoney(s.AverageCost))
	}

	if files := existing(p.files); len(files) > 0 {
		w.printf("\nArchivos generados:\n")
		for _, f := range files {
			w.printf("  %s\n", f)
		}
	}
	if w.err != nil {
		return fmt.Errorf("console: %w", w.err)
	}
	return nil
}

func existing(paths []string) []string {
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// errWriter conserva el primer error de escritura.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}

