// Package chart dibuja los gráficos PNG del reporte de inventario.
//
// Gráficos:
//
//	category_analysis.png  stock total por categoría (barras) + participación en valor (torta)
//	low_stock_alert.png    10 productos con menor stock, con la línea del umbral
package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jhoicas/inventory-report/internal/application/dto"
)

// Archivos generados por Exporter.
const (
	CategoryChartFile = "category_analysis.png"
	LowStockChartFile = "low_stock_alert.png"
)

// ErrNoAlerts el gráfico de stock bajo no aplica si no hay alertas.
var ErrNoAlerts = errors.New("chart: sin alertas de stock bajo")

const (
	categoryWidth  = 1200
	categoryHeight = 600
	lowStockWidth  = 1000
	lowStockHeight = 600
	topLowStock    = 10
	labelChars     = 30
)

// Renderer genera los PNG en memoria.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// CategoryAnalysis barras de stock total por categoría a la izquierda y torta de valor a la derecha.
func (r *Renderer) CategoryAnalysis(report *dto.AnalysisReport) ([]byte, error) {
	img := newCanvas(categoryWidth, categoryHeight)
	drawCentered(img, categoryWidth/4, 30, "Total Stock by Category", colorText)
	drawCentered(img, 3*categoryWidth/4, 30, "Inventory Value Distribution", colorText)

	// ── Barras ────────────────────────────────────────────────────────────────
	left, top, right, bottom := 70, 60, categoryWidth/2-30, categoryHeight-80
	hLine(img, left, right, bottom, colorAxis)
	vLine(img, left, top, bottom, colorAxis)

	var maxStock int64
	for _, c := range report.Categories {
		if c.TotalStock > maxStock {
			maxStock = c.TotalStock
		}
	}
	drawText(img, 8, top+4, strconv.FormatInt(maxStock, 10), colorAxis)
	drawText(img, 8, bottom+4, "0", colorAxis)

	if n := len(report.Categories); n > 0 {
		slot := (right - left) / n
		barW := slot * 7 / 10
		for i, c := range report.Categories {
			x := left + i*slot + (slot-barW)/2
			h := 0
			if maxStock > 0 {
				h = int(float64(bottom-top) * float64(c.TotalStock) / float64(maxStock))
			}
			fillRect(img, image.Rect(x, bottom-h, x+barW, bottom), colorBar)
			label := truncate(c.Category, slot/7)
			drawCentered(img, x+barW/2, bottom+18, label, colorText)
		}
	} else {
		drawCentered(img, (left+right)/2, (top+bottom)/2, "sin datos", colorAxis)
	}

	// ── Torta ─────────────────────────────────────────────────────────────────
	cx, cy, radius := 3*categoryWidth/4, 250, 170
	total := 0.0
	for _, c := range report.Categories {
		total += c.TotalValue.InexactFloat64()
	}
	if total <= 0 {
		fillPie(img, cx, cy, radius, []float64{1}, []color.RGBA{colorEmpty})
		drawCentered(img, cx, cy, "sin valor", colorText)
		return encode(img)
	}

	fractions := make([]float64, len(report.Categories))
	for i, c := range report.Categories {
		fractions[i] = c.TotalValue.InexactFloat64() / total
	}
	fillPie(img, cx, cy, radius, fractions, palette)

	// Leyenda en dos columnas bajo la torta
	for i, c := range report.Categories {
		col, rowIdx := i%2, i/2
		x := cx - 220 + col*230
		y := cy + radius + 30 + rowIdx*18
		fillRect(img, image.Rect(x, y-10, x+10, y), palette[i%len(palette)])
		drawText(img, x+16, y, fmt.Sprintf("%s %.1f%%", truncate(c.Category, 22), fractions[i]*100), colorText)
	}
	return encode(img)
}

// LowStock barras horizontales de los productos en alerta con menor stock.
// Devuelve ErrNoAlerts si el reporte no tiene alertas.
func (r *Renderer) LowStock(report *dto.AnalysisReport) ([]byte, error) {
	if len(report.Alerts) == 0 {
		return nil, ErrNoAlerts
	}
	alerts := report.Alerts
	if len(alerts) > topLowStock {
		alerts = alerts[:topLowStock]
	}

	img := newCanvas(lowStockWidth, lowStockHeight)
	drawCentered(img, lowStockWidth/2, 30, fmt.Sprintf("Top %d Products Needing Restock", len(alerts)), colorText)

	left, top, right, bottom := 250, 60, lowStockWidth-40, lowStockHeight-60
	hLine(img, left, right, bottom, colorAxis)
	vLine(img, left, top, bottom, colorAxis)

	threshold := report.Settings.LowStockThreshold
	scaleMax := threshold
	for _, a := range alerts {
		if a.CurrentStock > scaleMax {
			scaleMax = a.CurrentStock
		}
	}
	scale := float64(right-left) / (float64(scaleMax) * 1.1)
	if scaleMax <= 0 {
		scale = 0
	}

	slot := (bottom - top) / len(alerts)
	barH := slot * 6 / 10
	for i, a := range alerts {
		y := top + i*slot + (slot-barH)/2
		w := int(float64(a.CurrentStock) * scale)
		c := colorLow
		if a.Urgency == "CRITICAL" {
			c = colorCritical
		}
		fillRect(img, image.Rect(left+1, y, left+1+w, y+barH), c)
		drawText(img, 10, y+barH/2+4, truncate(a.ProductName, labelChars+3), colorText)
		drawText(img, left+w+6, y+barH/2+4, strconv.FormatInt(a.CurrentStock, 10), colorText)
	}

	tx := left + int(float64(threshold)*scale)
	dashedVLine(img, tx, top, bottom, colorThreshold)
	drawCentered(img, tx, bottom+18, fmt.Sprintf("Reorder Threshold (%d)", threshold), colorThreshold)
	drawCentered(img, (left+right)/2, bottom+40, "Current Stock", colorText)

	return encode(img)
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("chart: codificar png: %w", err)
	}
	return buf.Bytes(), nil
}

// Exporter implementa inventory.ReportExporter guardando los PNG en un directorio.
type Exporter struct {
	dir      string
	renderer *Renderer
}

// NewExporter crea el exportador de gráficos.
func NewExporter(dir string, renderer *Renderer) *Exporter {
	return &Exporter{dir: dir, renderer: renderer}
}

// Name identifica el exportador en logs y errores.
func (e *Exporter) Name() string { return "charts" }

// Export escribe category_analysis.png y, si hay alertas, low_stock_alert.png.
func (e *Exporter) Export(_ context.Context, report *dto.AnalysisReport) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("chart: crear directorio: %w", err)
	}

	categoryPNG, err := e.renderer.CategoryAnalysis(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(e.dir, CategoryChartFile), categoryPNG, 0o644); err != nil {
		return fmt.Errorf("chart: guardar %s: %w", CategoryChartFile, err)
	}

	lowPNG, err := e.renderer.LowStock(report)
	if errors.Is(err, ErrNoAlerts) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(e.dir, LowStockChartFile), lowPNG, 0o644); err != nil {
		return fmt.Errorf("chart: guardar %s: %w", LowStockChartFile, err)
	}
	return nil
}
