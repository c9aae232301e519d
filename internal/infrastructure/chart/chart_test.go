package chart_test

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-report/internal/application/dto"
	"github.com/jhoicas/inventory-report/internal/infrastructure/chart"
)

func reportWithAlerts() *dto.AnalysisReport {
	return &dto.AnalysisReport{
		Settings: dto.SettingsDTO{LowStockThreshold: 20, CriticalCutoff: 5},
		Alerts: []dto.StockAlertDTO{
			{ProductName: "Basketball - Pro", Category: "Sports", CurrentStock: 2, Urgency: "CRITICAL", Threshold: 20},
			{ProductName: "Una descripción de producto demasiado larga para la etiqueta", Category: "Books", CurrentStock: 12, Urgency: "LOW", Threshold: 20},
		},
		Categories: []dto.CategoryDTO{
			{Category: "Tools", ItemCount: 1, TotalStock: 50, TotalValue: decimal.RequireFromString("250")},
			{Category: "Sports", ItemCount: 1, TotalStock: 2, TotalValue: decimal.RequireFromString("16.06")},
		},
	}
}

func decodeSize(t *testing.T, b []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestCategoryAnalysis_Dimensiones(t *testing.T) {
	b, err := chart.NewRenderer().CategoryAnalysis(reportWithAlerts())
	require.NoError(t, err)

	w, h := decodeSize(t, b)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 600, h)
}

func TestCategoryAnalysis_SinValorNiCategorias(t *testing.T) {
	b, err := chart.NewRenderer().CategoryAnalysis(&dto.AnalysisReport{})
	require.NoError(t, err)

	w, _ := decodeSize(t, b)
	assert.Equal(t, 1200, w)
}

func TestLowStock_Dimensiones(t *testing.T) {
	b, err := chart.NewRenderer().LowStock(reportWithAlerts())
	require.NoError(t, err)

	w, h := decodeSize(t, b)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 600, h)
}

func TestLowStock_SinAlertas(t *testing.T) {
	_, err := chart.NewRenderer().LowStock(&dto.AnalysisReport{})

	assert.ErrorIs(t, err, chart.ErrNoAlerts)
}

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graficos")
	exp := chart.NewExporter(dir, chart.NewRenderer())

	require.NoError(t, exp.Export(context.Background(), reportWithAlerts()))
	assert.Equal(t, "charts", exp.Name())
	assert.FileExists(t, filepath.Join(dir, chart.CategoryChartFile))
	assert.FileExists(t, filepath.Join(dir, chart.LowStockChartFile))
}

func TestExporter_SinAlertasOmiteGraficoDeStockBajo(t *testing.T) {
	dir := t.TempDir()
	report := reportWithAlerts()
	report.Alerts = nil

	require.NoError(t, chart.NewExporter(dir, chart.NewRenderer()).Export(context.Background(), report))

	assert.FileExists(t, filepath.Join(dir, chart.CategoryChartFile))
	_, err := os.Stat(filepath.Join(dir, chart.LowStockChartFile))
	assert.True(t, os.IsNotExist(err))
}
