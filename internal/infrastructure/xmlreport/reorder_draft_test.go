package xmlreport_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-report/internal/application/dto"
	"github.com/jhoicas/inventory-report/internal/infrastructure/xmlreport"
)

func line(name, supplier string, qty int64, cost string) dto.ReorderLineDTO {
	return dto.ReorderLineDTO{
		ProductName: name, Category: "Sports", SuggestedQuantity: qty,
		UnitPrice: decimal.RequireFromString("1"), EstimatedCost: decimal.RequireFromString(cost),
		Supplier: supplier, Urgency: "LOW",
	}
}

func report() *dto.AnalysisReport {
	return &dto.AnalysisReport{
		RunID:       "run-1",
		GeneratedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		Source:      "sample",
		Settings:    dto.SettingsDTO{LowStockThreshold: 20, CriticalCutoff: 5, ReorderTarget: 40},
		Reorder: []dto.ReorderLineDTO{
			line("Yoga Mat - Pro", "Supplier_2", 30, "30.00"),
			line("Basketball - Pro", "Supplier_1", 38, "305.14"),
			line("Water Bottle - Basic", "Supplier_2", 10, "10.50"),
			line("Notebook - Deluxe", "", 5, "5"),
		},
		ReorderSum: dto.ReorderSumDTO{ItemCount: 4, TotalUnits: 83, TotalCost: decimal.RequireFromString("350.64"), AverageCost: decimal.RequireFromString("87.66")},
	}
}

func TestBuild_AgrupaPorProveedor(t *testing.T) {
	root := xmlreport.Build(report()).Root()
	require.NotNil(t, root)
	assert.Equal(t, "ReorderDraft", root.Tag)
	assert.Equal(t, "run-1", root.SelectAttrValue("runId", ""))
	assert.Equal(t, "2025-03-14T10:00:00Z", root.SelectAttrValue("generatedAt", ""))

	suppliers := root.SelectElements("Supplier")
	require.Len(t, suppliers, 3)
	assert.Equal(t, "Supplier_1", suppliers[0].SelectAttrValue("name", ""))
	assert.Equal(t, "Supplier_2", suppliers[1].SelectAttrValue("name", ""))
	assert.Equal(t, xmlreport.UnassignedSupplier, suppliers[2].SelectAttrValue("name", ""))

	s2 := suppliers[1]
	assert.Equal(t, "2", s2.SelectAttrValue("items", ""))
	assert.Equal(t, "40", s2.SelectAttrValue("units", ""))
	assert.Equal(t, "40.50", s2.SelectAttrValue("cost", ""))

	lines := s2.SelectElements("Line")
	require.Len(t, lines, 2)
	assert.Equal(t, "Yoga Mat - Pro", lines[0].SelectElement("Product").Text(), "conserva el orden del reporte")
	assert.Equal(t, "10.50", lines[1].SelectElement("EstimatedCost").Text())

	totals := root.SelectElement("Totals")
	require.NotNil(t, totals)
	assert.Equal(t, "83", totals.SelectAttrValue("units", ""))
	assert.Equal(t, "350.64", totals.SelectAttrValue("cost", ""))
}

func TestBuild_SinReposicion(t *testing.T) {
	r := report()
	r.Reorder = nil
	r.ReorderSum = dto.ReorderSumDTO{TotalCost: decimal.Zero, AverageCost: decimal.Zero}

	root := xmlreport.Build(r).Root()

	assert.Empty(t, root.SelectElements("Supplier"))
	assert.Equal(t, "0.00", root.SelectElement("Totals").SelectAttrValue("cost", ""))
}

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "xml")
	exp := xmlreport.NewExporter(dir)

	require.NoError(t, exp.Export(context.Background(), report()))
	assert.Equal(t, "xml", exp.Name())

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(filepath.Join(dir, xmlreport.DraftFile)))
	assert.Len(t, doc.Root().SelectElements("Supplier"), 3)
}
