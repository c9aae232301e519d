// Package xmlreport escribe el borrador de orden de compra en XML, agrupado por proveedor.
//
//	<ReorderDraft runId=".." generatedAt=".." source="..">
//	  <Settings lowStockThreshold=".." criticalCutoff=".." reorderTarget=".."/>
//	  <Supplier name="Supplier_1" items=".." units=".." cost="..">
//	    <Line urgency="CRITICAL">
//	      <Product>..</Product> <Category>..</Category> <CurrentStock>..</CurrentStock>
//	      <Quantity>..</Quantity> <UnitPrice>..</UnitPrice> <EstimatedCost>..</EstimatedCost>
//	    </Line>
//	  </Supplier>
//	  <Totals items=".." units=".." cost=".." averageCost=".."/>
//	</ReorderDraft>
package xmlreport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/application/dto"
)

// DraftFile nombre del XML dentro del directorio de salida.
const DraftFile = "reorder_draft.xml"

// UnassignedSupplier agrupa las líneas sin proveedor.
const UnassignedSupplier = "UNASSIGNED"

// supplierGroup líneas de un proveedor, en el orden del reporte.
type supplierGroup struct {
	name  string
	lines []dto.ReorderLineDTO
	units int64
	cost  decimal.Decimal
}

func groupBySupplier(lines []dto.ReorderLineDTO) []*supplierGroup {
	index := map[string]*supplierGroup{}
	var groups []*supplierGroup
	for _, l := range lines {
		name := l.Supplier
		if name == "" {
			name = UnassignedSupplier
		}
		g, ok := index[name]
		if !ok {
			g = &supplierGroup{name: name, cost: decimal.Zero}
			index[name] = g
			groups = append(groups, g)
		}
		g.lines = append(g.lines, l)
		g.units += l.SuggestedQuantity
		g.cost = g.cost.Add(l.EstimatedCost)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].name < groups[j].name })
	return groups
}

// Build genera el documento XML del borrador.
func Build(report *dto.AnalysisReport) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ReorderDraft")
	root.CreateAttr("runId", report.RunID)
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("source", report.Source)

	settings := root.CreateElement("Settings")
	settings.CreateAttr("lowStockThreshold", strconv.FormatInt(report.Settings.LowStockThreshold, 10))
	settings.CreateAttr("criticalCutoff", strconv.FormatInt(report.Settings.CriticalCutoff, 10))
	settings.CreateAttr("reorderTarget", strconv.FormatInt(report.Settings.ReorderTarget, 10))

	for _, g := range groupBySupplier(report.Reorder) {
		sup := root.CreateElement("Supplier")
		sup.CreateAttr("name", g.name)
		sup.CreateAttr("items", strconv.Itoa(len(g.lines)))
		sup.CreateAttr("units", strconv.FormatInt(g.units, 10))
		sup.CreateAttr("cost", g.cost.StringFixed(2))

		for _, l := range g.lines {
			line := sup.CreateElement("Line")
			line.CreateAttr("urgency", l.Urgency)
			line.CreateElement("Product").SetText(l.ProductName)
			line.CreateElement("Category").SetText(l.Category)
			line.CreateElement("CurrentStock").SetText(strconv.FormatInt(l.CurrentStock, 10))
			line.CreateElement("Quantity").SetText(strconv.FormatInt(l.SuggestedQuantity, 10))
			line.CreateElement("UnitPrice").SetText(l.UnitPrice.StringFixed(2))
			line.CreateElement("EstimatedCost").SetText(l.EstimatedCost.StringFixed(2))
		}
	}

	totals := root.CreateElement("Totals")
	totals.CreateAttr("items", strconv.Itoa(report.ReorderSum.ItemCount))
	totals.CreateAttr("units", strconv.FormatInt(report.ReorderSum.TotalUnits, 10))
	totals.CreateAttr("cost", report.ReorderSum.TotalCost.StringFixed(2))
	totals.CreateAttr("averageCost", report.ReorderSum.AverageCost.StringFixed(2))

	doc.Indent(2)
	return doc
}

// Exporter implementa inventory.ReportExporter escribiendo reorder_draft.xml.
type Exporter struct {
	dir string
}

// NewExporter crea el exportador XML.
func NewExporter(dir string) *Exporter { return &Exporter{dir: dir} }

func (e *Exporter) Name() string { return "xml" }

func (e *Exporter) Export(_ context.Context, report *dto.AnalysisReport) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("xmlreport: crear directorio: %w", err)
	}
	path := filepath.Join(e.dir, DraftFile)
	if err := Build(report).WriteToFile(path); err != nil {
		return fmt.Errorf("xmlreport: guardar %s: %w", DraftFile, err)
	}
	return nil
}
