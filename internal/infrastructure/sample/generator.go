// Package sample genera un inventario de demostración reproducible.
package sample

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-report/internal/domain/entity"
	"github.com/jhoicas/inventory-report/internal/infrastructure/csvio"
)

// catalogItem par producto/categoría del catálogo base.
type catalogItem struct {
	name     string
	category string
}

var catalog = []catalogItem{
	{"Wireless Headphones", "Electronics"}, {"Smartphone Case", "Electronics"},
	{"Laptop Stand", "Electronics"}, {"USB Cable", "Electronics"},
	{"Cotton T-Shirt", "Clothing"}, {"Jeans", "Clothing"},
	{"Winter Jacket", "Clothing"}, {"Running Shoes", "Clothing"},
	{"Garden Tools", "Home & Garden"}, {"Plant Pot", "Home & Garden"},
	{"LED Light", "Home & Garden"}, {"Storage Box", "Home & Garden"},
	{"Basketball", "Sports"}, {"Yoga Mat", "Sports"},
	{"Protein Powder", "Sports"}, {"Water Bottle", "Sports"},
	{"Fiction Novel", "Books"}, {"Cookbook", "Books"},
	{"Art Supplies", "Books"}, {"Notebook", "Books"},
	{"Face Cream", "Beauty"}, {"Shampoo", "Beauty"},
	{"Makeup Brush", "Beauty"}, {"Perfume", "Beauty"},
}

// Variantes por categoría; se elige con i % 4.
var variants = map[string][4]string{
	"Electronics":   {"Black", "White", "Silver", "Blue"},
	"Clothing":      {"Size S", "Size M", "Size L", "Size XL"},
	"Sports":        {"Pro", "Standard", "Premium", "Basic"},
	"Books":         {"Hardcover", "Paperback", "Large Print", "Deluxe"},
	"Home & Garden": {"Small", "Medium", "Large", "Extra Large"},
}

var (
	brushVariants  = [4]string{"Small", "Medium", "Large", "Travel"}
	liquidVariants = [4]string{"50ml", "100ml", "150ml", "200ml"}
)

// Rangos de generación: stock en [0, 200), precio en [5.99, 299.99].
const (
	maxStock    = 200
	minPrice    = 5.99
	maxPrice    = 299.99
	maxSupplier = 9
)

// Generator produce filas crudas deterministas para una semilla dada.
type Generator struct {
	size int
	seed int64
	now  func() time.Time
}

// NewGenerator crea un generador de size productos.
func NewGenerator(size int, seed int64) *Generator {
	return &Generator{size: size, seed: seed, now: time.Now}
}

// WithClock fija la fecha usada en Last Updated.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Rows genera el dataset. Misma semilla y fecha → mismas filas. Un tamaño negativo da cero filas.
func (g *Generator) Rows() []entity.RawRow {
	rng := rand.New(rand.NewSource(g.seed))
	today := g.now().Format("2006-01-02")

	n := max(g.size, 0)
	rows := make([]entity.RawRow, 0, n)
	for i := 0; i < n; i++ {
		item := catalog[i%len(catalog)]
		stock := rng.Intn(maxStock)
		price := decimal.NewFromFloat(minPrice + rng.Float64()*(maxPrice-minPrice)).Round(2)
		supplier := rng.Intn(maxSupplier) + 1

		rows = append(rows, entity.RawRow{
			Number: i + 1,
			Values: map[string]string{
				entity.ColumnProductName:  productName(item, i),
				entity.ColumnCategory:     item.category,
				entity.ColumnCurrentStock: strconv.Itoa(stock),
				entity.ColumnPrice:        price.StringFixed(2),
				entity.ColumnSupplier:     fmt.Sprintf("Supplier_%d", supplier),
				entity.ColumnLastUpdated:  today,
			},
		})
	}
	return rows
}

func productName(item catalogItem, i int) string {
	var v [4]string
	switch {
	case item.category == "Beauty" && strings.Contains(item.name, "Brush"):
		v = brushVariants
	case item.category == "Beauty":
		v = liquidVariants
	default:
		v = variants[item.category]
	}
	return item.name + " - " + v[i%4]
}

// WriteFile escribe el dataset como CSV en path.
func (g *Generator) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sample: crear %s: %w", path, err)
	}
	if err := csvio.WriteRawRows(f, g.Rows()); err != nil {
		f.Close()
		return fmt.Errorf("sample: escribir: %w", err)
	}
	return f.Close()
}

// Source implementa inventory.RecordSource sin pasar por disco.
type Source struct {
	gen *Generator
}

// NewSource envuelve un generador como fuente de filas.
func NewSource(gen *Generator) *Source {
	return &Source{gen: gen}
}

// Name identifica la fuente en el reporte.
func (s *Source) Name() string { return "sample" }

// Load devuelve las filas generadas.
func (s *Source) Load(ctx context.Context) ([]entity.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.gen.Rows(), nil
}
