package sample_test

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-report/internal/domain/entity"
	"github.com/jhoicas/inventory-report/internal/domain/inventory"
	"github.com/jhoicas/inventory-report/internal/infrastructure/csvio"
	"github.com/jhoicas/inventory-report/internal/infrastructure/sample"
)

var fixedDay = func() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }

func TestRows_DeterministaPorSemilla(t *testing.T) {
	a := sample.NewGenerator(30, 42).WithClock(fixedDay).Rows()
	b := sample.NewGenerator(30, 42).WithClock(fixedDay).Rows()
	c := sample.NewGenerator(30, 7).WithClock(fixedDay).Rows()

	assert.Equal(t, a, b, "misma semilla, mismas filas")
	assert.NotEqual(t, a, c)
}

func TestRows_RangosYFormato(t *testing.T) {
	rows := sample.NewGenerator(75, 42).WithClock(fixedDay).Rows()
	require.Len(t, rows, 75)

	lo, hi := decimal.RequireFromString("5.99"), decimal.RequireFromString("299.99")
	for i, r := range rows {
		assert.Equal(t, i+1, r.Number)

		stock, err := strconv.Atoi(r.Get(entity.ColumnCurrentStock))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stock, 0)
		assert.Less(t, stock, 200)

		price := decimal.RequireFromString(r.Get(entity.ColumnPrice))
		assert.True(t, price.GreaterThanOrEqual(lo) && price.LessThanOrEqual(hi), "precio %s", price)
		assert.Equal(t, price.StringFixed(2), r.Get(entity.ColumnPrice), "dos decimales")

		assert.True(t, strings.HasPrefix(r.Get(entity.ColumnSupplier), "Supplier_"))
		assert.Equal(t, "2025-03-14", r.Get(entity.ColumnLastUpdated))
	}
}

func TestRows_NombresPorCategoria(t *testing.T) {
	rows := sample.NewGenerator(24, 1).WithClock(fixedDay).Rows()

	assert.Equal(t, "Wireless Headphones - Black", rows[0].Get(entity.ColumnProductName))
	assert.Equal(t, "Electronics", rows[0].Get(entity.ColumnCategory))
	assert.Equal(t, "Cotton T-Shirt - Size S", rows[4].Get(entity.ColumnProductName))
	assert.Equal(t, "Garden Tools - Small", rows[8].Get(entity.ColumnProductName))
	assert.Equal(t, "Basketball - Pro", rows[12].Get(entity.ColumnProductName))
	assert.Equal(t, "Fiction Novel - Hardcover", rows[16].Get(entity.ColumnProductName))
	assert.Equal(t, "Face Cream - 50ml", rows[20].Get(entity.ColumnProductName))
	assert.Equal(t, "Makeup Brush - Large", rows[22].Get(entity.ColumnProductName))
}

func TestRows_TamañoNegativoNoGeneraFilas(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Empty(t, sample.NewGenerator(-1, 42).Rows())
	})
}

func TestRows_PasanLaValidacionSinAdvertencias(t *testing.T) {
	res := inventory.ValidateRows(sample.NewGenerator(50, 42).Rows())

	assert.Len(t, res.Records, 50)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Rejected)
}

func TestWriteFile_SeLeeConElLectorCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_inventory.csv")
	gen := sample.NewGenerator(10, 42).WithClock(fixedDay)

	require.NoError(t, gen.WriteFile(path))

	rows, err := csvio.NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, gen.Rows()[3].Values, rows[3].Values)
}

func TestSource_Load(t *testing.T) {
	src := sample.NewSource(sample.NewGenerator(5, 42))

	rows, err := src.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, "sample", src.Name())
}
