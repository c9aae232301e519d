package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-report/internal/domain"
	"github.com/jhoicas/inventory-report/internal/infrastructure/csvio"
	"github.com/jhoicas/inventory-report/internal/infrastructure/xmlreport"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "LOG_LEVEL", "LOW_STOCK_THRESHOLD", "CRITICAL_RATIO", "REORDER_TARGET",
		"REPORT_INPUT", "REPORT_OUTPUT_DIR", "REPORT_FORMATS", "SAMPLE_PATH", "SAMPLE_SIZE", "SAMPLE_SEED",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyze_SinInputGeneraDatosDeEjemplo(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("SAMPLE_PATH", filepath.Join(dir, "sample_inventory.csv"))
	outDir := filepath.Join(dir, "reportes")

	out, err := execute(t, "analyze", "--output", outDir, "--formats", "csv,xml")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "sample_inventory.csv"))
	assert.FileExists(t, filepath.Join(outDir, csvio.ReorderFile))
	assert.FileExists(t, filepath.Join(outDir, xmlreport.DraftFile))
	_, statErr := os.Stat(filepath.Join(outDir, "inventory_report.pdf"))
	assert.True(t, os.IsNotExist(statErr), "pdf no solicitado")
	assert.Contains(t, out, "ANÁLISIS DE INVENTARIO")
}

func TestAnalyze_ConInput(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "inventario.csv")
	csv := "Product Name,Category,Current Stock,Price\n" +
		"Basketball - Pro,Sports,2,8.03\n" +
		"Widget,Tools,50,5.00\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o644))

	out, err := execute(t, "analyze", "--input", input, "--output", filepath.Join(dir, "out"), "--formats", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "[CRITICAL] Basketball - Pro")
	assert.Contains(t, out, "$305.14")
}

func TestAnalyze_UmbralInvalido(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("SAMPLE_PATH", filepath.Join(dir, "sample_inventory.csv"))

	_, err := execute(t, "analyze", "--threshold", "0", "--output", filepath.Join(dir, "out"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
	_, statErr := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(statErr), "sin salida parcial")
}

func TestAnalyze_FormatoDesconocido(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "analyze", "--formats", "docx")

	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestSample_EscribeArchivo(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "demo.csv")

	_, err := execute(t, "sample", "--output", path, "--size", "7", "--seed", "3")
	require.NoError(t, err)

	rows, err := csvio.NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 7)
}

func TestSample_TamañoNegativoEsErrorDeConfiguracion(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "demo.csv")

	_, err := execute(t, "sample", "--output", path, "--size=-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
	assert.NoFileExists(t, path)
}

func TestAnalyze_SinInputConTamañoNegativo(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	t.Setenv("SAMPLE_PATH", filepath.Join(dir, "sample_inventory.csv"))
	t.Setenv("SAMPLE_SIZE", "-1")

	_, err := execute(t, "analyze", "--output", filepath.Join(dir, "out"))

	assert.True(t, errors.Is(err, domain.ErrConfiguration))
	assert.NoFileExists(t, filepath.Join(dir, "sample_inventory.csv"))
}
