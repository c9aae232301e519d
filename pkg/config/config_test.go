package config_test

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-report/internal/domain"
	"github.com/jhoicas/inventory-report/pkg/config"
)

// configKeys variables de entorno que leen los tests; se vacían para aislar cada caso.
var configKeys = []string{
	"APP_ENV", "APP_NAME", "LOG_LEVEL",
	"LOW_STOCK_THRESHOLD", "CRITICAL_RATIO", "REORDER_TARGET",
	"REPORT_INPUT", "REPORT_OUTPUT_DIR", "REPORT_FORMATS",
	"SAMPLE_PATH", "SAMPLE_SIZE", "SAMPLE_SEED",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventory-report", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, int64(20), cfg.Analysis.LowStockThreshold)
	assert.Equal(t, "0.25", cfg.Analysis.CriticalRatio.String())
	assert.Equal(t, int64(0), cfg.Analysis.ReorderTarget, "0 = objetivo derivado del umbral")
	assert.Equal(t, "", cfg.Report.Input)
	assert.Equal(t, "inventory_reports", cfg.Report.OutputDir)
	assert.Equal(t, []string{"csv", "charts", "pdf", "xml"}, cfg.Report.Formats)
	assert.Equal(t, "sample_inventory.csv", cfg.Sample.Path)
	assert.Equal(t, 50, cfg.Sample.Size)
	assert.Equal(t, int64(42), cfg.Sample.Seed)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOW_STOCK_THRESHOLD", "35")
	t.Setenv("CRITICAL_RATIO", "0.1")
	t.Setenv("REORDER_TARGET", "90")
	t.Setenv("REPORT_FORMATS", "CSV, pdf")
	t.Setenv("REPORT_INPUT", "datos/inventario.csv")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(35), cfg.Analysis.LowStockThreshold)
	assert.Equal(t, "0.1", cfg.Analysis.CriticalRatio.String())
	assert.Equal(t, int64(90), cfg.Analysis.ReorderTarget)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.Report.Formats)
	assert.True(t, cfg.Report.Wants(config.FormatPDF))
	assert.False(t, cfg.Report.Wants(config.FormatXML))
	assert.Equal(t, "datos/inventario.csv", cfg.Report.Input)
}

func TestLoad_RatioIlegibleEsErrorDeConfiguracion(t *testing.T) {
	clearEnv(t)
	t.Setenv("CRITICAL_RATIO", "un cuarto")

	_, err := config.Load()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestLoadWithFlags_FlagsTienenPrioridad(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOW_STOCK_THRESHOLD", "35")
	t.Setenv("REPORT_OUTPUT_DIR", "desde-env")

	fs := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	fs.Int("threshold", 20, "")
	fs.String("output", "inventory_reports", "")
	fs.String("critical-ratio", "0.25", "")
	require.NoError(t, fs.Parse([]string{"--threshold", "12", "--critical-ratio", "0.5"}))

	cfg, err := config.LoadWithFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, int64(12), cfg.Analysis.LowStockThreshold, "el flag pisa la variable de entorno")
	assert.Equal(t, "0.5", cfg.Analysis.CriticalRatio.String())
	assert.Equal(t, "desde-env", cfg.Report.OutputDir, "un flag sin cambiar no pisa el entorno")
}

func TestReportConfig_Validate(t *testing.T) {
	ok := config.ReportConfig{Formats: []string{"csv", "charts", "pdf", "xml"}}
	assert.NoError(t, ok.Validate())

	err := config.ReportConfig{Formats: []string{"csv", "docx"}}.Validate()
	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "docx", cfgErr.Value)
}

func TestLoad_EnteroIlegibleEsErrorDeConfiguracion(t *testing.T) {
	cases := map[string]string{
		"REORDER_TARGET":      "abc",
		"LOW_STOCK_THRESHOLD": "20.5",
		"SAMPLE_SIZE":         "muchos",
		"SAMPLE_SEED":         "1e3",
	}
	for key, raw := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, raw)

			_, err := config.Load()

			var cfgErr *domain.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "un entero ilegible no se reemplaza por el valor por defecto")
			assert.Equal(t, raw, cfgErr.Value, "el error conserva el texto original")
			assert.True(t, errors.Is(err, domain.ErrConfiguration))
		})
	}
}

func TestSampleConfig_Validate(t *testing.T) {
	assert.NoError(t, config.SampleConfig{Size: 0}.Validate())
	assert.NoError(t, config.SampleConfig{Size: 50}.Validate())

	err := config.SampleConfig{Size: -1}.Validate()
	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "-1", cfgErr.Value)
}
