package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jhoicas/inventory-report/internal/domain"
)

// Formatos de exportación soportados por REPORT_FORMATS.
const (
	FormatCSV    = "csv"
	FormatCharts = "charts"
	FormatPDF    = "pdf"
	FormatXML    = "xml"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env, archivo y flags).
type Config struct {
	App      AppConfig
	Analysis AnalysisConfig
	Report   ReportConfig
	Sample   SampleConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// AnalysisConfig parámetros del motor de alertas y reposición.
// No se validan aquí: el dominio devuelve ConfigurationError al usarlos.
type AnalysisConfig struct {
	LowStockThreshold int64
	CriticalRatio     decimal.Decimal
	ReorderTarget     int64 // 0 = 2 * LowStockThreshold
}

// ReportConfig entrada y salidas del reporte.
type ReportConfig struct {
	Input     string   // CSV de inventario; vacío = generar datos de ejemplo
	OutputDir string   // directorio de artefactos
	Formats   []string // csv, charts, pdf, xml
}

// Wants indica si el formato está habilitado.
func (c ReportConfig) Wants(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Validate rechaza formatos desconocidos en REPORT_FORMATS.
func (c ReportConfig) Validate() error {
	for _, f := range c.Formats {
		switch f {
		case FormatCSV, FormatCharts, FormatPDF, FormatXML:
		default:
			return &domain.ConfigurationError{Field: "report_formats", Value: f, Reason: "formato desconocido"}
		}
	}
	return nil
}

// SampleConfig generador de datos de ejemplo.
type SampleConfig struct {
	Path string
	Size int
	Seed int64
}

// Validate rechaza un tamaño de muestra negativo.
func (c SampleConfig) Validate() error {
	if c.Size < 0 {
		return &domain.ConfigurationError{Field: "sample_size", Value: strconv.Itoa(c.Size), Reason: "no puede ser negativo"}
	}
	return nil
}

// flagKeys relación flag de línea de comandos → clave de configuración.
var flagKeys = map[string]string{
	"input":          "REPORT_INPUT",
	"output":         "REPORT_OUTPUT_DIR",
	"formats":        "REPORT_FORMATS",
	"threshold":      "LOW_STOCK_THRESHOLD",
	"critical-ratio": "CRITICAL_RATIO",
	"reorder-target": "REORDER_TARGET",
	"size":           "SAMPLE_SIZE",
	"seed":           "SAMPLE_SEED",
	"log-level":      "LOG_LEVEL",
}

// Load lee la configuración desde variables de entorno (y opcionalmente .env / config.yaml).
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags igual que Load, pero los flags definidos en fs tienen prioridad sobre env y archivo.
// Solo se consideran los flags que el usuario cambió.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	// .env opcional: carga variables al entorno sin pisar las ya definidas
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: flag %s: %w", name, err)
				}
			}
		}
	}

	ratio, err := getDecimal(v, "CRITICAL_RATIO", "0.25")
	if err != nil {
		return nil, err
	}
	threshold, err := getInt(v, "LOW_STOCK_THRESHOLD", 20)
	if err != nil {
		return nil, err
	}
	target, err := getInt(v, "REORDER_TARGET", 0)
	if err != nil {
		return nil, err
	}
	size, err := getInt(v, "SAMPLE_SIZE", 50)
	if err != nil {
		return nil, err
	}
	seed, err := getInt(v, "SAMPLE_SEED", 42)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-report"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Analysis: AnalysisConfig{
			LowStockThreshold: int64(threshold),
			CriticalRatio:     ratio,
			ReorderTarget:     int64(target),
		},
		Report: ReportConfig{
			Input:     getString(v, "REPORT_INPUT", ""),
			OutputDir: getString(v, "REPORT_OUTPUT_DIR", "inventory_reports"),
			Formats:   getList(v, "REPORT_FORMATS", []string{FormatCSV, FormatCharts, FormatPDF, FormatXML}),
		},
		Sample: SampleConfig{
			Path: getString(v, "SAMPLE_PATH", "sample_inventory.csv"),
			Size: size,
			Seed: int64(seed),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getInt tolera valores string (env) y enteros (yaml, flags). Un valor ilegible es
// ConfigurationError con el texto original.
func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(fmt.Sprint(v.Get(key)))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ConfigurationError{
			Field:  strings.ToLower(key),
			Value:  raw,
			Reason: "no es un número entero",
		}
	}
	return n, nil
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := def
	if v.IsSet(key) {
		raw = strings.TrimSpace(v.GetString(key))
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &domain.ConfigurationError{
			Field:  strings.ToLower(key),
			Value:  raw,
			Reason: "no es un número decimal",
		}
	}
	return d, nil
}

// getList acepta "csv,pdf" (env/flag) o una lista yaml.
func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	var items []string
	for _, raw := range v.GetStringSlice(key) {
		for _, part := range strings.Split(raw, ",") {
			if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
				items = append(items, p)
			}
		}
	}
	return items
}
