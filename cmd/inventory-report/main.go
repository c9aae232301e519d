package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	appinventory "github.com/jhoicas/inventory-report/internal/application/inventory"
	"github.com/jhoicas/inventory-report/internal/domain"
	"github.com/jhoicas/inventory-report/internal/domain/inventory"
	"github.com/jhoicas/inventory-report/internal/infrastructure/chart"
	"github.com/jhoicas/inventory-report/internal/infrastructure/csvio"
	infrapdf "github.com/jhoicas/inventory-report/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-report/internal/infrastructure/sample"
	"github.com/jhoicas/inventory-report/internal/infrastructure/xmlreport"
	"github.com/jhoicas/inventory-report/internal/interfaces/console"
	"github.com/jhoicas/inventory-report/pkg/config"
	"github.com/jhoicas/inventory-report/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, domain.ErrConfiguration) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory-report",
		Short:         "Análisis de stock bajo y sugerencias de reposición sobre un CSV de inventario",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().String("log-level", "info", "trace, debug, info, warn, error")

	root.AddCommand(newAnalyzeCmd(out), newSampleCmd())
	return root
}

func newAnalyzeCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Ejecuta el análisis y genera los reportes",
		Long: "Lee el CSV de inventario, clasifica alertas de stock, sugiere reposición y\n" +
			"exporta CSV, gráficos, PDF y XML. Sin --input genera primero el dataset de ejemplo.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), cfg, out)
		},
	}
	f := cmd.Flags()
	f.String("input", "", "CSV de inventario (vacío = datos de ejemplo)")
	f.String("output", "inventory_reports", "directorio de salida")
	f.Int64("threshold", inventory.DefaultLowStockThreshold, "umbral de stock bajo")
	f.String("critical-ratio", "0.25", "fracción del umbral que marca stock crítico")
	f.Int64("reorder-target", 0, "nivel de stock objetivo al reponer (0 = 2 x umbral)")
	f.String("formats", "csv,charts,pdf,xml", "formatos a exportar")
	return cmd
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Genera un CSV de inventario de ejemplo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			// --output en este comando es el archivo, no el directorio de reportes
			if cmd.Flags().Changed("output") {
				cfg.Sample.Path, _ = cmd.Flags().GetString("output")
			}
			if err := cfg.Sample.Validate(); err != nil {
				return err
			}
			log := newLogger(cfg)
			if err := sample.NewGenerator(cfg.Sample.Size, cfg.Sample.Seed).WriteFile(cfg.Sample.Path); err != nil {
				return err
			}
			log.Info().Str("path", cfg.Sample.Path).Int("size", cfg.Sample.Size).Int64("seed", cfg.Sample.Seed).
				Msg("datos de ejemplo generados")
			return nil
		},
	}
	f := cmd.Flags()
	f.String("output", "sample_inventory.csv", "archivo CSV a generar")
	f.Int("size", 50, "cantidad de productos")
	f.Int64("seed", 42, "semilla del generador")
	return cmd
}

func newLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	return log
}

func runAnalyze(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if err := cfg.Report.Validate(); err != nil {
		return err
	}
	settings := inventory.Settings{
		LowStockThreshold: cfg.Analysis.LowStockThreshold,
		CriticalRatio:     cfg.Analysis.CriticalRatio,
		ReorderTarget:     cfg.Analysis.ReorderTarget,
	}
	// antes de escribir el dataset de ejemplo
	if err := settings.Validate(); err != nil {
		return err
	}
	if cfg.Report.Input == "" {
		if err := cfg.Sample.Validate(); err != nil {
			return err
		}
	}
	log := newLogger(cfg)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando análisis")

	input := cfg.Report.Input
	if input == "" {
		input = cfg.Sample.Path
		if err := sample.NewGenerator(cfg.Sample.Size, cfg.Sample.Seed).WriteFile(input); err != nil {
			return err
		}
		log.Info().Str("path", input).Int("size", cfg.Sample.Size).Msg("sin --input: datos de ejemplo generados")
	}

	exporters, files := buildExporters(cfg.Report)
	exporters = append(exporters, console.NewPresenter(out, files...))

	uc := appinventory.NewAnalysisUseCase(csvio.NewFileSource(input), log, exporters...)
	_, err := uc.Run(ctx, settings)
	return err
}

// buildExporters exportadores habilitados y los archivos que producen.
func buildExporters(rc config.ReportConfig) ([]appinventory.ReportExporter, []string) {
	var (
		exporters []appinventory.ReportExporter
		files     []string
	)
	add := func(names ...string) {
		for _, n := range names {
			files = append(files, filepath.Join(rc.OutputDir, n))
		}
	}
	renderer := chart.NewRenderer()

	if rc.Wants(config.FormatCSV) {
		exporters = append(exporters, csvio.NewReportWriter(rc.OutputDir))
		add(csvio.ReorderFile, csvio.CategoryFile, csvio.AlertsFile, csvio.CleanedFile)
	}
	if rc.Wants(config.FormatCharts) {
		exporters = append(exporters, chart.NewExporter(rc.OutputDir, renderer))
		add(chart.CategoryChartFile, chart.LowStockChartFile)
	}
	if rc.Wants(config.FormatPDF) {
		exporters = append(exporters, infrapdf.NewExporter(rc.OutputDir, infrapdf.NewMarotoReportGenerator(renderer)))
		add(infrapdf.ReportFile)
	}
	if rc.Wants(config.FormatXML) {
		exporters = append(exporters, xmlreport.NewExporter(rc.OutputDir))
		add(xmlreport.DraftFile)
	}
	return exporters, files
}
