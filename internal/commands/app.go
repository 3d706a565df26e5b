package commands

import (
	"fmt"
	"io"
	"log/slog"

	"spend-insights/internal/config"
	"spend-insights/internal/database"
	"spend-insights/internal/mappings"
	"spend-insights/internal/repositories"
	"spend-insights/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// app holds the wired pipeline shared by the commands.
type app struct {
	cfg       *config.Config
	db        *database.DB
	registry  *prometheus.Registry
	metrics   services.MetricsRecorderInterface
	ingestion services.IngestionServiceInterface
	cleaner   services.CleanerServiceInterface
	analysis  services.AnalysisServiceInterface
}

// loadConfig reads and validates the environment configuration and installs
// the configured slog handler as the default logger.
func loadConfig(logOutput io.Writer) (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(cfg, logOutput))
	return cfg, nil
}

// newLogger annotates records with their source location in development.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Log.SlogLevel(),
		AddSource: cfg.IsDevelopment(),
	}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newApp builds the analysis pipeline. Run history is persisted only when
// withHistory is set and a database driver is configured.
func newApp(cfg *config.Config, withHistory bool) (*app, error) {
	tables, err := mappings.LoadOrDefault(cfg.Analysis.MappingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	a := &app{cfg: cfg, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var runRepo repositories.AnalysisRunRepositoryInterface
	if withHistory && cfg.Database.Enabled() {
		a.db, err = database.Initialize(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		runRepo = repositories.NewAnalysisRunRepository(a.db.DB)
	}

	a.metrics = services.NewPrometheusMetrics(a.registry)
	a.ingestion = services.NewIngestionService(a.metrics)
	a.cleaner = services.NewCleanerService(tables)
	a.analysis = services.NewAnalysisService(
		services.AnalysisConfig{
			InputFiles:      cfg.Analysis.InputFiles,
			ZScoreThreshold: cfg.Analysis.ZScoreThreshold,
			TopTransactions: cfg.Analysis.TopTransactions,
		},
		a.ingestion,
		a.cleaner,
		services.NewRecurrenceService(tables),
		services.NewOutlierService(services.OutlierConfig{
			StdMultiplier:     cfg.Analysis.StdMultiplier,
			SignificanceFloor: cfg.Analysis.SignificanceFloor,
		}),
		services.NewSpendPatternService(),
		runRepo,
		a.metrics,
		tables,
	)

	return a, nil
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
