package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"spend-insights/internal/mappings"
	"spend-insights/internal/models"
	"spend-insights/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoData      = errors.New("no transaction data available")
	ErrRunNotFound = errors.New("analysis run not found")
)

// AnalysisConfig holds the defaults applied to every run.
type AnalysisConfig struct {
	InputFiles      []string
	ZScoreThreshold float64
	TopTransactions int
}

// AnalysisOptions overrides the configured defaults for a single run. Zero
// values fall back to AnalysisConfig.
type AnalysisOptions struct {
	Files           []string
	ZScoreThreshold float64
}

type analysisService struct {
	cfg        AnalysisConfig
	ingestion  IngestionServiceInterface
	cleaner    CleanerServiceInterface
	recurrence RecurrenceServiceInterface
	outliers   OutlierServiceInterface
	patterns   SpendPatternServiceInterface
	runRepo    repositories.AnalysisRunRepositoryInterface
	history    *CircuitBreaker
	metrics    MetricsRecorderInterface
	tables     *mappings.Tables
}

// NewAnalysisService creates a new AnalysisServiceInterface instance. runRepo
// may be nil, in which case runs are not recorded.
func NewAnalysisService(
	cfg AnalysisConfig,
	ingestion IngestionServiceInterface,
	cleaner CleanerServiceInterface,
	recurrence RecurrenceServiceInterface,
	outliers OutlierServiceInterface,
	patterns SpendPatternServiceInterface,
	runRepo repositories.AnalysisRunRepositoryInterface,
	metrics MetricsRecorderInterface,
	tables *mappings.Tables,
) AnalysisServiceInterface {
	if cfg.ZScoreThreshold == 0 {
		cfg.ZScoreThreshold = DefaultZScoreThreshold
	}
	if cfg.TopTransactions <= 0 {
		cfg.TopTransactions = 10
	}
	if tables == nil {
		tables = mappings.Default()
	}
	return &analysisService{
		cfg:        cfg,
		ingestion:  ingestion,
		cleaner:    cleaner,
		recurrence: recurrence,
		outliers:   outliers,
		patterns:   patterns,
		runRepo:    runRepo,
		history:    NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		metrics:    metrics,
		tables:     tables,
	}
}

// Analyze runs ingestion, cleaning and every analysis pass over the input files.
// It returns ErrNoData when the files yield no rows or no expenses.
func (s *analysisService) Analyze(ctx context.Context, opts AnalysisOptions) (*models.Report, error) {
	threshold := opts.ZScoreThreshold
	if threshold == 0 {
		threshold = s.cfg.ZScoreThreshold
	}
	if math.IsNaN(threshold) || threshold <= 0 {
		return nil, ErrInvalidThreshold
	}

	files := opts.Files
	if len(files) == 0 {
		files = s.cfg.InputFiles
	}

	run := &models.AnalysisRun{ID: uuid.New(), StartedAt: time.Now()}

	raw, stats, err := s.ingestion.Ingest(ctx, files)
	run.FilesRead = stats.FilesRead
	run.FilesSkipped = len(stats.FilesSkipped)
	if err != nil {
		s.finish(run, models.RunStatusFailed, err)
		return nil, err
	}
	run.RowsIngested = raw.Len()
	if raw.IsEmpty() {
		err := fmt.Errorf("%w: no rows in %d input file(s)", ErrNoData, len(files))
		s.finish(run, models.RunStatusNoData, err)
		return nil, err
	}

	cleaned, err := s.cleaner.Clean(raw)
	if err != nil {
		s.finish(run, models.RunStatusFailed, err)
		return nil, err
	}
	run.RowsCleaned = cleaned.Len()
	s.metrics.RecordGauge("ingest.rows", float64(cleaned.Len()), map[string]string{"stage": "cleaned"})

	recurring := s.recurrence.Detect(cleaned)
	recurringSummary := s.recurrence.Summarize(recurring)

	patterns, err := s.patterns.UniqueSpendPatterns(cleaned, threshold)
	if err != nil {
		s.finish(run, models.RunStatusFailed, err)
		return nil, err
	}

	monthly := s.outliers.MonthlySpending(cleaned)
	if monthly.IsEmpty() {
		err := fmt.Errorf("%w: no expenses after cleaning", ErrNoData)
		s.finish(run, models.RunStatusNoData, err)
		return nil, err
	}
	categoryStats := s.outliers.CategoryStats(monthly)
	outliers := s.outliers.OutlierMonths(monthly, categoryStats)

	summary := buildSummary(cleaned, recurring, recurringSummary, patterns, s.patterns.CountByCategory(patterns), outliers)

	report := &models.Report{
		RunID:           run.ID,
		GeneratedAt:     time.Now().UTC(),
		ZScoreThreshold: threshold,
		Transactions:    cleaned,
		MonthlySpending: monthly,
		CategoryStats:   categoryStats,
		OutlierMonths:   outliers,
		Recurring:       recurring,
		UniquePatterns:  patterns,
		Summary:         summary,
	}

	run.TotalSpent = summary.TotalSpent
	run.TotalRecurring = summary.TotalRecurring
	run.TotalUniquePatterns = summary.TotalUniquePatterns
	run.OutlierMonthCount = summary.OutlierMonthCount
	s.finish(run, models.RunStatusCompleted, nil)

	s.metrics.RecordGauge("analysis.findings", float64(len(recurring)), map[string]string{"kind": "recurring"})
	s.metrics.RecordGauge("analysis.findings", float64(len(patterns)), map[string]string{"kind": "unique_patterns"})
	s.metrics.RecordGauge("analysis.findings", float64(len(outliers)), map[string]string{"kind": "outlier_months"})

	slog.Info("analysis completed",
		"run_id", run.ID,
		"transactions", cleaned.Len(),
		"recurring", len(recurring),
		"unique_patterns", len(patterns),
		"outlier_months", len(outliers),
		"duration_ms", run.Duration().Milliseconds(),
	)

	return report, nil
}

// ChartSeries runs an analysis and shapes it for the trend and outlier charts
func (s *analysisService) ChartSeries(ctx context.Context, opts AnalysisOptions) (*models.ChartData, error) {
	report, err := s.Analyze(ctx, opts)
	if err != nil {
		return nil, err
	}
	return s.buildChart(report), nil
}

func (s *analysisService) buildChart(report *models.Report) *models.ChartData {
	table := report.MonthlySpending
	chart := &models.ChartData{
		RunID:    report.RunID,
		Months:   table.Months,
		Trend:    make([]models.TrendSeries, 0, len(table.Categories)),
		Outliers: make([]models.OutlierChart, 0, len(report.OutlierMonths)),
	}

	for _, category := range table.Categories {
		values := make([]*decimal.Decimal, len(table.Months))
		for i, month := range table.Months {
			if v, ok := table.Value(month, category); ok {
				values[i] = &v
			}
		}
		chart.Trend = append(chart.Trend, models.TrendSeries{
			Category: category,
			Color:    s.tables.Color(category),
			Values:   values,
		})
	}

	for _, o := range report.OutlierMonths {
		chart.Outliers = append(chart.Outliers, models.OutlierChart{
			Month:        o.Month,
			Category:     o.Category,
			Title:        fmt.Sprintf("Top Transactions for %s in %s", o.Category, o.Month),
			Color:        s.tables.Color(o.Category),
			Transactions: s.patterns.TopTransactions(report.Transactions, o.Month, o.Category, s.cfg.TopTransactions),
		})
	}

	return chart
}

// History lists recorded runs newest first
func (s *analysisService) History(ctx context.Context, offset, limit int) ([]models.AnalysisRun, int64, error) {
	if s.runRepo == nil {
		return []models.AnalysisRun{}, 0, nil
	}
	runs, total, err := s.runRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analysis runs: %w", err)
	}
	return runs, total, nil
}

// GetRun retrieves a recorded run
func (s *analysisService) GetRun(ctx context.Context, id uuid.UUID) (*models.AnalysisRun, error) {
	if s.runRepo == nil {
		return nil, ErrRunNotFound
	}
	run, err := s.runRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisRunNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}
	return run, nil
}

// LatestRun retrieves the most recently started run
func (s *analysisService) LatestRun(ctx context.Context) (*models.AnalysisRun, error) {
	if s.runRepo == nil {
		return nil, ErrRunNotFound
	}
	run, err := s.runRepo.GetLatest()
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisRunNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get latest analysis run: %w", err)
	}
	return run, nil
}

// RunCounts counts recorded runs per status. Every status is present, zero when unused.
func (s *analysisService) RunCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(models.RunStatuses))
	for _, status := range models.RunStatuses {
		counts[status] = 0
	}
	if s.runRepo == nil {
		return counts, nil
	}
	for _, status := range models.RunStatuses {
		n, err := s.runRepo.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s runs: %w", status, err)
		}
		counts[status] = n
	}
	return counts, nil
}

// PruneHistory removes runs started more than olderThan ago
func (s *analysisService) PruneHistory(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.runRepo == nil || olderThan <= 0 {
		return 0, nil
	}
	removed, err := s.runRepo.DeleteOlderThan(time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		slog.Info("pruned analysis history", "removed", removed, "older_than", olderThan.String())
	}
	return removed, nil
}

func (s *analysisService) finish(run *models.AnalysisRun, status string, runErr error) {
	run.Status = status
	run.FinishedAt = time.Now()
	if runErr != nil {
		run.ErrorMessage = runErr.Error()
		slog.Warn("analysis did not complete",
			"run_id", run.ID,
			"status", status,
			"error", runErr,
		)
	}

	s.metrics.IncrementCounter("analysis.run", map[string]string{"status": status})
	s.metrics.RecordProcessingTime("analysis.duration", run.Duration())

	if s.runRepo == nil {
		return
	}
	if err := s.history.Allow(); err != nil {
		slog.Warn("skipping analysis run record",
			"run_id", run.ID,
			"error", err,
		)
		return
	}
	if err := s.runRepo.Create(run); err != nil {
		s.history.RecordFailure()
		slog.Error("failed to record analysis run",
			"run_id", run.ID,
			"breaker_state", s.history.State().String(),
			"error", err,
		)
		return
	}
	s.history.RecordSuccess()
}
