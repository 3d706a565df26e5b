package services

import (
	"context"
	"time"

	"spend-insights/internal/models"

	"github.com/google/uuid"
)

// IngestionServiceInterface reads bank CSV exports into raw transaction sets
type IngestionServiceInterface interface {
	// Ingest reads every path in order, skipping files that are missing,
	// unreadable or in an unknown format. It only fails when ctx is done.
	Ingest(ctx context.Context, paths []string) (*models.RawTransactionSet, IngestionStats, error)

	// ParseFile reads a single export and drops rows without a parseable date
	ParseFile(path string) (*models.RawTransactionSet, error)
}

// CleanerServiceInterface normalizes raw rows into expense transactions
type CleanerServiceInterface interface {
	Clean(set *models.RawTransactionSet) (*models.TransactionSet, error)
	CleanTable(columns []string, rows [][]string) (*models.TransactionSet, error)
	CleanDescription(description string) string
}

// RecurrenceServiceInterface detects recurring charges
type RecurrenceServiceInterface interface {
	Detect(set *models.TransactionSet) []models.RecurringCharge
	Summarize(charges []models.RecurringCharge) models.RecurringSummary
}

// OutlierServiceInterface flags category months that fall well below their trend
type OutlierServiceInterface interface {
	MonthlySpending(set *models.TransactionSet) *models.MonthlySpending
	CategoryStats(table *models.MonthlySpending) []models.CategoryMonthStat
	OutlierMonths(table *models.MonthlySpending, stats []models.CategoryMonthStat) []models.OutlierMonth
}

// SpendPatternServiceInterface finds individual transactions that are outliers within their category
type SpendPatternServiceInterface interface {
	UniqueSpendPatterns(set *models.TransactionSet, threshold float64) ([]models.UniqueSpendPattern, error)
	CountByCategory(patterns []models.UniqueSpendPattern) []models.CategoryCount
	TopTransactions(set *models.TransactionSet, month, category string, n int) []models.Transaction
}

// AnalysisServiceInterface runs the full pipeline and exposes run history
type AnalysisServiceInterface interface {
	Analyze(ctx context.Context, opts AnalysisOptions) (*models.Report, error)
	ChartSeries(ctx context.Context, opts AnalysisOptions) (*models.ChartData, error)
	History(ctx context.Context, offset, limit int) ([]models.AnalysisRun, int64, error)
	GetRun(ctx context.Context, id uuid.UUID) (*models.AnalysisRun, error)
	LatestRun(ctx context.Context) (*models.AnalysisRun, error)
	RunCounts(ctx context.Context) (map[string]int64, error)
	PruneHistory(ctx context.Context, olderThan time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
