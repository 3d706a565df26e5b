package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary is the structured form of the analysis summary; Text holds the
// rendered block shown by the CLI and returned by the API.
type Summary struct {
	TotalSpent               decimal.Decimal  `json:"total_spent"`
	TotalRecurring           decimal.Decimal  `json:"total_recurring"`
	Recurring                RecurringSummary `json:"recurring"`
	TotalUniquePatterns      decimal.Decimal  `json:"total_unique_patterns"`
	UniquePatternCount       int              `json:"unique_pattern_count"`
	UniquePatternsByCategory []CategoryCount  `json:"unique_patterns_by_category"`
	OutlierMonthCount        int              `json:"outlier_month_count"`
	Text                     string           `json:"text"`
}

// Report is the terminal output of one analysis run.
type Report struct {
	RunID           uuid.UUID            `json:"run_id"`
	GeneratedAt     time.Time            `json:"generated_at"`
	ZScoreThreshold float64              `json:"z_score_threshold"`
	Transactions    *TransactionSet      `json:"-"`
	MonthlySpending *MonthlySpending     `json:"monthly_spending_data"`
	CategoryStats   []CategoryMonthStat  `json:"category_stats"`
	OutlierMonths   []OutlierMonth       `json:"outlier_months"`
	Recurring       []RecurringCharge    `json:"recurring_charges"`
	UniquePatterns  []UniqueSpendPattern `json:"unique_spend_patterns"`
	Summary         Summary              `json:"summary"`
}

// TrendSeries is one category's monthly totals for the trend chart. Values
// align with ChartData.Months; nil marks a month without spend.
type TrendSeries struct {
	Category string             `json:"category"`
	Color    string             `json:"color"`
	Values   []*decimal.Decimal `json:"values"`
}

// OutlierChart lists the most negative transactions behind an outlier month.
type OutlierChart struct {
	Month        string        `json:"month"`
	Category     string        `json:"category"`
	Title        string        `json:"title"`
	Color        string        `json:"color"`
	Transactions []Transaction `json:"transactions"`
}

// ChartData is the chart-ready view of a report.
type ChartData struct {
	RunID    uuid.UUID      `json:"run_id"`
	Months   []string       `json:"months"`
	Trend    []TrendSeries  `json:"trend"`
	Outliers []OutlierChart `json:"outliers"`
}
