package dto

import (
	"time"

	"spend-insights/internal/models"

	"github.com/google/uuid"
)

// AnalysisQuery contains the per-request overrides for an analysis run
type AnalysisQuery struct {
	ZThreshold float64 `query:"zThreshold" validate:"omitempty,z_threshold,lte=10"`
}

// RecurringQuery filters the recurring charges of an analysis run
type RecurringQuery struct {
	AnalysisQuery
	Frequency string `query:"frequency" validate:"omitempty,frequency"`
}

// OutlierQuery filters the outlier months of an analysis run
type OutlierQuery struct {
	AnalysisQuery
	Month    string `query:"month" validate:"omitempty,year_month"`
	Category string `query:"category" validate:"omitempty,max=100"`
}

// RunListQuery contains pagination parameters for run history
type RunListQuery struct {
	Limit  int `query:"limit" validate:"gte=1,lte=100"`
	Offset int `query:"offset" validate:"gte=0"`
}

// DataResponse is the full analysis report
type DataResponse struct {
	RunID               uuid.UUID                   `json:"run_id"`
	GeneratedAt         time.Time                   `json:"generated_at"`
	ZScoreThreshold     float64                     `json:"z_score_threshold"`
	Data                []models.Transaction        `json:"data"`
	MonthlySpendingData *models.MonthlySpending     `json:"monthly_spending_data"`
	CategoryStats       []models.CategoryMonthStat  `json:"category_stats"`
	OutlierMonths       []models.OutlierMonth       `json:"outlier_months"`
	RecurringCharges    []models.RecurringCharge    `json:"recurring_charges"`
	UniqueSpendPatterns []models.UniqueSpendPattern `json:"unique_spend_patterns"`
	Summary             models.Summary              `json:"summary"`
}

// NewDataResponse flattens a report for the API
func NewDataResponse(report *models.Report) DataResponse {
	resp := DataResponse{
		RunID:               report.RunID,
		GeneratedAt:         report.GeneratedAt,
		ZScoreThreshold:     report.ZScoreThreshold,
		Data:                []models.Transaction{},
		MonthlySpendingData: report.MonthlySpending,
		CategoryStats:       report.CategoryStats,
		OutlierMonths:       report.OutlierMonths,
		RecurringCharges:    report.Recurring,
		UniqueSpendPatterns: report.UniquePatterns,
		Summary:             report.Summary,
	}
	if report.Transactions != nil {
		resp.Data = report.Transactions.Transactions
	}
	return resp
}

// RecurringResponse lists recurring charges with their per-frequency summary
type RecurringResponse struct {
	RunID     uuid.UUID                `json:"run_id"`
	Charges   []models.RecurringCharge `json:"charges"`
	Summary   models.RecurringSummary  `json:"summary"`
	Frequency string                   `json:"frequency,omitempty"`
}

// OutlierResponse lists outlier months and the category statistics behind them
type OutlierResponse struct {
	RunID         uuid.UUID                  `json:"run_id"`
	OutlierMonths []models.OutlierMonth      `json:"outlier_months"`
	CategoryStats []models.CategoryMonthStat `json:"category_stats"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"hasMore"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
}

// ListRunsResponse represents the response for listing analysis runs
type ListRunsResponse struct {
	Runs         []models.AnalysisRun `json:"runs"`
	Pagination   PaginationInfo       `json:"pagination"`
	StatusCounts map[string]int64     `json:"status_counts"`
}
