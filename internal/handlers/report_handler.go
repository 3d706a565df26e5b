package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"spend-insights/internal/dto"
	apierrors "spend-insights/internal/errors"
	"spend-insights/internal/models"
	"spend-insights/internal/services"
	"spend-insights/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultPageLimit = 20

// ReportHandler serves analysis reports, chart series and run history
type ReportHandler struct {
	analysisService services.AnalysisServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	analysisService services.AnalysisServiceInterface,
	metrics services.MetricsRecorderInterface,
) *ReportHandler {
	return &ReportHandler{
		analysisService: analysisService,
		metrics:         metrics,
	}
}

// GetData runs an analysis over the configured files and returns the full report
//
// Method: GET /api/data
//
// Query parameters:
//   - zThreshold: z-score threshold for unique spend patterns (optional, 0 < z <= 10)
//
// Success Response: 200 OK
//   - data: cleaned transactions
//   - monthly_spending_data: month x category totals
//   - outlier_months, category_stats, recurring_charges, unique_spend_patterns
//   - summary: structured summary with the rendered text block
//
// Error Responses:
//   - 400: VALIDATION_001 invalid zThreshold
//   - 404: DATA_001 no transaction data
//   - 422: DATA_002 input files are missing required columns
//   - 500: Internal server error
func (h *ReportHandler) GetData(c echo.Context) error {
	var query dto.AnalysisQuery
	if ok, err := h.bindQuery(c, &query); !ok {
		return err
	}

	report, err := h.analyze(c, "data", query)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDataResponse(report))
}

// GetPlot returns the chart-ready trend and outlier series
//
// Method: GET /api/plot
//
// Query parameters:
//   - zThreshold: z-score threshold (optional)
//
// Success Response: 200 OK
//   - months: ascending month keys
//   - trend: one series per category, null where the category has no spend
//   - outliers: top transactions behind each outlier month
func (h *ReportHandler) GetPlot(c echo.Context) error {
	var query dto.AnalysisQuery
	if ok, err := h.bindQuery(c, &query); !ok {
		return err
	}

	start := time.Now()
	chart, err := h.analysisService.ChartSeries(c.Request().Context(), services.AnalysisOptions{
		ZScoreThreshold: query.ZThreshold,
	})
	h.record("plot", start, err)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, chart)
}

// GetRecurring returns recurring charges, optionally narrowed to one frequency
//
// Method: GET /api/recurring
//
// Query parameters:
//   - frequency: monthly, quarterly, semi-annual or annual (optional)
func (h *ReportHandler) GetRecurring(c echo.Context) error {
	var query dto.RecurringQuery
	if ok, err := h.bindQuery(c, &query); !ok {
		return err
	}

	report, err := h.analyze(c, "recurring", query.AnalysisQuery)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	frequency := models.Frequency(strings.ToLower(query.Frequency))
	charges := make([]models.RecurringCharge, 0, len(report.Recurring))
	for _, charge := range report.Recurring {
		if frequency == "" || charge.Frequency == frequency {
			charges = append(charges, charge)
		}
	}

	return c.JSON(http.StatusOK, dto.RecurringResponse{
		RunID:     report.RunID,
		Charges:   charges,
		Summary:   report.Summary.Recurring,
		Frequency: string(frequency),
	})
}

// GetOutliers returns outlier months, optionally narrowed to a month or category
//
// Method: GET /api/outliers
//
// Query parameters:
//   - month: YYYY-MM (optional)
//   - category: category name (optional)
func (h *ReportHandler) GetOutliers(c echo.Context) error {
	var query dto.OutlierQuery
	if ok, err := h.bindQuery(c, &query); !ok {
		return err
	}

	report, err := h.analyze(c, "outliers", query.AnalysisQuery)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	category := strings.ToLower(strings.TrimSpace(query.Category))
	outliers := make([]models.OutlierMonth, 0, len(report.OutlierMonths))
	for _, o := range report.OutlierMonths {
		if query.Month != "" && o.Month != query.Month {
			continue
		}
		if category != "" && o.Category != category {
			continue
		}
		outliers = append(outliers, o)
	}

	return c.JSON(http.StatusOK, dto.OutlierResponse{
		RunID:         report.RunID,
		OutlierMonths: outliers,
		CategoryStats: report.CategoryStats,
	})
}

// ListRuns returns recorded analysis runs newest first
//
// Method: GET /api/runs
//
// Query parameters:
//   - limit: page size (default 20, max 100)
//   - offset: number of runs to skip (default 0)
//
// Success Response: 200 OK
//   - runs, pagination
//   - status_counts: number of recorded runs per status
//
// Error Responses:
//   - 400: VALIDATION_001 limit outside 1..100 or negative offset
//   - 500: SYSTEM_002 history storage failure
func (h *ReportHandler) ListRuns(c echo.Context) error {
	query := dto.RunListQuery{
		Limit:  getIntParam(c, "limit", defaultPageLimit),
		Offset: getIntParam(c, "offset", 0),
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, validation.FieldErrors(err))
	}

	ctx := c.Request().Context()
	runs, total, err := h.analysisService.History(ctx, query.Offset, query.Limit)
	if err != nil {
		return h.handleHistoryError(c, err)
	}

	counts, err := h.analysisService.RunCounts(ctx)
	if err != nil {
		return h.handleHistoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListRunsResponse{
		Runs:         runs,
		StatusCounts: counts,
		Pagination: dto.PaginationInfo{
			HasMore: int64(query.Offset+len(runs)) < total,
			Limit:   query.Limit,
			Offset:  query.Offset,
			Total:   total,
		},
	})
}

// GetRun returns a single recorded analysis run
//
// Method: GET /api/runs/:id
//
// Error Responses:
//   - 400: DATA_004 invalid run ID
//   - 404: DATA_003 run not found
//   - 500: SYSTEM_002 history storage failure
func (h *ReportHandler) GetRun(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.DataInvalidRunID)
	}

	run, err := h.analysisService.GetRun(c.Request().Context(), id)
	if err != nil {
		return h.handleHistoryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: run})
}

// GetLatestRun returns the most recently started analysis run
//
// Method: GET /api/runs/latest
//
// Error Responses:
//   - 404: DATA_003 no run recorded yet
//   - 500: SYSTEM_002 history storage failure
func (h *ReportHandler) GetLatestRun(c echo.Context) error {
	run, err := h.analysisService.LatestRun(c.Request().Context())
	if err != nil {
		return h.handleHistoryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: run})
}

// bindQuery reports false once an error response has been written.
func (h *ReportHandler) bindQuery(c echo.Context, query interface{}) (bool, error) {
	if err := c.Bind(query); err != nil {
		return false, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		fields := validation.FieldErrors(err)
		if msg, ok := fields["month"]; ok {
			return false, SendError(c, apierrors.ValidationInvalidMonth, apierrors.WithDetails("month: "+msg))
		}
		return false, SendValidationError(c, fields)
	}
	return true, nil
}

func (h *ReportHandler) analyze(c echo.Context, endpoint string, query dto.AnalysisQuery) (*models.Report, error) {
	start := time.Now()
	report, err := h.analysisService.Analyze(c.Request().Context(), services.AnalysisOptions{
		ZScoreThreshold: query.ZThreshold,
	})
	h.record(endpoint, start, err)
	return report, err
}

func (h *ReportHandler) record(endpoint string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	h.metrics.IncrementCounter("api.analysis_request", map[string]string{
		"endpoint": endpoint,
		"status":   status,
	})
	h.metrics.RecordProcessingTime("api.analysis_latency", time.Since(start))
}

func (h *ReportHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrNoData) {
		return SendError(c, apierrors.DataNoTransactions)
	}

	if errors.Is(err, services.ErrSchema) {
		return SendError(c, apierrors.DataSchemaInvalid, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, services.ErrRunNotFound) {
		return SendError(c, apierrors.DataRunNotFound)
	}

	if errors.Is(err, services.ErrInvalidThreshold) {
		return SendError(c, apierrors.ValidationOutOfRange, apierrors.WithDetails(err.Error()))
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails("analysis was cancelled"))
	}

	slog.Error("analysis request failed",
		"path", c.Path(),
		"client_ip", getClientIP(c),
		"trace_id", getTraceID(c),
		"error", err,
	)
	return SendSystemError(c, err)
}

func (h *ReportHandler) handleHistoryError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrRunNotFound) {
		return SendError(c, apierrors.DataRunNotFound)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return SendError(c, apierrors.SystemServiceUnavailable)
	}

	slog.Error("run history request failed",
		"path", c.Path(),
		"trace_id", getTraceID(c),
		"error", err,
	)
	return SendDatabaseError(c, err)
}
