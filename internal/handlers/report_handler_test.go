package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spend-insights/internal/dto"
	"spend-insights/internal/models"
	"spend-insights/internal/services"
	"spend-insights/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	echo                *echo.Echo
	mockAnalysisService *service_mocks.MockAnalysisServiceInterface
	mockMetrics         *service_mocks.MockMetricsRecorderInterface
	handler             *ReportHandler
	runID               uuid.UUID
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockAnalysisService = service_mocks.NewMockAnalysisServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.handler = NewReportHandler(s.mockAnalysisService, s.mockMetrics)
	s.runID = uuid.New()
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func (s *ReportHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ReportHandlerTestSuite) report() *models.Report {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	merchant := gofakeit.Company()

	monthly := models.NewMonthlySpending()
	monthly.Months = []string{"2024-01", "2024-02"}
	monthly.Categories = []string{"housing", "subscription"}
	monthly.Set("2024-01", "housing", decimal.NewFromInt(-1200))
	monthly.Set("2024-01", "subscription", decimal.RequireFromString("-15.49"))
	monthly.Set("2024-02", "subscription", decimal.RequireFromString("-15.49"))

	return &models.Report{
		RunID:           s.runID,
		GeneratedAt:     time.Now().UTC(),
		ZScoreThreshold: 3,
		Transactions: models.NewTransactionSet([]models.Transaction{
			{Date: jan, Description: merchant, Category: "housing", Amount: decimal.NewFromInt(-1200), Month: "2024-01"},
		}),
		MonthlySpending: monthly,
		OutlierMonths: []models.OutlierMonth{
			{Month: "2024-01", Category: "housing", Value: decimal.NewFromInt(-1200), Threshold: -900},
			{Month: "2024-02", Category: "subscription", Value: decimal.RequireFromString("-15.49"), Threshold: -10},
		},
		Recurring: []models.RecurringCharge{
			{Description: "netflix", Frequency: models.FrequencyMonthly, Occurrences: 3, TotalAmount: decimal.RequireFromString("-46.47")},
			{Description: "amazon prime", Frequency: models.FrequencyAnnual, Occurrences: 2, TotalAmount: decimal.NewFromInt(-278)},
		},
		Summary: models.Summary{
			TotalSpent: decimal.RequireFromString("-1230.98"),
			Text:       "Total Spending: $-1230.98",
		},
	}
}

// ========================================
// GET /api/data
// ========================================

func (s *ReportHandlerTestSuite) TestGetData_Success() {
	s.mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), services.AnalysisOptions{ZScoreThreshold: 2.5}).
		Return(s.report(), nil)

	c, rec := s.newContext("/api/data?zThreshold=2.5")
	err := s.handler.GetData(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	for _, key := range []string{"data", "monthly_spending_data", "outlier_months", "summary", "recurring_charges"} {
		s.Contains(body, key)
	}

	var monthly map[string]map[string]*string
	s.Require().NoError(json.Unmarshal(body["monthly_spending_data"], &monthly))
	s.Nil(monthly["2024-02"]["housing"])
	s.Equal("-1200", *monthly["2024-01"]["housing"])
}

func (s *ReportHandlerTestSuite) TestGetData_DefaultThreshold() {
	s.mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), services.AnalysisOptions{}).
		Return(s.report(), nil)

	c, rec := s.newContext("/api/data")
	s.NoError(s.handler.GetData(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerTestSuite) TestGetData_InvalidThreshold() {
	testCases := []struct {
		name   string
		target string
		code   string
	}{
		{"negative", "/api/data?zThreshold=-1", "VALIDATION_001"},
		{"above ten", "/api/data?zThreshold=12", "VALIDATION_001"},
		{"not a number", "/api/data?zThreshold=abc", "VALIDATION_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(tc.target)
			s.NoError(s.handler.GetData(c))
			s.Equal(http.StatusBadRequest, rec.Code)

			response := s.decodeError(rec)
			s.Equal(tc.code, response.Error.Code)
			s.Equal("trace-123", response.Error.TraceID)
		})
	}
}

func (s *ReportHandlerTestSuite) TestGetData_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no data", fmt.Errorf("%w: no rows in 2 input file(s)", services.ErrNoData), http.StatusNotFound, "DATA_001"},
		{"schema", fmt.Errorf("%w: date, amount", services.ErrSchema), http.StatusUnprocessableEntity, "DATA_002"},
		{"threshold", services.ErrInvalidThreshold, http.StatusBadRequest, "VALIDATION_004"},
		{"cancelled", context.Canceled, http.StatusServiceUnavailable, "SYSTEM_003"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockAnalysisService.EXPECT().
				Analyze(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			c, rec := s.newContext("/api/data")
			s.NoError(s.handler.GetData(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, s.decodeError(rec).Error.Code)
			s.NotContains(rec.Body.String(), "disk on fire")
		})
	}
}

// ========================================
// GET /api/plot
// ========================================

func (s *ReportHandlerTestSuite) TestGetPlot_Success() {
	value := decimal.NewFromInt(-1200)
	chart := &models.ChartData{
		RunID:  s.runID,
		Months: []string{"2024-01", "2024-02"},
		Trend: []models.TrendSeries{
			{Category: "housing", Color: "red", Values: []*decimal.Decimal{&value, nil}},
		},
		Outliers: []models.OutlierChart{},
	}
	s.mockAnalysisService.EXPECT().
		ChartSeries(gomock.Any(), services.AnalysisOptions{ZScoreThreshold: 1.5}).
		Return(chart, nil)

	c, rec := s.newContext("/api/plot?zThreshold=1.5")
	s.NoError(s.handler.GetPlot(c))
	s.Equal(http.StatusOK, rec.Code)

	var response models.ChartData
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(s.runID, response.RunID)
	s.Require().Len(response.Trend, 1)
	s.Nil(response.Trend[0].Values[1])
}

func (s *ReportHandlerTestSuite) TestGetPlot_NoData() {
	s.mockAnalysisService.EXPECT().
		ChartSeries(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrNoData)

	c, rec := s.newContext("/api/plot")
	s.NoError(s.handler.GetPlot(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

// ========================================
// GET /api/recurring and /api/outliers
// ========================================

func (s *ReportHandlerTestSuite) TestGetRecurring_FilterByFrequency() {
	s.mockAnalysisService.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(s.report(), nil)

	c, rec := s.newContext("/api/recurring?frequency=Monthly")
	s.NoError(s.handler.GetRecurring(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.RecurringResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Charges, 1)
	s.Equal("netflix", response.Charges[0].Description)
	s.Equal("monthly", response.Frequency)
}

func (s *ReportHandlerTestSuite) TestGetRecurring_InvalidFrequency() {
	c, rec := s.newContext("/api/recurring?frequency=weekly")
	s.NoError(s.handler.GetRecurring(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeError(rec).Error.Details[0], "frequency")
}

func (s *ReportHandlerTestSuite) TestGetOutliers_Filters() {
	testCases := []struct {
		name     string
		target   string
		expected []string
	}{
		{"all", "/api/outliers", []string{"housing", "subscription"}},
		{"by month", "/api/outliers?month=2024-02", []string{"subscription"}},
		{"by category", "/api/outliers?category=Housing", []string{"housing"}},
		{"no match", "/api/outliers?month=2023-12", []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockAnalysisService.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(s.report(), nil)

			c, rec := s.newContext(tc.target)
			s.NoError(s.handler.GetOutliers(c))
			s.Equal(http.StatusOK, rec.Code)

			var response dto.OutlierResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			categories := []string{}
			for _, o := range response.OutlierMonths {
				categories = append(categories, o.Category)
			}
			s.Equal(tc.expected, categories)
		})
	}
}

func (s *ReportHandlerTestSuite) TestGetOutliers_InvalidMonth() {
	c, rec := s.newContext("/api/outliers?month=2024-3")
	s.NoError(s.handler.GetOutliers(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", s.decodeError(rec).Error.Code)
}

// ========================================
// GET /api/runs
// ========================================

func (s *ReportHandlerTestSuite) TestListRuns_Defaults() {
	runs := []models.AnalysisRun{
		{ID: uuid.New(), Status: models.RunStatusCompleted},
		{ID: uuid.New(), Status: models.RunStatusNoData},
	}
	s.mockAnalysisService.EXPECT().
		History(gomock.Any(), 0, defaultPageLimit).
		Return(runs, int64(2), nil)
	s.mockAnalysisService.EXPECT().
		RunCounts(gomock.Any()).
		Return(map[string]int64{models.RunStatusCompleted: 1, models.RunStatusNoData: 1, models.RunStatusFailed: 0}, nil)

	c, rec := s.newContext("/api/runs")
	s.NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListRunsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Runs, 2)
	s.False(response.Pagination.HasMore)
	s.Equal(int64(2), response.Pagination.Total)
	s.Equal(int64(1), response.StatusCounts[models.RunStatusNoData])
	s.Contains(response.StatusCounts, models.RunStatusFailed)
}

func (s *ReportHandlerTestSuite) TestListRuns_HasMore() {
	s.mockAnalysisService.EXPECT().
		History(gomock.Any(), 5, 1).
		Return([]models.AnalysisRun{{ID: uuid.New(), Status: models.RunStatusCompleted}}, int64(9), nil)
	s.mockAnalysisService.EXPECT().RunCounts(gomock.Any()).Return(map[string]int64{}, nil)

	c, rec := s.newContext("/api/runs?limit=1&offset=5")
	s.NoError(s.handler.ListRuns(c))

	var response dto.ListRunsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Pagination.HasMore)
	s.Equal(5, response.Pagination.Offset)
}

func (s *ReportHandlerTestSuite) TestListRuns_InvalidPagination() {
	for _, target := range []string{"/api/runs?limit=500", "/api/runs?limit=0", "/api/runs?offset=-3"} {
		s.Run(target, func() {
			c, rec := s.newContext(target)
			s.NoError(s.handler.ListRuns(c))
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *ReportHandlerTestSuite) TestListRuns_RepositoryError() {
	s.mockAnalysisService.EXPECT().
		History(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("connection refused"))

	c, rec := s.newContext("/api/runs")
	s.NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_002", s.decodeError(rec).Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ReportHandlerTestSuite) TestListRuns_CountError() {
	s.mockAnalysisService.EXPECT().
		History(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.AnalysisRun{}, int64(0), nil)
	s.mockAnalysisService.EXPECT().
		RunCounts(gomock.Any()).
		Return(nil, errors.New("failed to count completed runs: timeout"))

	c, rec := s.newContext("/api/runs")
	s.NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_002", s.decodeError(rec).Error.Code)
}

// ========================================
// GET /api/runs/latest
// ========================================

func (s *ReportHandlerTestSuite) TestGetLatestRun() {
	testCases := []struct {
		name   string
		run    *models.AnalysisRun
		err    error
		status int
		code   string
	}{
		{
			name:   "found",
			run:    &models.AnalysisRun{ID: s.runID, Status: models.RunStatusFailed, ErrorMessage: "schema"},
			status: http.StatusOK,
		},
		{
			name:   "no runs yet",
			err:    services.ErrRunNotFound,
			status: http.StatusNotFound,
			code:   "DATA_003",
		},
		{
			name:   "storage failure",
			err:    errors.New("failed to get latest analysis run: connection reset"),
			status: http.StatusInternalServerError,
			code:   "SYSTEM_002",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockAnalysisService.EXPECT().LatestRun(gomock.Any()).Return(tc.run, tc.err)

			c, rec := s.newContext("/api/runs/latest")
			s.NoError(s.handler.GetLatestRun(c))
			s.Equal(tc.status, rec.Code)
			if tc.code != "" {
				s.Equal(tc.code, s.decodeError(rec).Error.Code)
				return
			}

			var response struct {
				Data models.AnalysisRun `json:"data"`
			}
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(s.runID, response.Data.ID)
			s.Equal(models.RunStatusFailed, response.Data.Status)
		})
	}
}

// ========================================
// GET /api/runs/:id
// ========================================

func (s *ReportHandlerTestSuite) TestGetRun() {
	run := &models.AnalysisRun{ID: s.runID, Status: models.RunStatusCompleted, RowsCleaned: 7}

	testCases := []struct {
		name   string
		param  string
		setup  func()
		status int
		code   string
	}{
		{
			name:   "found",
			param:  s.runID.String(),
			setup:  func() { s.mockAnalysisService.EXPECT().GetRun(gomock.Any(), s.runID).Return(run, nil) },
			status: http.StatusOK,
		},
		{
			name:   "invalid id",
			param:  "not-a-uuid",
			setup:  func() {},
			status: http.StatusBadRequest,
			code:   "DATA_004",
		},
		{
			name:   "not found",
			param:  s.runID.String(),
			setup:  func() { s.mockAnalysisService.EXPECT().GetRun(gomock.Any(), s.runID).Return(nil, services.ErrRunNotFound) },
			status: http.StatusNotFound,
			code:   "DATA_003",
		},
		{
			name:  "storage failure",
			param: s.runID.String(),
			setup: func() {
				s.mockAnalysisService.EXPECT().GetRun(gomock.Any(), s.runID).Return(nil, errors.New("failed to get analysis run: bad connection"))
			},
			status: http.StatusInternalServerError,
			code:   "SYSTEM_002",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()
			c, rec := s.newContext("/api/runs/" + tc.param)
			c.SetParamNames("id")
			c.SetParamValues(tc.param)

			s.NoError(s.handler.GetRun(c))
			s.Equal(tc.status, rec.Code)
			if tc.code != "" {
				s.Equal(tc.code, s.decodeError(rec).Error.Code)
				return
			}

			var response struct {
				Data models.AnalysisRun `json:"data"`
			}
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(7, response.Data.RowsCleaned)
		})
	}
}
