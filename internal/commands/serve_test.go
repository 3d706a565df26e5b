package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"spend-insights/internal/config"
	"spend-insights/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	app    *app
	server http.Handler
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	quietEnv(s.T())
	s.app = s.newApp("")
	s.server = newServer(s.app, middleware.NewRateLimiter(100, 100))
}

func (s *ServerTestSuite) newApp(jwtSecret string) *app {
	cfg := config.Load()
	cfg.Analysis.InputFiles = []string{filepath.Join("testdata", "card.csv")}
	cfg.Security.JWTSecret = jwtSecret

	a, err := newApp(cfg, true)
	s.Require().NoError(err)
	s.Nil(a.db, "history stays disabled without a database driver")
	return a
}

func (s *ServerTestSuite) get(handler http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *ServerTestSuite) errorCode(body map[string]interface{}) string {
	errBody, ok := body["error"].(map[string]interface{})
	s.Require().True(ok)
	code, _ := errBody["code"].(string)
	return code
}

func (s *ServerTestSuite) TestHealth() {
	rec, body := s.get(s.server, "/health")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("disabled", body["database"])
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
}

func (s *ServerTestSuite) TestCORSAllowsTraceID() {
	req := httptest.NewRequest(http.MethodOptions, "/api/data", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dashboard.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, middleware.TraceIDHeader)
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderAccessControlAllowHeaders), middleware.TraceIDHeader)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dashboard.example.com")
	req.Header.Set(middleware.TraceIDHeader, "client-trace-42")
	rec = httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	s.Equal("client-trace-42", rec.Header().Get(middleware.TraceIDHeader))
	s.Equal(middleware.TraceIDHeader, rec.Header().Get(echo.HeaderAccessControlExposeHeaders))
}

func (s *ServerTestSuite) TestData() {
	rec, body := s.get(s.server, "/api/data")

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(body["run_id"])
	s.NotEmpty(body["data"])
	s.Equal("no-store, private", rec.Header().Get("Cache-Control"))
}

func (s *ServerTestSuite) TestInvalidThreshold() {
	rec, body := s.get(s.server, "/api/data?zThreshold=abc")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.errorCode(body))
}

func (s *ServerTestSuite) TestRunsWithoutHistory() {
	rec, body := s.get(s.server, "/api/runs")

	s.Equal(http.StatusOK, rec.Code)
	pagination, ok := body["pagination"].(map[string]interface{})
	s.Require().True(ok)
	s.Equal(float64(0), pagination["total"])
	counts, ok := body["status_counts"].(map[string]interface{})
	s.Require().True(ok)
	s.Equal(float64(0), counts["completed"])
}

func (s *ServerTestSuite) TestLatestRunWithoutHistory() {
	rec, body := s.get(s.server, "/api/runs/latest")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("DATA_003", s.errorCode(body))
}

func (s *ServerTestSuite) TestRunsRejectsZeroLimit() {
	rec, body := s.get(s.server, "/api/runs?limit=0")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(body))
}

func (s *ServerTestSuite) TestMetricsExposeRequests() {
	s.get(s.server, "/api/recurring")

	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `api_analysis_requests_total{endpoint="recurring",status="success"} 1`)
	s.Contains(rec.Body.String(), "go_goroutines")
}

func (s *ServerTestSuite) TestAPIRequiresTokenWhenSecretSet() {
	server := newServer(s.newApp("test-secret"), middleware.NewRateLimiter(100, 100))

	rec, body := s.get(server, "/api/data")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(body))

	rec, _ = s.get(server, "/health")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestRateLimited() {
	server := newServer(s.newApp(""), middleware.NewRateLimiter(1, 1))

	rec, _ := s.get(server, "/api/runs")
	s.Equal(http.StatusOK, rec.Code)

	rec, body := s.get(server, "/api/runs")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("SYSTEM_006", s.errorCode(body))
}

func (s *ServerTestSuite) TestRunServeStopsOnCancel() {
	a := s.newApp("")
	a.cfg.Server.Host = "127.0.0.1"
	a.cfg.Server.Port = "0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, a) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("server did not shut down")
	}
}
