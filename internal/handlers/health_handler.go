package handlers

import (
	"net/http"
	"time"

	"spend-insights/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler. db may be nil when
// run history is disabled.
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and history database status
//
// Method: GET /health
//
// Success Response: 200 OK
//   - status: "healthy"
//   - database: "connected" or "disabled"
//   - time: RFC 3339 timestamp
//
// Error Responses:
//   - 503: SYSTEM_003 database ping failed
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	database := "disabled"
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			return h.unavailable(c)
		}
		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			return h.unavailable(c)
		}
		database = "connected"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": database,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context) error {
	errorResponse := errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		getTraceIDFromContext(c),
		errors.WithDetails("Database connection failed"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
