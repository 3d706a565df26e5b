package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestRequestIDTestSuite runs the test suite
func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) serve(header string) (seen, fromCtx string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec = httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		fromCtx = TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return seen, fromCtx, rec
}

// TestRequestID_GeneratesTraceID tests that middleware generates a trace ID
func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	seen, fromCtx, rec := s.serve("")

	_, err := uuid.Parse(seen)
	s.NoError(err)
	s.Equal(seen, fromCtx)
	s.Equal(seen, rec.Header().Get(TraceIDHeader))
}

// TestRequestID_UsesExistingTraceID tests that middleware keeps a well formed caller trace ID
func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	seen, fromCtx, rec := s.serve("existing-trace-id-12345")

	s.Equal("existing-trace-id-12345", seen)
	s.Equal("existing-trace-id-12345", fromCtx)
	s.Equal("existing-trace-id-12345", rec.Header().Get(TraceIDHeader))
}

// TestRequestID_ReplacesInvalidTraceID tests that unusable caller IDs are replaced
func (s *RequestIDTestSuite) TestRequestID_ReplacesInvalidTraceID() {
	for name, header := range map[string]string{
		"too long":   strings.Repeat("a", maxTraceIDLength+1),
		"whitespace": "trace id",
		"non ascii":  "tracé",
	} {
		s.Run(name, func() {
			seen, _, _ := s.serve(header)
			s.NotEqual(header, seen)
			_, err := uuid.Parse(seen)
			s.NoError(err)
		})
	}
}

// TestRequestID_UniquePerRequest tests that each request gets its own ID
func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _, _ := s.serve("")
	second, _, _ := s.serve("")
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
	s.Empty(TraceIDFromContext(c.Request().Context()))
}
