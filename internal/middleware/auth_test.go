package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spend-insights/internal/errors"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	secret string
	issuer string
	e      *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.secret = gofakeit.Password(true, true, true, false, false, 32)
	s.issuer = "spend-insights-test"
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) token(secret, issuer string, expiresIn time.Duration, method jwt.SigningMethod) string {
	claims := jwt.RegisteredClaims{
		Subject:   "analyst",
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	s.Require().NoError(err)
	return signed
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	called := false
	var subject string
	handler := mw(func(c echo.Context) error {
		called = true
		subject, _ = c.Get(SubjectContextKey).(string)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec, subject, called
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireBearer_ValidToken() {
	mw := RequireBearer(s.secret, s.issuer)

	rec, subject, called := s.serve(mw, "Bearer "+s.token(s.secret, s.issuer, time.Hour, jwt.SigningMethodHS256))

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("analyst", subject)
}

func (s *AuthMiddlewareSuite) TestRequireBearer_Disabled() {
	rec, _, called := s.serve(RequireBearer("", s.issuer), "")

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireBearer_Rejections() {
	testCases := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "AUTH_001"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "AUTH_003"},
		{"empty token", "Bearer ", "AUTH_003"},
		{"garbage token", "Bearer not.a.jwt", "AUTH_003"},
		{"expired", "Bearer " + s.token(s.secret, s.issuer, -time.Minute, jwt.SigningMethodHS256), "AUTH_002"},
		{"wrong secret", "Bearer " + s.token("another-secret", s.issuer, time.Hour, jwt.SigningMethodHS256), "AUTH_003"},
		{"wrong issuer", "Bearer " + s.token(s.secret, "someone-else", time.Hour, jwt.SigningMethodHS256), "AUTH_003"},
		{"wrong algorithm", "Bearer " + s.token(s.secret, s.issuer, time.Hour, jwt.SigningMethodHS512), "AUTH_003"},
	}

	mw := RequireBearer(s.secret, s.issuer)
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, _, called := s.serve(mw, tc.header)

			s.False(called)
			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal(tc.code, s.errorCode(rec))
		})
	}
}
