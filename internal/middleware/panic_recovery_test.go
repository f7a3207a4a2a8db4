package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-insight-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestPanicRecoveryTestSuite runs the test suite
func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// TestPanicRecovery_RecoverFromPanic tests that middleware recovers from panic
func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("test panic")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
}

// TestPanicRecovery_NoTraceID tests panic recovery when no trace ID is set
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceID() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("test panic")
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("unknown", errorResponse.Error.TraceID)
}

// TestPanicRecovery_NormalFlow tests that middleware doesn't interfere with normal flow
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

// TestPanicRecovery_NonStringPanic tests recovery from non-string panic values
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NonStringPanic() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/process", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(42)
	})

	s.NotPanics(func() {
		_ = handler(c)
	})
	s.Equal(http.StatusInternalServerError, rec.Code)
}
