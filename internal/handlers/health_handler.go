package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct{}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API liveness
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
