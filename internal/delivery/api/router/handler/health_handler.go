package handler

import (
	"net/http"
	"time"

	"streamsync/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
