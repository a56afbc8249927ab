package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
}

// Health writes a health check response. A non-empty storageErr reports the
// service as degraded.
func Health(c echo.Context, storageErr error) error {
	if storageErr != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:  "degraded",
			Storage: storageErr.Error(),
		})
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Storage: "ok",
	})
}
