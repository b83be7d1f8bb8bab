package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/Arshavi-03/Finergize-recommend/internal/shared/telemetry"
)

// ErrorResponse is the standardized failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
