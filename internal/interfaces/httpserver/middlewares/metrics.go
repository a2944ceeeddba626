package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jan-server/services/application-settings-api/internal/infrastructure/metrics"
)

// MetricsMiddleware records HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := c.Writer.Status()

		metrics.RecordRequest(c.Request.Method, endpoint, strconv.Itoa(status), time.Since(start).Seconds())
		if status == http.StatusBadRequest {
			metrics.RecordValidationFailure(endpoint)
		}
	}
}
