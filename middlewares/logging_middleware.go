package middlewares

import (
	"time"

	"github.com/Sumanth1803/DietPlan/logger"
	"github.com/Sumanth1803/DietPlan/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggingMiddleware tags every request with a UUID, logs it through the
// global zap logger and feeds the prometheus HTTP collectors.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := uuid.New().String()
		c.Set("requestID", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		metrics.IncInFlight()

		c.Next()

		metrics.DecInFlight()
		duration := time.Since(start)
		status := c.Writer.Status()

		metrics.ObserveHTTP(c.Request.Method, c.FullPath(), status, duration)

		logger.Log.Infow("request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", duration,
			"size", c.Writer.Size(),
		)
	}
}
