package middleware

import (
	"time"

	"github.com/arrenda/arrenda-api/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLoggingMiddleware logs one line per completed request.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)
		correlationID := GetCorrelationID(c)

		if logger.Log == nil {
			return
		}

		logger.Log.Info("Request completed",
			zap.String("correlation_id", correlationID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)

		for _, err := range c.Errors {
			logger.Log.Error("Request error",
				zap.String("correlation_id", correlationID),
				zap.Error(err.Err),
			)
		}
	}
}
