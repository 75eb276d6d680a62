// Package middleware provides request logging and the admin auth guard
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brightpath-foundation/brightpath-api/internal/logger"
)

// RequestLogger returns a middleware function that logs request details
func RequestLogger() gin.HandlerFunc {
	httpLog := logger.HTTP()

	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := generateRequestID()
		c.Set("request_id", requestID)

		c.Next()

		latency := time.Since(startTime)
		status := c.Writer.Status()

		logLevel := httpLog.Info
		if status >= 400 {
			logLevel = httpLog.Error
		} else if status >= 300 {
			logLevel = httpLog.Warn
		}

		logLevel("Request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
			"size", c.Writer.Size(),
		)
	}
}

// generateRequestID creates a request ID for tracing. The timestamp keeps
// IDs sortable in logs; the random suffix keeps them unique within a second.
func generateRequestID() string {
	return "req_" + time.Now().Format("20060102150405") + "_" + uuid.NewString()[:8]
}
