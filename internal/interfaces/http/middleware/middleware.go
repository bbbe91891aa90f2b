// Package middleware provides the gin middleware chain shared by every route:
// request IDs, structured request logging, panic recovery, and per-route
// metrics.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/metrics"
	apperrors "github.com/turtacn/hsn-advisor/pkg/errors"
)

// RequestIDHeader is both accepted from and echoed to clients.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key under which the request ID is stored.
const requestIDKey = "request_id"

// RequestID assigns each request a unique ID, honoring one supplied by the
// client so IDs propagate across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger emits one structured log line per request after it completes.
// 5xx responses log at Error, 4xx at Warn, the rest at Info.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []logging.Field{
			logging.String("request_id", GetRequestID(c)),
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("duration", time.Since(start)),
			logging.String("client_ip", c.ClientIP()),
		}

		switch {
		case status >= 500:
			logger.Error("http request", fields...)
		case status >= 400:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}

// Recovery converts panics into a 500 response instead of killing the server.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					logging.String("request_id", GetRequestID(c)),
					logging.String("path", c.Request.URL.Path),
					logging.Any("panic", r),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{
						"code":    apperrors.CodeInternal.String(),
						"message": "internal server error",
					},
				})
			}
		}()
		c.Next()
	}
}

// Metrics records request counts and latency per route.  The templated route
// path (c.FullPath) is used as the label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path,
			strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
