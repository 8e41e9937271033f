package middleware

import (
	"strconv"
	"time"

	"electric-system-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency per route and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			// Unmatched routes collapse into one label to keep cardinality bounded.
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
