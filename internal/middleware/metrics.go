package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"myteai/internal/metrics"
)

// Metrics records request counts and latency per route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(path, c.Writer.Status(), time.Since(start))
	}
}
