package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"go-resume-builder/pkg/metrics"
)

// Metrics records request counts and latency per route template.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
